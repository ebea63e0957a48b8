package http_catalog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/reeltaste/core/internal/delivery/http/common"
	http_session_middleware "github.com/reeltaste/core/internal/delivery/http/middleware/session"
	"github.com/reeltaste/core/internal/model"
	usecase_catalog "github.com/reeltaste/core/internal/usecase/catalog"
)

type Controller struct {
	catalog    *usecase_catalog.Usecase
	middleware *http_session_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	catalog *usecase_catalog.Usecase,
	middleware *http_session_middleware.Middleware,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		catalog:    catalog,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	catalog := router.Group("/catalog", c.middleware.SessionRequired())
	catalog.GET("/movies", c.listMovies)
	catalog.GET("/movies/:movie_id", c.movieByID)
	catalog.POST("/movies", c.uploadMovie)
	catalog.GET("/shows", c.listShows)
	catalog.GET("/shows/:show_id", c.showByID)
	catalog.POST("/shows", c.uploadShow)

	router.GET("/search", c.middleware.SessionRequired(), c.search)
}

type MovieResponseDTO struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Year            int      `json:"year"`
	Genres          []string `json:"genres"`
	PosterLink      string   `json:"poster_link"`
	Overview        string   `json:"overview"`
	CommunityRating float64  `json:"community_rating"`
	RaterCount      int      `json:"rater_count"`
}

func MovieToDTO(m model.Movie) MovieResponseDTO {
	return MovieResponseDTO{
		ID:              m.ID.String(),
		Title:           m.Title,
		Year:            m.Year,
		Genres:          m.Genres,
		PosterLink:      m.PosterLink,
		Overview:        m.Overview,
		CommunityRating: m.CommunityRating,
		RaterCount:      m.RaterCount,
	}
}

type ShowResponseDTO struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Year            int      `json:"year"`
	Genres          []string `json:"genres"`
	PosterLink      string   `json:"poster_link"`
	Overview        string   `json:"overview"`
	Seasons         int      `json:"seasons"`
	CommunityRating float64  `json:"community_rating"`
	RaterCount      int      `json:"rater_count"`
}

func ShowToDTO(s model.Show) ShowResponseDTO {
	return ShowResponseDTO{
		ID:              s.ID.String(),
		Title:           s.Title,
		Year:            s.Year,
		Genres:          s.Genres,
		PosterLink:      s.PosterLink,
		Overview:        s.Overview,
		Seasons:         s.Seasons,
		CommunityRating: s.CommunityRating,
		RaterCount:      s.RaterCount,
	}
}

// ListMovies
// @Summary Catalog movies
// @Tags Catalog
// @Produce json
// @Success 200 {array} MovieResponseDTO "Movies"
// @Security SessionToken
// @Router /catalog/movies [get]
func (c *Controller) listMovies(ctx *gin.Context) {
	movies := c.catalog.Movies()
	resp := make([]MovieResponseDTO, 0, len(movies))
	for _, m := range movies {
		resp = append(resp, MovieToDTO(m))
	}
	ctx.JSON(http.StatusOK, resp)
}

// MovieByID
// @Summary Movie by id
// @Tags Catalog
// @Produce json
// @Param movie_id path string true "Movie id"
// @Success 200 {object} MovieResponseDTO "Movie"
// @Failure 404 {object} http_common.ErrorResponse "Unknown movie"
// @Security SessionToken
// @Router /catalog/movies/{movie_id} [get]
func (c *Controller) movieByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("movie_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid movie id",
		})
		return
	}

	m, err := c.catalog.MovieByID(id)
	if err != nil {
		if errors.Is(err, usecase_catalog.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "movie not found",
			})
			return
		}
		c.logger.Error("failed to load movie", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}
	ctx.JSON(http.StatusOK, MovieToDTO(m))
}

type UploadMovieRequestDTO struct {
	Title           string   `json:"title" binding:"required"`
	Year            int      `json:"year" binding:"required"`
	Genres          []string `json:"genres" binding:"required,min=1"`
	PosterLink      string   `json:"poster_link"`
	Overview        string   `json:"overview"`
	CommunityRating float64  `json:"community_rating" binding:"omitempty,min=1,max=10"`
	RaterCount      int      `json:"rater_count"`
}

// UploadMovie
// @Summary Add a movie to the catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body UploadMovieRequestDTO true "Movie"
// @Success 201 {object} MovieResponseDTO "Stored movie"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Security SessionToken
// @Router /catalog/movies [post]
func (c *Controller) uploadMovie(ctx *gin.Context) {
	var req UploadMovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	m := model.Movie{
		ID:              uuid.New(),
		Title:           req.Title,
		Year:            req.Year,
		Genres:          req.Genres,
		PosterLink:      req.PosterLink,
		Overview:        req.Overview,
		CommunityRating: req.CommunityRating,
		RaterCount:      req.RaterCount,
	}
	if err := c.catalog.UploadMovie(ctx.Request.Context(), m); err != nil {
		c.logger.Error("failed to upload movie", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}
	ctx.JSON(http.StatusCreated, MovieToDTO(m))
}

// ListShows
// @Summary Catalog shows
// @Tags Catalog
// @Produce json
// @Success 200 {array} ShowResponseDTO "Shows"
// @Security SessionToken
// @Router /catalog/shows [get]
func (c *Controller) listShows(ctx *gin.Context) {
	shows := c.catalog.Shows()
	resp := make([]ShowResponseDTO, 0, len(shows))
	for _, s := range shows {
		resp = append(resp, ShowToDTO(s))
	}
	ctx.JSON(http.StatusOK, resp)
}

// ShowByID
// @Summary Show by id
// @Tags Catalog
// @Produce json
// @Param show_id path string true "Show id"
// @Success 200 {object} ShowResponseDTO "Show"
// @Failure 404 {object} http_common.ErrorResponse "Unknown show"
// @Security SessionToken
// @Router /catalog/shows/{show_id} [get]
func (c *Controller) showByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("show_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid show id",
		})
		return
	}

	s, err := c.catalog.ShowByID(id)
	if err != nil {
		if errors.Is(err, usecase_catalog.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "show not found",
			})
			return
		}
		c.logger.Error("failed to load show", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}
	ctx.JSON(http.StatusOK, ShowToDTO(s))
}

type UploadShowRequestDTO struct {
	Title           string   `json:"title" binding:"required"`
	Year            int      `json:"year" binding:"required"`
	Genres          []string `json:"genres" binding:"required,min=1"`
	PosterLink      string   `json:"poster_link"`
	Overview        string   `json:"overview"`
	Seasons         int      `json:"seasons" binding:"required,min=1"`
	CommunityRating float64  `json:"community_rating" binding:"omitempty,min=1,max=10"`
	RaterCount      int      `json:"rater_count"`
}

// UploadShow
// @Summary Add a show to the catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body UploadShowRequestDTO true "Show"
// @Success 201 {object} ShowResponseDTO "Stored show"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Security SessionToken
// @Router /catalog/shows [post]
func (c *Controller) uploadShow(ctx *gin.Context) {
	var req UploadShowRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	s := model.Show{
		ID:              uuid.New(),
		Title:           req.Title,
		Year:            req.Year,
		Genres:          req.Genres,
		PosterLink:      req.PosterLink,
		Overview:        req.Overview,
		Seasons:         req.Seasons,
		CommunityRating: req.CommunityRating,
		RaterCount:      req.RaterCount,
	}
	if err := c.catalog.UploadShow(ctx.Request.Context(), s); err != nil {
		c.logger.Error("failed to upload show", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}
	ctx.JSON(http.StatusCreated, ShowToDTO(s))
}

type SearchResultResponseDTO struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Year       int    `json:"year"`
	Genre      string `json:"genre"`
	PosterPath string `json:"poster_path"`
}

// Search proxies the external catalog
// @Summary Search titles
// @Description Queries the external catalog. Queries shorter than two characters return an empty list without an upstream call.
// @Tags Catalog
// @Produce json
// @Param q query string true "Query"
// @Param type query string false "movie or show" default(movie)
// @Success 200 {array} SearchResultResponseDTO "Hits"
// @Failure 500 {object} http_common.ErrorResponse "Search token not configured"
// @Security SessionToken
// @Router /search [get]
func (c *Controller) search(ctx *gin.Context) {
	t := model.ContentType(ctx.DefaultQuery("type", string(model.ContentMovie)))
	if !t.Valid() {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid content type",
		})
		return
	}

	hits, err := c.catalog.Search(ctx.Request.Context(), ctx.Query("q"), t)
	if err != nil {
		if errors.Is(err, usecase_catalog.ErrTokenNotConfigured) {
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "search is not configured",
			})
			return
		}
		c.logger.Error("search failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	resp := make([]SearchResultResponseDTO, 0, len(hits))
	for _, h := range hits {
		resp = append(resp, SearchResultResponseDTO{
			ID:         h.ID,
			Type:       string(h.Type),
			Title:      h.Title,
			Year:       h.Year,
			Genre:      h.Genre,
			PosterPath: h.PosterPath,
		})
	}
	ctx.JSON(http.StatusOK, resp)
}
