package http_ratings

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/reeltaste/core/internal/delivery/http/common"
	http_session_middleware "github.com/reeltaste/core/internal/delivery/http/middleware/session"
	"github.com/reeltaste/core/internal/model"
	usecase_catalog "github.com/reeltaste/core/internal/usecase/catalog"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
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
	ratings := router.Group("/ratings", c.middleware.SessionRequired())

	ratings.GET("/movies", c.listMovieRatings)
	ratings.PUT("/movies", c.upsertMovieRating)
	ratings.DELETE("/movies/:rating_id", c.deleteMovieRating)
	ratings.POST("/movies/:rating_id/favorite", c.toggleMovieFavorite)

	ratings.GET("/shows", c.listShowRatings)
	ratings.PUT("/shows", c.upsertShowRating)
	ratings.DELETE("/shows/:rating_id", c.deleteShowRating)
	ratings.POST("/shows/:rating_id/favorite", c.toggleShowFavorite)
	ratings.PUT("/shows/:rating_id/seasons/:season", c.setSeasonScore)
}

type MovieRatingResponseDTO struct {
	ID       string    `json:"id"`
	MovieID  string    `json:"movie_id"`
	Score    float64   `json:"score"`
	Review   string    `json:"review"`
	Favorite bool      `json:"favorite"`
	RatedAt  time.Time `json:"rated_at"`
}

func MovieRatingToDTO(r model.MovieRating) MovieRatingResponseDTO {
	return MovieRatingResponseDTO{
		ID:       r.ID.String(),
		MovieID:  r.MovieID.String(),
		Score:    r.Score,
		Review:   r.Review,
		Favorite: r.Favorite,
		RatedAt:  r.RatedAt,
	}
}

type ShowRatingResponseDTO struct {
	ID           string    `json:"id"`
	ShowID       string    `json:"show_id"`
	Score        float64   `json:"score"`
	Review       string    `json:"review"`
	Favorite     bool      `json:"favorite"`
	RatedAt      time.Time `json:"rated_at"`
	SeasonScores []float64 `json:"season_scores"`
}

func ShowRatingToDTO(r model.ShowRating) ShowRatingResponseDTO {
	return ShowRatingResponseDTO{
		ID:           r.ID.String(),
		ShowID:       r.ShowID.String(),
		Score:        r.Score,
		Review:       r.Review,
		Favorite:     r.Favorite,
		RatedAt:      r.RatedAt,
		SeasonScores: r.SeasonScores,
	}
}

// ListMovieRatings
// @Summary Movie ratings
// @Tags Ratings
// @Produce json
// @Success 200 {array} MovieRatingResponseDTO "Ratings"
// @Security SessionToken
// @Router /ratings/movies [get]
func (c *Controller) listMovieRatings(ctx *gin.Context) {
	ratings := http_session_middleware.FromContext(ctx).MovieRatings()
	resp := make([]MovieRatingResponseDTO, 0, len(ratings))
	for _, r := range ratings {
		resp = append(resp, MovieRatingToDTO(r))
	}
	ctx.JSON(http.StatusOK, resp)
}

type UpsertMovieRatingRequestDTO struct {
	MovieID     string   `json:"movie_id" binding:"required,uuid"`
	Score       float64  `json:"score" binding:"required,min=1,max=10" example:"8.5"`
	Review      string   `json:"review" example:"Tight, mean, perfectly cast."`
	TaggedUsers []string `json:"tagged_users" binding:"omitempty,dive,uuid"`
}

// UpsertMovieRating rates a movie
// @Summary Rate a movie
// @Description Creates or replaces the rating for a movie. A new rating also lands on the activity feed and drops the title off the watchlist.
// @Tags Ratings
// @Accept json
// @Produce json
// @Param request body UpsertMovieRatingRequestDTO true "Rating"
// @Success 200 {object} MovieRatingResponseDTO "Rating replaced"
// @Success 201 {object} MovieRatingResponseDTO "Rating created"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Security SessionToken
// @Router /ratings/movies [put]
func (c *Controller) upsertMovieRating(ctx *gin.Context) {
	var req UpsertMovieRatingRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	sess := http_session_middleware.FromContext(ctx)
	rating, created := sess.AddMovieRating(model.MovieRating{
		MovieID: uuid.MustParse(req.MovieID),
		Score:   req.Score,
		Review:  req.Review,
	})
	if created {
		c.publishActivity(sess, model.ContentRef{Type: model.ContentMovie, ID: rating.MovieID}, rating.Score, req.Review, req.TaggedUsers)
		ctx.JSON(http.StatusCreated, MovieRatingToDTO(rating))
		return
	}
	ctx.JSON(http.StatusOK, MovieRatingToDTO(rating))
}

// DeleteMovieRating
// @Summary Delete a movie rating
// @Tags Ratings
// @Param rating_id path string true "Rating id"
// @Success 204 "Deleted"
// @Security SessionToken
// @Router /ratings/movies/{rating_id} [delete]
func (c *Controller) deleteMovieRating(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("rating_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid rating id",
		})
		return
	}
	http_session_middleware.FromContext(ctx).DeleteMovieRating(id)
	ctx.Status(http.StatusNoContent)
}

// ToggleMovieFavorite
// @Summary Toggle movie favorite
// @Tags Ratings
// @Produce json
// @Param rating_id path string true "Rating id"
// @Success 200 {object} map[string]bool "New favorite state"
// @Failure 404 {object} http_common.ErrorResponse "Unknown rating"
// @Security SessionToken
// @Router /ratings/movies/{rating_id}/favorite [post]
func (c *Controller) toggleMovieFavorite(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("rating_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid rating id",
		})
		return
	}

	sess := http_session_middleware.FromContext(ctx)
	if _, ok := findMovieRating(sess, id); !ok {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "rating not found",
		})
		return
	}
	fav := sess.ToggleMovieFavorite(id)
	ctx.JSON(http.StatusOK, gin.H{"favorite": fav})
}

// ListShowRatings
// @Summary Show ratings
// @Tags Ratings
// @Produce json
// @Success 200 {array} ShowRatingResponseDTO "Ratings"
// @Security SessionToken
// @Router /ratings/shows [get]
func (c *Controller) listShowRatings(ctx *gin.Context) {
	ratings := http_session_middleware.FromContext(ctx).ShowRatings()
	resp := make([]ShowRatingResponseDTO, 0, len(ratings))
	for _, r := range ratings {
		resp = append(resp, ShowRatingToDTO(r))
	}
	ctx.JSON(http.StatusOK, resp)
}

type UpsertShowRatingRequestDTO struct {
	ShowID      string   `json:"show_id" binding:"required,uuid"`
	Score       float64  `json:"score" binding:"required,min=1,max=10" example:"9.1"`
	Review      string   `json:"review"`
	TaggedUsers []string `json:"tagged_users" binding:"omitempty,dive,uuid"`
}

// UpsertShowRating rates a show
// @Summary Rate a show
// @Description Creates or replaces the overall rating for a show. Season scores survive the replace.
// @Tags Ratings
// @Accept json
// @Produce json
// @Param request body UpsertShowRatingRequestDTO true "Rating"
// @Success 200 {object} ShowRatingResponseDTO "Rating replaced"
// @Success 201 {object} ShowRatingResponseDTO "Rating created"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Security SessionToken
// @Router /ratings/shows [put]
func (c *Controller) upsertShowRating(ctx *gin.Context) {
	var req UpsertShowRatingRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	sess := http_session_middleware.FromContext(ctx)
	rating, created := sess.AddShowRating(model.ShowRating{
		ShowID: uuid.MustParse(req.ShowID),
		Score:  req.Score,
		Review: req.Review,
	})
	if created {
		c.publishActivity(sess, model.ContentRef{Type: model.ContentShow, ID: rating.ShowID}, rating.Score, req.Review, req.TaggedUsers)
		ctx.JSON(http.StatusCreated, ShowRatingToDTO(rating))
		return
	}
	ctx.JSON(http.StatusOK, ShowRatingToDTO(rating))
}

// DeleteShowRating
// @Summary Delete a show rating
// @Tags Ratings
// @Param rating_id path string true "Rating id"
// @Success 204 "Deleted"
// @Security SessionToken
// @Router /ratings/shows/{rating_id} [delete]
func (c *Controller) deleteShowRating(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("rating_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid rating id",
		})
		return
	}
	http_session_middleware.FromContext(ctx).DeleteShowRating(id)
	ctx.Status(http.StatusNoContent)
}

// ToggleShowFavorite
// @Summary Toggle show favorite
// @Tags Ratings
// @Produce json
// @Param rating_id path string true "Rating id"
// @Success 200 {object} map[string]bool "New favorite state"
// @Failure 404 {object} http_common.ErrorResponse "Unknown rating"
// @Security SessionToken
// @Router /ratings/shows/{rating_id}/favorite [post]
func (c *Controller) toggleShowFavorite(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("rating_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid rating id",
		})
		return
	}

	sess := http_session_middleware.FromContext(ctx)
	if _, ok := findShowRating(sess, id); !ok {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "rating not found",
		})
		return
	}
	fav := sess.ToggleShowFavorite(id)
	ctx.JSON(http.StatusOK, gin.H{"favorite": fav})
}

type SeasonScoreRequestDTO struct {
	Score float64 `json:"score" binding:"required,min=1,max=10" example:"7.5"`
}

// SetSeasonScore
// @Summary Score a season
// @Description Stores a per-season score on an existing show rating. Season numbers start at 1.
// @Tags Ratings
// @Accept json
// @Produce json
// @Param rating_id path string true "Rating id"
// @Param season path int true "Season number"
// @Param request body SeasonScoreRequestDTO true "Score"
// @Success 200 {object} ShowRatingResponseDTO "Updated rating"
// @Failure 400 {object} http_common.ErrorResponse "Invalid id, season or score"
// @Failure 404 {object} http_common.ErrorResponse "Unknown rating"
// @Security SessionToken
// @Router /ratings/shows/{rating_id}/seasons/{season} [put]
func (c *Controller) setSeasonScore(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("rating_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid rating id",
		})
		return
	}
	season, err := strconv.Atoi(ctx.Param("season"))
	if err != nil || season < 1 {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid season number",
		})
		return
	}

	var req SeasonScoreRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	sess := http_session_middleware.FromContext(ctx)
	if !sess.SetSeasonScore(id, season, req.Score) {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "rating not found",
		})
		return
	}
	rating, _ := findShowRating(sess, id)
	ctx.JSON(http.StatusOK, ShowRatingToDTO(rating))
}

// publishActivity posts the denormalized feed record for a freshly created
// rating. Ratings of titles unknown to the catalog still publish, with the
// title left blank.
func (c *Controller) publishActivity(sess *usecase_session.Session, ref model.ContentRef, score float64, comment string, tagged []string) {
	title, poster, err := c.catalog.TitleFor(ref)
	if err != nil {
		c.logger.Warn("rated title missing from catalog",
			slog.String("content_id", ref.ID.String()),
		)
	}

	taggedIDs := make([]uuid.UUID, 0, len(tagged))
	for _, raw := range tagged {
		taggedIDs = append(taggedIDs, uuid.MustParse(raw))
	}

	sess.PublishActivity(model.FeedActivity{
		Ref:         ref,
		Title:       title,
		Poster:      poster,
		Score:       score,
		Comment:     comment,
		TaggedUsers: taggedIDs,
	})
}

func findMovieRating(sess *usecase_session.Session, id uuid.UUID) (model.MovieRating, bool) {
	for _, r := range sess.MovieRatings() {
		if r.ID == id {
			return r, true
		}
	}
	return model.MovieRating{}, false
}

func findShowRating(sess *usecase_session.Session, id uuid.UUID) (model.ShowRating, bool) {
	for _, r := range sess.ShowRatings() {
		if r.ID == id {
			return r, true
		}
	}
	return model.ShowRating{}, false
}
