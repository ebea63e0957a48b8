package http_watchlist

import (
	"log/slog"
	"net/http"
	"time"

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
	watchlist := router.Group("/watchlist", c.middleware.SessionRequired())
	watchlist.GET("", c.list)
	watchlist.POST("", c.add)
	watchlist.DELETE("/:item_id", c.remove)
	watchlist.GET("/contains", c.contains)
}

type WatchlistItemResponseDTO struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	ContentID     string    `json:"content_id"`
	Title         string    `json:"title"`
	Poster        string    `json:"poster"`
	AddedAt       time.Time `json:"added_at"`
	RecommendedBy string    `json:"recommended_by,omitempty"`
}

func ItemToDTO(item model.WatchlistItem) WatchlistItemResponseDTO {
	dto := WatchlistItemResponseDTO{
		ID:        item.ID.String(),
		Type:      string(item.Ref.Type),
		ContentID: item.Ref.ID.String(),
		Title:     item.Title,
		Poster:    item.Poster,
		AddedAt:   item.AddedAt,
	}
	if item.RecommendedBy != uuid.Nil {
		dto.RecommendedBy = item.RecommendedBy.String()
	}
	return dto
}

// List
// @Summary Watchlist
// @Tags Watchlist
// @Produce json
// @Success 200 {array} WatchlistItemResponseDTO "Items"
// @Security SessionToken
// @Router /watchlist [get]
func (c *Controller) list(ctx *gin.Context) {
	items := http_session_middleware.FromContext(ctx).Watchlist()
	resp := make([]WatchlistItemResponseDTO, 0, len(items))
	for _, item := range items {
		resp = append(resp, ItemToDTO(item))
	}
	ctx.JSON(http.StatusOK, resp)
}

type AddWatchlistRequestDTO struct {
	Type          string `json:"type" binding:"required,oneof=movie show"`
	ContentID     string `json:"content_id" binding:"required,uuid"`
	RecommendedBy string `json:"recommended_by" binding:"omitempty,uuid"`
}

// Add puts a title on the watchlist
// @Summary Add to watchlist
// @Description Adding an already-listed title returns the existing entry instead of a duplicate
// @Tags Watchlist
// @Accept json
// @Produce json
// @Param request body AddWatchlistRequestDTO true "Catalog ref"
// @Success 201 {object} WatchlistItemResponseDTO "Entry"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Security SessionToken
// @Router /watchlist [post]
func (c *Controller) add(ctx *gin.Context) {
	var req AddWatchlistRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	ref := model.ContentRef{
		Type: model.ContentType(req.Type),
		ID:   uuid.MustParse(req.ContentID),
	}
	title, poster, err := c.catalog.TitleFor(ref)
	if err != nil {
		c.logger.Warn("watchlisted title missing from catalog",
			slog.String("content_id", ref.ID.String()),
		)
	}

	item := model.WatchlistItem{
		Ref:    ref,
		Title:  title,
		Poster: poster,
	}
	if req.RecommendedBy != "" {
		item.RecommendedBy = uuid.MustParse(req.RecommendedBy)
	}

	stored := http_session_middleware.FromContext(ctx).AddToWatchlist(item)
	ctx.JSON(http.StatusCreated, ItemToDTO(stored))
}

// Remove
// @Summary Remove from watchlist
// @Tags Watchlist
// @Param item_id path string true "Entry id"
// @Success 204 "Removed"
// @Security SessionToken
// @Router /watchlist/{item_id} [delete]
func (c *Controller) remove(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("item_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid item id",
		})
		return
	}
	http_session_middleware.FromContext(ctx).RemoveFromWatchlist(id)
	ctx.Status(http.StatusNoContent)
}

// Contains answers the detail screen's membership check
// @Summary Watchlist membership
// @Tags Watchlist
// @Produce json
// @Param type query string true "movie or show"
// @Param content_id query string true "Catalog id"
// @Success 200 {object} map[string]bool "Membership"
// @Failure 400 {object} http_common.ErrorResponse "Invalid query"
// @Security SessionToken
// @Router /watchlist/contains [get]
func (c *Controller) contains(ctx *gin.Context) {
	t := model.ContentType(ctx.Query("type"))
	id, err := uuid.Parse(ctx.Query("content_id"))
	if !t.Valid() || err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid content ref",
		})
		return
	}
	listed := http_session_middleware.FromContext(ctx).IsInWatchlist(t, id)
	ctx.JSON(http.StatusOK, gin.H{"listed": listed})
}
