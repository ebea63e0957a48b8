package http_feed

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/reeltaste/core/internal/delivery/http/common"
	http_session_middleware "github.com/reeltaste/core/internal/delivery/http/middleware/session"
	"github.com/reeltaste/core/internal/model"
)

type Controller struct {
	middleware *http_session_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(middleware *http_session_middleware.Middleware, opts ...ControllerOption) *Controller {
	c := &Controller{
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	feed := router.Group("/feed", c.middleware.SessionRequired())
	feed.GET("", c.list)
	feed.POST("/:activity_id/reactions", c.toggleReaction)
}

type FeedActivityResponseDTO struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	Type        string              `json:"type"`
	ContentID   string              `json:"content_id"`
	Title       string              `json:"title"`
	Poster      string              `json:"poster"`
	Score       float64             `json:"score"`
	Comment     string              `json:"comment,omitempty"`
	TaggedUsers []string            `json:"tagged_users,omitempty"`
	Reactions   map[string][]string `json:"reactions"`
	PostedAt    time.Time           `json:"posted_at"`
}

func ActivityToDTO(a model.FeedActivity) FeedActivityResponseDTO {
	tagged := make([]string, 0, len(a.TaggedUsers))
	for _, id := range a.TaggedUsers {
		tagged = append(tagged, id.String())
	}
	reactions := make(map[string][]string, len(a.Reactions))
	for kind, users := range a.Reactions {
		ids := make([]string, 0, len(users))
		for _, id := range users {
			ids = append(ids, id.String())
		}
		reactions[string(kind)] = ids
	}
	return FeedActivityResponseDTO{
		ID:          a.ID.String(),
		UserID:      a.UserID.String(),
		Type:        string(a.Ref.Type),
		ContentID:   a.Ref.ID.String(),
		Title:       a.Title,
		Poster:      a.Poster,
		Score:       a.Score,
		Comment:     a.Comment,
		TaggedUsers: tagged,
		Reactions:   reactions,
		PostedAt:    a.PostedAt,
	}
}

// List returns the activity feed, newest first
// @Summary Activity feed
// @Tags Feed
// @Produce json
// @Success 200 {array} FeedActivityResponseDTO "Activities"
// @Security SessionToken
// @Router /feed [get]
func (c *Controller) list(ctx *gin.Context) {
	feed := http_session_middleware.FromContext(ctx).Feed()
	resp := make([]FeedActivityResponseDTO, 0, len(feed))
	for _, a := range feed {
		resp = append(resp, ActivityToDTO(a))
	}
	ctx.JSON(http.StatusOK, resp)
}

type ToggleReactionRequestDTO struct {
	Kind string `json:"kind" binding:"required,oneof=like fire clap sad" example:"fire"`
}

// ToggleReaction flips the signed-in user's reaction on an activity
// @Summary Toggle reaction
// @Description Reacting twice with the same kind removes the reaction. Unknown activity ids are ignored.
// @Tags Feed
// @Accept json
// @Produce json
// @Param activity_id path string true "Activity id"
// @Param request body ToggleReactionRequestDTO true "Reaction kind"
// @Success 200 {object} FeedActivityResponseDTO "Updated activity"
// @Success 204 "Activity unknown, nothing to do"
// @Failure 400 {object} http_common.ErrorResponse "Invalid id or kind"
// @Security SessionToken
// @Router /feed/{activity_id}/reactions [post]
func (c *Controller) toggleReaction(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("activity_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid activity id",
		})
		return
	}

	var req ToggleReactionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	sess := http_session_middleware.FromContext(ctx)
	sess.ToggleReaction(id, model.ReactionKind(req.Kind))

	a, ok := sess.Activity(id)
	if !ok {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, ActivityToDTO(a))
}
