package http_notification

import (
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
}

func New(middleware *http_session_middleware.Middleware) *Controller {
	return &Controller{middleware: middleware}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications", c.middleware.SessionRequired())
	notifications.GET("", c.list)
	notifications.GET("/unseen", c.unseen)
	notifications.POST("/seen", c.markAllSeen)
	notifications.POST("/:notification_id/seen", c.markSeen)
}

type NotificationResponseDTO struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	ActorID   string    `json:"actor_id"`
	Type      string    `json:"type,omitempty"`
	ContentID string    `json:"content_id,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Seen      bool      `json:"seen"`
}

func NotificationToDTO(n model.Notification) NotificationResponseDTO {
	dto := NotificationResponseDTO{
		ID:        n.ID.String(),
		Kind:      string(n.Kind),
		ActorID:   n.ActorID.String(),
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
		Seen:      n.Seen,
	}
	if n.Subject != nil {
		dto.Type = string(n.Subject.Type)
		dto.ContentID = n.Subject.ID.String()
	}
	return dto
}

// List returns notifications, newest first
// @Summary Notifications
// @Tags Notifications
// @Produce json
// @Success 200 {array} NotificationResponseDTO "Notifications"
// @Security SessionToken
// @Router /notifications [get]
func (c *Controller) list(ctx *gin.Context) {
	notifications := http_session_middleware.FromContext(ctx).Notifications()
	resp := make([]NotificationResponseDTO, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, NotificationToDTO(n))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Unseen returns the badge count
// @Summary Unseen count
// @Tags Notifications
// @Produce json
// @Success 200 {object} map[string]int "Count"
// @Security SessionToken
// @Router /notifications/unseen [get]
func (c *Controller) unseen(ctx *gin.Context) {
	count := http_session_middleware.FromContext(ctx).UnseenCount()
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkSeen
// @Summary Mark one notification seen
// @Tags Notifications
// @Param notification_id path string true "Notification id"
// @Success 204 "Marked"
// @Failure 400 {object} http_common.ErrorResponse "Invalid id"
// @Security SessionToken
// @Router /notifications/{notification_id}/seen [post]
func (c *Controller) markSeen(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("notification_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid notification id",
		})
		return
	}
	http_session_middleware.FromContext(ctx).MarkNotificationSeen(id)
	ctx.Status(http.StatusNoContent)
}

// MarkAllSeen
// @Summary Mark everything seen
// @Tags Notifications
// @Success 204 "Marked"
// @Security SessionToken
// @Router /notifications/seen [post]
func (c *Controller) markAllSeen(ctx *gin.Context) {
	http_session_middleware.FromContext(ctx).MarkAllNotificationsSeen()
	ctx.Status(http.StatusNoContent)
}
