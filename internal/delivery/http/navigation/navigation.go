package http_navigation

import (
	"errors"
	"net/http"

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
	nav := router.Group("/navigation", c.middleware.SessionRequired())
	nav.GET("/stack", c.stack)
	nav.POST("/push", c.push)
	nav.POST("/pop", c.pop)
	nav.POST("/clear", c.clear)
}

// ScreenDTO is the tagged wire form of a navigation descriptor. Kind picks
// the variant; only the fields that variant needs are read.
type ScreenDTO struct {
	Kind    string `json:"kind" binding:"required" example:"movie_detail"`
	MovieID string `json:"movie_id,omitempty" binding:"omitempty,uuid"`
	ShowID  string `json:"show_id,omitempty" binding:"omitempty,uuid"`
	UserID  string `json:"user_id,omitempty" binding:"omitempty,uuid"`
	Query   string `json:"query,omitempty"`
}

var errBadScreen = errors.New("invalid screen descriptor")

func ConvertScreen(dto ScreenDTO) (model.Screen, error) {
	switch model.ScreenKind(dto.Kind) {
	case model.ScreenMovieDetail:
		id, err := uuid.Parse(dto.MovieID)
		if err != nil {
			return nil, errBadScreen
		}
		return model.MovieDetailScreen{MovieID: id}, nil
	case model.ScreenShowDetail:
		id, err := uuid.Parse(dto.ShowID)
		if err != nil {
			return nil, errBadScreen
		}
		return model.ShowDetailScreen{ShowID: id}, nil
	case model.ScreenProfile:
		id, err := uuid.Parse(dto.UserID)
		if err != nil {
			return nil, errBadScreen
		}
		return model.ProfileScreen{UserID: id}, nil
	case model.ScreenProfileEdit:
		return model.ProfileEditScreen{}, nil
	case model.ScreenAuth:
		return model.AuthScreen{}, nil
	case model.ScreenSearch:
		return model.SearchScreen{Query: dto.Query}, nil
	case model.ScreenSettings:
		return model.SettingsScreen{}, nil
	}
	return nil, errBadScreen
}

func ScreenToDTO(s model.Screen) ScreenDTO {
	dto := ScreenDTO{Kind: string(s.Kind())}
	switch v := s.(type) {
	case model.MovieDetailScreen:
		dto.MovieID = v.MovieID.String()
	case model.ShowDetailScreen:
		dto.ShowID = v.ShowID.String()
	case model.ProfileScreen:
		dto.UserID = v.UserID.String()
	case model.SearchScreen:
		dto.Query = v.Query
	}
	return dto
}

// Stack returns the navigation stack, root first
// @Summary Navigation stack
// @Tags Navigation
// @Produce json
// @Success 200 {array} ScreenDTO "Stack"
// @Security SessionToken
// @Router /navigation/stack [get]
func (c *Controller) stack(ctx *gin.Context) {
	stack := http_session_middleware.FromContext(ctx).Stack()
	resp := make([]ScreenDTO, 0, len(stack))
	for _, s := range stack {
		resp = append(resp, ScreenToDTO(s))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Push adds a screen descriptor to the stack
// @Summary Push screen
// @Tags Navigation
// @Accept json
// @Produce json
// @Param request body ScreenDTO true "Screen descriptor"
// @Success 201 {array} ScreenDTO "Updated stack"
// @Failure 400 {object} http_common.ErrorResponse "Unknown kind or missing variant field"
// @Security SessionToken
// @Router /navigation/push [post]
func (c *Controller) push(ctx *gin.Context) {
	var req ScreenDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	screen, err := ConvertScreen(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	sess := http_session_middleware.FromContext(ctx)
	sess.PushScreen(screen)

	stack := sess.Stack()
	resp := make([]ScreenDTO, 0, len(stack))
	for _, s := range stack {
		resp = append(resp, ScreenToDTO(s))
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Pop removes the top screen
// @Summary Pop screen
// @Description Popping an empty stack is a no-op
// @Tags Navigation
// @Success 204 "Popped"
// @Security SessionToken
// @Router /navigation/pop [post]
func (c *Controller) pop(ctx *gin.Context) {
	http_session_middleware.FromContext(ctx).PopScreen()
	ctx.Status(http.StatusNoContent)
}

// Clear empties the stack back to the root tab
// @Summary Clear stack
// @Tags Navigation
// @Success 204 "Cleared"
// @Security SessionToken
// @Router /navigation/clear [post]
func (c *Controller) clear(ctx *gin.Context) {
	http_session_middleware.FromContext(ctx).ClearStack()
	ctx.Status(http.StatusNoContent)
}
