package http_profile

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/reeltaste/core/internal/delivery/http/common"
	http_session_middleware "github.com/reeltaste/core/internal/delivery/http/middleware/session"
	"github.com/reeltaste/core/internal/model"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
)

// Mirror keeps the device-storage copy of the authenticated user in step
// with profile edits, so a reboot re-hydrates the latest state.
type Mirror interface {
	Login(t string) (model.User, bool, error)
	Persist(t string, u model.User) error
}

type Controller struct {
	mirror     Mirror
	middleware *http_session_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(mirror Mirror, middleware *http_session_middleware.Middleware, opts ...ControllerOption) *Controller {
	c := &Controller{
		mirror:     mirror,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile", c.middleware.SessionRequired())
	profile.GET("", c.me)
	profile.PUT("", c.update)
	profile.PUT("/rushmore", c.setRushmore)

	router.GET("/friends", c.middleware.SessionRequired(), c.friends)
	router.GET("/users/:user_id", c.middleware.SessionRequired(), c.userByID)
}

type ContentRefDTO struct {
	Type string `json:"type" binding:"required,oneof=movie show" example:"movie"`
	ID   string `json:"id" binding:"required,uuid" example:"0b13c4f8-2f7c-5a51-9f6e-1c67a2b8d901"`
}

func ConvertRef(dto ContentRefDTO) model.ContentRef {
	return model.ContentRef{
		Type: model.ContentType(dto.Type),
		ID:   uuid.MustParse(dto.ID),
	}
}

func RefToDTO(ref model.ContentRef) ContentRefDTO {
	return ContentRefDTO{Type: string(ref.Type), ID: ref.ID.String()}
}

type ProfileResponseDTO struct {
	ID            string          `json:"id"`
	Handle        string          `json:"handle"`
	DisplayName   string          `json:"display_name"`
	Bio           string          `json:"bio"`
	AvatarColor   string          `json:"avatar_color"`
	MountRushmore []ContentRefDTO `json:"mount_rushmore"`
}

func ProfileToDTO(u model.User) ProfileResponseDTO {
	rushmore := make([]ContentRefDTO, 0, len(u.MountRushmore))
	for _, ref := range u.MountRushmore {
		rushmore = append(rushmore, RefToDTO(ref))
	}
	return ProfileResponseDTO{
		ID:            u.ID.String(),
		Handle:        u.Handle,
		DisplayName:   u.DisplayName,
		Bio:           u.Bio,
		AvatarColor:   u.AvatarColor,
		MountRushmore: rushmore,
	}
}

// Me returns the signed-in profile
// @Summary Current profile
// @Tags Profile
// @Produce json
// @Success 200 {object} ProfileResponseDTO "Profile"
// @Security SessionToken
// @Router /profile [get]
func (c *Controller) me(ctx *gin.Context) {
	u := http_session_middleware.FromContext(ctx).User()
	ctx.JSON(http.StatusOK, ProfileToDTO(u))
}

type UpdateProfileRequestDTO struct {
	DisplayName string `json:"display_name" example:"Mara Voss"`
	Bio         string `json:"bio" example:"Slow cinema apologist."`
	AvatarColor string `json:"avatar_color" example:"#7c5cff"`
}

// Update edits the display fields
// @Summary Update profile
// @Description Empty fields keep their current value
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequestDTO true "Fields to change"
// @Success 200 {object} ProfileResponseDTO "Updated profile"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Security SessionToken
// @Router /profile [put]
func (c *Controller) update(ctx *gin.Context) {
	var req UpdateProfileRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	u := http_session_middleware.FromContext(ctx).UpdateProfile(usecase_session.ProfileUpdate{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarColor: req.AvatarColor,
	})
	c.mirrorUser(ctx, u)
	ctx.JSON(http.StatusOK, ProfileToDTO(u))
}

// mirrorUser pushes the edited profile back to device storage when the
// device holds a signed-up snapshot.
func (c *Controller) mirrorUser(ctx *gin.Context, u model.User) {
	token := ctx.GetHeader(http_session_middleware.Header)
	if _, ok, err := c.mirror.Login(token); err != nil || !ok {
		return
	}
	if err := c.mirror.Persist(token, u); err != nil {
		c.logger.Error("failed to mirror profile edit", slog.String("error", err.Error()))
	}
}

type RushmoreRequestDTO struct {
	Titles []ContentRefDTO `json:"titles" binding:"required,dive"`
}

// SetRushmore replaces the all-time favorites
// @Summary Set mount rushmore
// @Description Replaces the profile's pinned favorites, at most four
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body RushmoreRequestDTO true "Up to four catalog refs"
// @Success 200 {object} ProfileResponseDTO "Updated profile"
// @Failure 400 {object} http_common.ErrorResponse "Invalid body or more than four titles"
// @Security SessionToken
// @Router /profile/rushmore [put]
func (c *Controller) setRushmore(ctx *gin.Context) {
	var req RushmoreRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	refs := make([]model.ContentRef, 0, len(req.Titles))
	for _, dto := range req.Titles {
		refs = append(refs, ConvertRef(dto))
	}

	sess := http_session_middleware.FromContext(ctx)
	if err := sess.SetMountRushmore(refs); err != nil {
		if errors.Is(err, usecase_session.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: err.Error(),
			})
			return
		}
		c.logger.Error("failed to set mount rushmore", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}
	ctx.JSON(http.StatusOK, ProfileToDTO(sess.User()))
}

type FriendResponseDTO struct {
	ProfileResponseDTO
	TasteMatch int `json:"taste_match"`
}

// Friends lists the signed-in user's friends
// @Summary Friends
// @Description Friends joined with their profiles and taste-match percentages
// @Tags Profile
// @Produce json
// @Success 200 {array} FriendResponseDTO "Friends"
// @Security SessionToken
// @Router /friends [get]
func (c *Controller) friends(ctx *gin.Context) {
	sess := http_session_middleware.FromContext(ctx)
	me := sess.User()

	friends := sess.Friends()
	resp := make([]FriendResponseDTO, 0, len(friends))
	for _, f := range friends {
		dto := FriendResponseDTO{ProfileResponseDTO: ProfileToDTO(f)}
		for _, rec := range me.Friends {
			if rec.UserID == f.ID {
				dto.TasteMatch = rec.TasteMatch
				break
			}
		}
		resp = append(resp, dto)
	}
	ctx.JSON(http.StatusOK, resp)
}

// UserByID resolves any known profile
// @Summary Profile by id
// @Tags Profile
// @Produce json
// @Param user_id path string true "User id"
// @Success 200 {object} ProfileResponseDTO "Profile"
// @Failure 404 {object} http_common.ErrorResponse "Unknown user"
// @Security SessionToken
// @Router /users/{user_id} [get]
func (c *Controller) userByID(ctx *gin.Context) {
	u, ok := http_session_middleware.FromContext(ctx).UserByID(ctx.Param("user_id"))
	if !ok {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "user not found",
		})
		return
	}
	ctx.JSON(http.StatusOK, ProfileToDTO(u))
}
