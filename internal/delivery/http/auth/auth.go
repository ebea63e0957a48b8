package http_auth

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/reeltaste/core/internal/delivery/http/common"
	http_session_middleware "github.com/reeltaste/core/internal/delivery/http/middleware/session"
	service_device_auth "github.com/reeltaste/core/internal/service/auth/device"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
)

type Controller struct {
	service    *service_device_auth.Service
	sessions   *usecase_session.Manager
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
	service *service_device_auth.Service,
	sessions *usecase_session.Manager,
	middleware *http_session_middleware.Middleware,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		service:    service,
		sessions:   sessions,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/sessions", c.boot)

	auth := router.Group("/auth", c.middleware.SessionRequired())
	auth.POST("/signup", c.signup)
	auth.POST("/login", c.login)
	auth.POST("/logout", c.logout)

	device := router.Group("/device", c.middleware.SessionRequired())
	device.GET("", c.deviceState)
	device.PUT("/theme", c.setTheme)
	device.POST("/onboarding", c.completeOnboarding)
}

// BootResponseDTO carries the minted token plus the mirrored device state
// the client needs to skip onboarding and restore its theme.
type BootResponseDTO struct {
	Token              string `json:"token"`
	OnboardingComplete bool   `json:"onboarding_complete"`
	Theme              string `json:"theme"`
}

// Boot starts a device session
// @Summary Start a device session
// @Description Mints a session token, seeds the in-memory state and re-hydrates whatever the device mirrored earlier
// @Tags Auth
// @Produce json
// @Success 201 {object} BootResponseDTO "Session started"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /sessions [post]
func (c *Controller) boot(ctx *gin.Context) {
	token, err := c.service.StartSession()
	if err != nil {
		c.logger.Error("failed to start session", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	sess := c.sessions.Obtain(token)

	// Restore the persisted identity and theme, if the device has any.
	if u, ok, err := c.service.Login(token); err == nil && ok {
		sess.ReplaceUser(u)
	}
	theme, _ := c.service.Theme(token)
	if theme != "" {
		sess.SetTheme(theme)
	}
	onboarded, _ := c.service.OnboardingComplete(token)

	ctx.Header(http_session_middleware.Header, token)
	ctx.JSON(http.StatusCreated, BootResponseDTO{
		Token:              token,
		OnboardingComplete: onboarded,
		Theme:              sess.Theme(),
	})
}

// SignupRequestDTO
type SignupRequestDTO struct {
	Handle      string `json:"handle" binding:"required" example:"mara"`
	DisplayName string `json:"display_name" binding:"required" example:"Mara Voss"`
}

// UserResponseDTO
type UserResponseDTO struct {
	ID          string `json:"id"`
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarColor string `json:"avatar_color"`
}

// Signup creates an account
// @Summary Sign up
// @Description Synthesizes a new user record and persists it as the device's authenticated user. Always succeeds.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignupRequestDTO true "Signup data"
// @Success 201 {object} UserResponseDTO "Account created"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Security SessionToken
// @Router /auth/signup [post]
func (c *Controller) signup(ctx *gin.Context) {
	var req SignupRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	token := ctx.GetHeader(http_session_middleware.Header)
	u, err := c.service.Signup(token, req.Handle, req.DisplayName)
	if err != nil {
		c.logger.Error("signup failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	http_session_middleware.FromContext(ctx).ReplaceUser(u)
	ctx.JSON(http.StatusCreated, UserResponseDTO{
		ID:          u.ID.String(),
		Handle:      u.Handle,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarColor: u.AvatarColor,
	})
}

// Login re-hydrates the stored identity
// @Summary Log in
// @Description Re-reads whatever authenticated user the device last stored. No credential check exists.
// @Tags Auth
// @Produce json
// @Success 200 {object} UserResponseDTO "Identity restored"
// @Failure 404 {object} http_common.ErrorResponse "Device never signed up"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Security SessionToken
// @Router /auth/login [post]
func (c *Controller) login(ctx *gin.Context) {
	token := ctx.GetHeader(http_session_middleware.Header)

	u, ok, err := c.service.Login(token)
	if err != nil {
		c.logger.Error("login failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}
	if !ok {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "no stored account on this device",
		})
		return
	}

	http_session_middleware.FromContext(ctx).ReplaceUser(u)
	ctx.JSON(http.StatusOK, UserResponseDTO{
		ID:          u.ID.String(),
		Handle:      u.Handle,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarColor: u.AvatarColor,
	})
}

// Logout clears the mirror
// @Summary Log out
// @Description Clears the device's stored identity; the session reverts to the default seeded user
// @Tags Auth
// @Success 204 "Logged out"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Security SessionToken
// @Router /auth/logout [post]
func (c *Controller) logout(ctx *gin.Context) {
	token := ctx.GetHeader(http_session_middleware.Header)

	if err := c.service.Logout(token); err != nil {
		c.logger.Error("logout failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	// Back to the demo identity the seed ships with.
	sess := c.sessions.Obtain(token)
	c.sessions.Drop(token)
	fresh := c.sessions.Obtain(token)
	fresh.SetTheme(sess.Theme())

	ctx.Status(http.StatusNoContent)
}

// DeviceStateResponseDTO
type DeviceStateResponseDTO struct {
	OnboardingComplete bool   `json:"onboarding_complete"`
	Theme              string `json:"theme"`
}

// DeviceState returns the mirrored device fields
// @Summary Device state
// @Tags Auth
// @Produce json
// @Success 200 {object} DeviceStateResponseDTO "Mirrored state"
// @Security SessionToken
// @Router /device [get]
func (c *Controller) deviceState(ctx *gin.Context) {
	token := ctx.GetHeader(http_session_middleware.Header)

	onboarded, _ := c.service.OnboardingComplete(token)
	theme, _ := c.service.Theme(token)
	if theme == "" {
		theme = http_session_middleware.FromContext(ctx).Theme()
	}

	ctx.JSON(http.StatusOK, DeviceStateResponseDTO{
		OnboardingComplete: onboarded,
		Theme:              theme,
	})
}

// ThemeRequestDTO
type ThemeRequestDTO struct {
	Theme string `json:"theme" binding:"required,oneof=dark light" example:"dark"`
}

// SetTheme stores the theme preference
// @Summary Set theme
// @Tags Auth
// @Accept json
// @Param request body ThemeRequestDTO true "Theme"
// @Success 204 "Theme stored"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Security SessionToken
// @Router /device/theme [put]
func (c *Controller) setTheme(ctx *gin.Context) {
	var req ThemeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	token := ctx.GetHeader(http_session_middleware.Header)
	if err := c.service.SetTheme(token, req.Theme); err != nil {
		c.logger.Error("failed to store theme", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	http_session_middleware.FromContext(ctx).SetTheme(req.Theme)
	ctx.Status(http.StatusNoContent)
}

// CompleteOnboarding flips the onboarding flag
// @Summary Complete onboarding
// @Tags Auth
// @Success 204 "Flag stored"
// @Security SessionToken
// @Router /device/onboarding [post]
func (c *Controller) completeOnboarding(ctx *gin.Context) {
	token := ctx.GetHeader(http_session_middleware.Header)
	if err := c.service.CompleteOnboarding(token); err != nil {
		c.logger.Error("failed to store onboarding flag", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}
	ctx.Status(http.StatusNoContent)
}
