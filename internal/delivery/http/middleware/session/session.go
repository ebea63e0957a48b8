package http_session_middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/reeltaste/core/internal/delivery/http/common"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
)

// Header carries the device's session token on every authenticated call.
const Header = "X-session-token"

const contextKey = "session"

type TokenValidator interface {
	IsValid(token string) (bool, error)
}

type Middleware struct {
	validator TokenValidator
	sessions  *usecase_session.Manager
	logger    *slog.Logger
}

func New(
	validator TokenValidator,
	sessions *usecase_session.Manager,
) *Middleware {
	return &Middleware{
		validator: validator,
		sessions:  sessions,
		logger:    slog.Default(),
	}
}

// SessionRequired resolves the device session and stores it on the gin
// context. Requests without a known token are rejected.
func (m *Middleware) SessionRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(Header)
		if t == "" {
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "no " + Header + " header",
			})
			ctx.Abort()
			return
		}

		valid, err := m.validator.IsValid(t)
		if err != nil {
			m.logger.Error("failed to validate session token", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
			ctx.Abort()
			return
		}
		if !valid {
			m.logger.Warn("unknown session token", slog.String("token", t))
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid session token",
			})
			ctx.Abort()
			return
		}

		ctx.Set(contextKey, m.sessions.Obtain(t))
		ctx.Next()
	}
}

// FromContext fetches the session stored by SessionRequired.
func FromContext(ctx *gin.Context) *usecase_session.Session {
	s, _ := ctx.MustGet(contextKey).(*usecase_session.Session)
	return s
}
