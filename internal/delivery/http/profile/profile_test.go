package http_profile

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	http_session_middleware "github.com/reeltaste/core/internal/delivery/http/middleware/session"
	"github.com/reeltaste/core/internal/model"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
)

type ProfileControllerSuite struct {
	suite.Suite
}

type acceptAllValidator struct{}

func (acceptAllValidator) IsValid(string) (bool, error) { return true, nil }

type stubMirror struct {
	snapshot  *model.User
	persisted []model.User
}

func (m *stubMirror) Login(string) (model.User, bool, error) {
	if m.snapshot == nil {
		return model.User{}, false, nil
	}
	return *m.snapshot, true, nil
}

func (m *stubMirror) Persist(_ string, u model.User) error {
	m.persisted = append(m.persisted, u)
	m.snapshot = &u
	return nil
}

type resources struct {
	engine *gin.Engine
	mirror *stubMirror
}

func initResources(mirror *stubMirror) *resources {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	middleware := http_session_middleware.New(acceptAllValidator{}, usecase_session.NewManager())
	New(mirror, middleware).RegisterRoutes(engine.Group("/api/v1"))

	return &resources{engine: engine, mirror: mirror}
}

func (r *resources) put(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set(http_session_middleware.Header, "device-token")
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.engine.ServeHTTP(rec, req)
	return rec
}

func (suite *ProfileControllerSuite) TestUpdateMirrorsSnapshot(t provider.T) {
	t.Parallel()

	t.Run("Edit lands in device storage when a snapshot exists", func(t provider.T) {
		t.Parallel()
		mirror := &stubMirror{snapshot: &model.User{
			ID:          uuid.New(),
			Handle:      "nightowl",
			DisplayName: "Night Owl",
		}}
		r := initResources(mirror)

		rec := r.put("/api/v1/profile", `{"bio":"up past midnight"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, mirror.persisted, 1)
		assert.Equal(t, "up past midnight", mirror.persisted[0].Bio)
	})

	t.Run("No snapshot means nothing to mirror", func(t provider.T) {
		t.Parallel()
		mirror := &stubMirror{}
		r := initResources(mirror)

		rec := r.put("/api/v1/profile", `{"display_name":"Someone Else"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, mirror.persisted)
	})
}

func TestProfileControllerSuite(t *testing.T) {
	suite.RunSuite(t, new(ProfileControllerSuite))
}
