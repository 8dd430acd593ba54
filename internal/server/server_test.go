package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/config"
	"portfolio/internal/middlewares"
	"portfolio/internal/richtext"
	"portfolio/internal/services"
	"portfolio/internal/source"
	"portfolio/internal/source/static"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() config.Config {
	return config.Config{
		Backend: config.BackendNone,
		Server: config.ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"*"},
		},
		Source: config.SourceConfig{Timeout: time.Second},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	content := services.NewContentService(source.Disabled{}, static.MustLoad(), time.Second, zerolog.Nop())
	router, err := NewRouter(testConfig(), services.NewPageService(content), richtext.NewRenderer(), zerolog.Nop())
	require.NoError(t, err)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status    string          `json:"status"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	RequestID string          `json:"request_id"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestPages(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name     string
		path     string
		status   int
		contains string
	}{
		{name: "home", path: "/", status: http.StatusOK, contains: "Web3 Developer"},
		{name: "projects", path: "/projects", status: http.StatusOK, contains: "All Projects"},
		{name: "project", path: "/projects/arcade", status: http.StatusOK, contains: "AI Agent Marketplace"},
		{name: "unknown project", path: "/projects/nope", status: http.StatusNotFound, contains: "could not be found"},
		{name: "unknown route", path: "/nope", status: http.StatusNotFound, contains: "could not be found"},
		{name: "stylesheet", path: "/static/site.css", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.contains != "" {
				assert.Contains(t, w.Body.String(), tt.contains)
			}
		})
	}
}

func TestAPIProjects(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/projects?featured=true", nil))
	require.Equal(t, http.StatusOK, w.Code)

	env := decode(t, w)
	assert.Equal(t, "success", env.Status)
	assert.NotEmpty(t, env.RequestID)

	var projects []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &projects))
	assert.Len(t, projects, len(static.MustLoad().Projects))
}

func TestAPIProjectsBadFlag(t *testing.T) {
	w := serve(newTestRouter(t), httptest.NewRequest(http.MethodGet, "/api/v1/projects?featured=maybe", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", decode(t, w).Status)
}

func TestAPIProject(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/projects/arcade", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var page services.ProjectPage
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &page))
	assert.Equal(t, "arcade", page.Project.Slug)
	assert.Len(t, page.Related, services.RelatedLimit)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/projects/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", decode(t, w).Message)
}

func TestAPISingletons(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/home", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"top_text":"Web3 Developer"`)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/site", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"logo_text":"ade.dev"`)
}

func TestHealth(t *testing.T) {
	w := serve(newTestRouter(t), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "backend": "none"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(t)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(middlewares.RequestIDHeader, id)
	assert.Equal(t, id, serve(router, req).Header().Get(middlewares.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(middlewares.RequestIDHeader, "not-a-uuid")
	got := serve(router, req).Header().Get(middlewares.RequestIDHeader)
	assert.NotEqual(t, "not-a-uuid", got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/site", nil)
	req.Header.Set("Origin", "https://other.example")

	w := serve(newTestRouter(t), req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRepository(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  func(*config.Config)
		want string
	}{
		{name: "none", cfg: func(c *config.Config) {}, want: "none"},
		{name: "auto picks directus", cfg: func(c *config.Config) {
			c.Backend = config.BackendAuto
			c.Directus.URL = "http://cms.local"
		}, want: "directus"},
		{name: "payload", cfg: func(c *config.Config) {
			c.Backend = config.BackendPayload
			c.Payload.URL = "http://cms.local"
		}, want: "payload"},
		{name: "unreachable postgres falls back", cfg: func(c *config.Config) {
			c.Backend = config.BackendPostgres
			c.Database.URL = "postgres://%zz"
		}, want: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.cfg(&cfg)

			repo, closeRepo, err := NewRepository(ctx, cfg, zerolog.Nop())
			require.NoError(t, err)
			require.NotNil(t, closeRepo)
			defer closeRepo()

			assert.Equal(t, tt.want, repo.Name())
		})
	}
}

func TestNewServer(t *testing.T) {
	cfg := testConfig()
	cfg.Server.ReadTimeout = 3 * time.Second

	content := services.NewContentService(source.Disabled{}, static.MustLoad(), time.Second, zerolog.Nop())
	srv, err := NewServer(cfg, services.NewPageService(content), richtext.NewRenderer(), zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, 3*time.Second, srv.ReadTimeout)
}
