package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-discover/internal/llm"
	"github.com/prefeitura-rio/app-discover/internal/models"
	"github.com/prefeitura-rio/app-discover/internal/title"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubDiscoverer struct {
	blogs    []models.SearchResult
	err      error
	lastMode string
}

func (s *stubDiscoverer) Discover(_ context.Context, mode string) ([]models.SearchResult, error) {
	s.lastMode = mode
	return s.blogs, s.err
}

type stubGenerator struct {
	title string
	err   error
	calls int
}

func (s *stubGenerator) Generate(context.Context, string, string) (string, error) {
	s.calls++
	return s.title, s.err
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

type stubReady bool

func (s stubReady) Ready(context.Context) bool { return bool(s) }

func newRouter(d Discoverer, g TitleGenerator) *gin.Engine {
	r := gin.New()
	r.GET("/discover", NewDiscoverHandler(d).Discover)
	r.POST("/generate-title", NewTitleHandler(g).GenerateTitle)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDiscoverHandlerSuccess(t *testing.T) {
	d := &stubDiscoverer{blogs: []models.SearchResult{{URL: "https://lwn.net/a", Title: "A", PublishedDate: "2025-01-01"}}}
	w := doRequest(newRouter(d, &stubGenerator{}), http.MethodGet, "/discover", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "normal", d.lastMode)
	assert.JSONEq(t, `{"blogs":[{"url":"https://lwn.net/a","title":"A","publishedDate":"2025-01-01"}]}`, w.Body.String())
}

func TestDiscoverHandlerModes(t *testing.T) {
	d := &stubDiscoverer{}
	r := newRouter(d, &stubGenerator{})

	w := doRequest(r, http.MethodGet, "/discover?mode=preview", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "preview", d.lastMode)
	assert.JSONEq(t, `{"blogs":[]}`, w.Body.String())

	doRequest(r, http.MethodGet, "/discover?mode=whatever", "")
	assert.Equal(t, "preview", d.lastMode)
}

func TestDiscoverHandlerError(t *testing.T) {
	d := &stubDiscoverer{err: errors.New("upstream down")}
	w := doRequest(newRouter(d, &stubGenerator{}), http.MethodGet, "/discover", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"An error has occurred"}`, w.Body.String())
}

func TestGenerateTitleSuccess(t *testing.T) {
	g := &stubGenerator{title: "Fusion Energy Breakthrough Explained"}
	body := `{"content":"Scientists achieved net energy gain in a fusion experiment...","url":"https://example.com/a"}`
	w := doRequest(newRouter(&stubDiscoverer{}, g), http.MethodPost, "/generate-title", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.GenerateTitleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Fusion Energy Breakthrough Explained", resp.Title)
}

func TestGenerateTitleValidation(t *testing.T) {
	bodies := []string{
		`{"content":"x"}`,
		`{"url":"https://example.com"}`,
		`{"content":"","url":"https://example.com"}`,
		`{}`,
		`not json`,
	}

	for _, body := range bodies {
		g := &stubGenerator{title: "never"}
		w := doRequest(newRouter(&stubDiscoverer{}, g), http.MethodPost, "/generate-title", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"error":"Content and URL are required"}`, w.Body.String(), body)
		assert.Equal(t, 0, g.calls, body)
	}
}

func TestGenerateTitleNoProvider(t *testing.T) {
	g := &stubGenerator{err: llm.ErrNoProvider}
	w := doRequest(newRouter(&stubDiscoverer{}, g), http.MethodPost, "/generate-title", `{"content":"c","url":"u"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"No LLM provider available"}`, w.Body.String())
}

func TestGenerateTitleFailure(t *testing.T) {
	g := &stubGenerator{err: title.ErrGenerationFailed}
	w := doRequest(newRouter(&stubDiscoverer{}, g), http.MethodPost, "/generate-title", `{"content":"c","url":"u"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to generate title"}`, w.Body.String())
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		search Pinger
		llm    ReadyChecker
		status int
	}{
		{"ready", stubPinger{}, stubReady(true), http.StatusOK},
		{"search down", stubPinger{err: errors.New("down")}, stubReady(true), http.StatusServiceUnavailable},
		{"no llm", stubPinger{}, stubReady(false), http.StatusServiceUnavailable},
		{"nothing configured", nil, nil, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.search, tt.llm)
			r := gin.New()
			r.GET("/liveness", h.Liveness)
			r.GET("/readiness", h.Readiness)

			w := doRequest(r, http.MethodGet, "/liveness", "")
			assert.Equal(t, http.StatusOK, w.Code)

			w = doRequest(r, http.MethodGet, "/readiness", "")
			assert.Equal(t, tt.status, w.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.status == http.StatusOK {
				assert.Equal(t, "ready", resp.Status)
			} else {
				assert.Equal(t, "not_ready", resp.Status)
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}
