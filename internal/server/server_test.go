package server_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosuda/littleknowledge/internal/config"
	"github.com/gosuda/littleknowledge/internal/content"
	"github.com/gosuda/littleknowledge/internal/render"
	"github.com/gosuda/littleknowledge/internal/server"
)

func testConfig(basePath string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Addr:           "127.0.0.1:0",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   5 * time.Second,
			CORSOrigins:    []string{"https://example.com"},
			RateLimitRPS:   1000,
			RateLimitBurst: 1000,
		},
		Site: config.SiteConfig{BasePath: basePath},
	}
}

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"site.css":       &fstest.MapFile{Data: []byte("body{margin:0}")},
		"scrolltop.wasm": &fstest.MapFile{Data: []byte("\x00asm")},
	}
}

func newServer(t *testing.T, cfg *config.Config) *server.Server {
	t.Helper()
	catalog := content.NewCatalog()
	r, err := render.New(catalog, render.Options{BasePath: cfg.Site.BasePath})
	require.NoError(t, err)
	return server.New(t.Context(), cfg, catalog, r, testAssets())
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Pages(t *testing.T) {
	t.Parallel()

	h := newServer(t, testConfig("")).Handler()

	tests := []struct {
		path string
		want string
	}{
		{"/", "英语小知识导航"},
		{"/pronouns", "人称代词详解"},
		{"/pronouns/", "人称代词详解"},
		{"/consonant-clusters", "辅音连缀 Consonant Clusters"},
		{"/consonant-clusters/", "辅音连缀 Consonant Clusters"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			rec := get(t, h, tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, "zh-CN", rec.Header().Get("Content-Language"))
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestServer_NotFoundPage(t *testing.T) {
	t.Parallel()

	h := newServer(t, testConfig("")).Handler()

	for _, path := range []string{"/verbs", "/pronouns/extra", "/static/missing.css"} {
		rec := get(t, h, path)
		assert.Equalf(t, http.StatusNotFound, rec.Code, "GET %s", path)
	}

	rec := get(t, h, "/verbs")
	assert.Contains(t, rec.Body.String(), "404")
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestServer_Static(t *testing.T) {
	t.Parallel()

	h := newServer(t, testConfig("")).Handler()

	rec := get(t, h, "/static/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{margin:0}", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")

	rec = get(t, h, "/static/scrolltop.wasm")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/wasm", rec.Header().Get("Content-Type"))

	rec = get(t, h, "/static/")
	assert.Equal(t, http.StatusNotFound, rec.Code, "no directory listing")
}

func TestServer_Healthz(t *testing.T) {
	t.Parallel()

	rec := get(t, newServer(t, testConfig("")).Handler(), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_API(t *testing.T) {
	t.Parallel()

	h := newServer(t, testConfig("/little-knowledge")).Handler()

	rec := get(t, h, "/api/v1/modules")
	require.Equal(t, http.StatusOK, rec.Code)

	var modules []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &modules))
	assert.Len(t, modules, 2)

	rec = get(t, h, "/api/v1/pronouns/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_BasePath(t *testing.T) {
	t.Parallel()

	h := newServer(t, testConfig("/little-knowledge")).Handler()

	rec := get(t, h, "/")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/little-knowledge/", rec.Header().Get("Location"))

	for _, path := range []string{"/little-knowledge", "/little-knowledge/"} {
		rec = get(t, h, path)
		require.Equalf(t, http.StatusOK, rec.Code, "GET %s", path)
		assert.Contains(t, rec.Body.String(), `href="/little-knowledge/pronouns"`)
	}

	rec = get(t, h, "/little-knowledge/pronouns")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, h, "/little-knowledge/static/site.css")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, h, "/pronouns")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_CORS(t *testing.T) {
	t.Parallel()

	h := newServer(t, testConfig("")).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/modules", http.NoBody)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/modules", http.NoBody)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RateLimit(t *testing.T) {
	t.Parallel()

	cfg := testConfig("")
	cfg.Server.RateLimitRPS = 0.001
	cfg.Server.RateLimitBurst = 2
	h := newServer(t, cfg).Handler()

	for range 2 {
		require.Equal(t, http.StatusOK, get(t, h, "/healthz").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(t, h, "/healthz").Code)
}

// brokenPages fails every render so the 500 path can be observed.
type brokenPages struct{}

func (brokenPages) Render(io.Writer, string) error { return errors.New("template exploded") }

func (brokenPages) RenderNotFound(io.Writer) error { return errors.New("template exploded") }

func (brokenPages) Lang() string { return "en" }

func TestServer_RenderError(t *testing.T) {
	t.Parallel()

	h := server.New(t.Context(), testConfig(""), content.NewCatalog(), brokenPages{}, nil).Handler()

	rec := get(t, h, "/pronouns")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = get(t, h, "/static/site.css")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_StartShutdown(t *testing.T) {
	t.Parallel()

	s := newServer(t, testConfig(""))

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(t.Context()) }()

	// Give ListenAndServe a moment; Shutdown before listen is also fine.
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, s.Shutdown(t.Context()))
	require.NoError(t, <-errCh)
}
