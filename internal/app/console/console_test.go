package console

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/datadrive/internal/api"
	"github.com/magabrotheeeer/datadrive/internal/config"
	"github.com/magabrotheeeer/datadrive/internal/lib/jwt"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

type backend struct {
	*httptest.Server
	role       string
	userHits   atomic.Int32
	lastCorrID atomic.Value
}

func newBackend(t *testing.T, role string) *backend {
	t.Helper()
	b := &backend{role: role}
	maker := jwt.NewMaker("backend-secret", time.Hour)

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		token, err := maker.GenerateToken("driver@datadrive.io", b.role)
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		b.userHits.Add(1)
		b.lastCorrID.Store(r.Header.Get(api.CorrelationHeader))
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"email": "driver@datadrive.io", "user_name": "driver"})
	})
	mux.HandleFunc("/subscriptions/active", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no active subscription"})
	})
	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Close)
	return b
}

func newApp(t *testing.T, backendURL string) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Env:            "local",
		BackendURL:     backendURL,
		RequestTimeout: 5 * time.Second,
		HTTPServer:     config.HTTPServer{AddressHTTP: "localhost:0", TimeoutHTTP: time.Second, IdleTimeout: time.Second},
		TokenStore:     config.TokenStore{Kind: config.StoreFile, Path: filepath.Join(t.TempDir(), "storage.json")},
		RateLimit:      config.RateLimit{RPS: 1000, Burst: 1000},
	}
	app, err := New(context.Background(), cfg, newNoopLogger())
	require.NoError(t, err)
	t.Cleanup(app.session.Close)
	return app.Handler()
}

func request(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	return w
}

func login(t *testing.T, h http.Handler) {
	t.Helper()
	w := request(h, http.MethodPost, "/login", `{"email":"driver@datadrive.io","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestConsole_RoutingWithoutSession(t *testing.T) {
	b := newBackend(t, "User")
	h := newApp(t, b.URL)

	tests := []struct {
		name         string
		method       string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"protected redirects to login", http.MethodGet, "/profile", http.StatusFound, "/login"},
		{"admin route redirects to login first", http.MethodPost, "/cars", http.StatusFound, "/login"},
		{"unknown path", http.MethodGet, "/nowhere", http.StatusFound, "/not-found"},
		{"unknown method", http.MethodPatch, "/session", http.StatusFound, "/not-found"},
		{"not found page", http.MethodGet, "/not-found", http.StatusNotFound, ""},
		{"session state", http.MethodGet, "/session", http.StatusOK, ""},
		{"login page", http.MethodGet, "/login", http.StatusOK, ""},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, ""},
		{"health", http.MethodGet, "/health", http.StatusOK, ""},
		{"api docs", http.MethodGet, "/docs/index.html", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(h, tt.method, tt.path, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
		})
	}
	assert.Zero(t, b.userHits.Load())
}

func TestConsole_DocsDescribeRoutes(t *testing.T) {
	b := newBackend(t, "User")
	h := newApp(t, b.URL)

	w := request(h, http.MethodGet, "/docs/doc.json", "")

	require.Equal(t, http.StatusOK, w.Code)
	var doc struct {
		Info  struct{ Title string } `json:"info"`
		Paths map[string]any         `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "DataDrive Console API", doc.Info.Title)
	for _, path := range []string{"/login", "/trips/stop", "/cars/{plate}/status", "/settings/{field}", "/subscriptions/buy"} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestConsole_LoginThenProfile(t *testing.T) {
	b := newBackend(t, "User")
	h := newApp(t, b.URL)
	login(t, h)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/profile", nil)
	r.Header.Set(api.CorrelationHeader, "corr-42")
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_name":"driver"`)
	assert.Equal(t, "corr-42", w.Header().Get(api.CorrelationHeader))
	assert.Equal(t, "corr-42", b.lastCorrID.Load())
}

func TestConsole_UserCannotReachAdminRoutes(t *testing.T) {
	b := newBackend(t, "User")
	h := newApp(t, b.URL)
	login(t, h)

	w := request(h, http.MethodDelete, "/cars/ABC1234", "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/not-found", w.Header().Get("Location"))
}

func TestConsole_LogoutClosesProtectedRoutes(t *testing.T) {
	b := newBackend(t, "Admin")
	h := newApp(t, b.URL)
	login(t, h)

	w := request(h, http.MethodGet, "/session", "")
	assert.Contains(t, w.Body.String(), `"is_admin":true`)

	w = request(h, http.MethodPost, "/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = request(h, http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
