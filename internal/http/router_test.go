package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	httpH "github.com/skillone/skillpath-backend/internal/http/handlers"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

func TestNewRouterServesHealthcheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := NewRouter(RouterConfig{
		Log:           newRouterTestLog(t),
		HealthHandler: httpH.NewHealthHandler(),
	})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("unexpected body: got=%q want=%q", rec.Body.String(), "ok")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header from middleware stack")
	}
}

func TestNewRouterSkipsUnsetHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := NewRouter(RouterConfig{Log: newRouterTestLog(t)})

	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/healthcheck"},
		{http.MethodPost, "/api/generate-learning-path"},
		{http.MethodGet, "/api/courses"},
		{http.MethodGet, "/metrics"},
	}
	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.target, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s %s: unexpected status: got=%d want=%d", route.method, route.target, rec.Code, http.StatusNotFound)
		}
	}
}

func newRouterTestLog(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return log
}
