package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newPipelineRouter(production bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders())
	r.Use(Recovery(production))
	r.Use(CORS([]string{"http://localhost:5173"}))
	r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/boom", func(c *gin.Context) { panic("kaput") })
	r.NoRoute(NotFound())
	return r
}

func do(r http.Handler, method, path, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSecurityHeaders_AppliedUnconditionally(t *testing.T) {
	r := newPipelineRouter(false)

	for _, path := range []string{"/ok", "/nowhere"} {
		w := do(r, http.MethodGet, path, "")
		if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
			t.Fatalf("%s: missing nosniff, got %q", path, got)
		}
		if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
			t.Fatalf("%s: missing frame options, got %q", path, got)
		}
	}
}

func TestCORS_NoOriginPasses(t *testing.T) {
	r := newPipelineRouter(false)
	w := do(r, http.MethodGet, "/ok", "")
	if w.Code != http.StatusOK {
		t.Fatalf("no-origin request must pass, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("no CORS headers expected without an Origin")
	}
}

func TestCORS_AllowedOriginEchoedWithCredentials(t *testing.T) {
	r := newPipelineRouter(false)
	w := do(r, http.MethodGet, "/ok", "http://localhost:5173")
	if w.Code != http.StatusOK {
		t.Fatalf("allowed origin must pass, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected origin echo, got %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("credentials must be permitted for allowed origins")
	}
}

func TestCORS_DisallowedOriginRejected(t *testing.T) {
	r := newPipelineRouter(false)
	w := do(r, http.MethodGet, "/ok", "https://evil.example.com")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	var b map[string]any
	json.Unmarshal(w.Body.Bytes(), &b)
	if b["error"] != CodeCORS {
		t.Fatalf("expected CORS envelope, got %v", b)
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	r := newPipelineRouter(false)
	w := do(r, http.MethodOptions, "/ok", "http://localhost:5173")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", w.Code)
	}
}

func TestNotFound_EchoesPath(t *testing.T) {
	r := newPipelineRouter(false)
	w := do(r, http.MethodGet, "/api/unknown", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var b map[string]any
	json.Unmarshal(w.Body.Bytes(), &b)
	if b["error"] != CodeRouteMissing {
		t.Fatalf("expected route-not-found envelope, got %v", b)
	}
	if b["message"] != "The requested route /api/unknown does not exist" {
		t.Fatalf("message must echo the path, got %v", b["message"])
	}
}

func TestRecovery_HidesDetailInProduction(t *testing.T) {
	w := do(newPipelineRouter(false), http.MethodGet, "/boom", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var b map[string]any
	json.Unmarshal(w.Body.Bytes(), &b)
	if b["message"] != "kaput" {
		t.Fatalf("dev mode must expose the panic detail, got %v", b["message"])
	}

	w = do(newPipelineRouter(true), http.MethodGet, "/boom", "")
	json.Unmarshal(w.Body.Bytes(), &b)
	if b["message"] != "Something went wrong" {
		t.Fatalf("production must hide detail, got %v", b["message"])
	}
	if b["error"] != CodeInternal {
		t.Fatalf("expected internal error envelope")
	}
}
