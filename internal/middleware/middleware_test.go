package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-management-api/internal/config"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		wantStatus  int
		wantAllow   string
		wantMethods bool
	}{
		{"wildcard simple request", []string{"*"}, http.MethodGet, "http://app.test", http.StatusOK, "*", false},
		{"wildcard without origin", []string{"*"}, http.MethodGet, "", http.StatusOK, "*", false},
		{"wildcard preflight", []string{"*"}, http.MethodOptions, "http://app.test", http.StatusNoContent, "*", true},
		{"listed origin", []string{"http://app.test"}, http.MethodGet, "http://app.test", http.StatusOK, "http://app.test", false},
		{"unlisted origin", []string{"http://app.test"}, http.MethodGet, "http://evil.test", http.StatusOK, "", false},
		{"unlisted preflight", []string{"http://app.test"}, http.MethodOptions, "http://evil.test", http.StatusNoContent, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: tt.origins}}
			r := gin.New()
			r.Use(CORS(cfg))
			r.GET("/x", okHandler)
			r.OPTIONS("/x", okHandler)

			req := httptest.NewRequest(tt.method, "/x", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
			if got := w.Header().Get("Access-Control-Allow-Methods") != ""; got != tt.wantMethods {
				t.Errorf("Allow-Methods present = %v, want %v", got, tt.wantMethods)
			}
		})
	}
}

func TestBodyParser(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantBody    bool
	}{
		{"json object", "application/json", `{"name":"x"}`, http.StatusOK, true},
		{"form", "application/x-www-form-urlencoded", "name=x&ward=3", http.StatusOK, true},
		{"malformed json", "application/json", `{"name":`, http.StatusBadRequest, false},
		{"trailing garbage", "application/json", `{"a":1} not json`, http.StatusBadRequest, false},
		{"second json value", "application/json", `{"a":1}{"b":2}`, http.StatusBadRequest, false},
		{"trailing whitespace", "application/json", "{\"a\":1}\n", http.StatusOK, true},
		{"too large", "application/json", `{"pad":"` + strings.Repeat("a", 200) + `"}`, http.StatusRequestEntityTooLarge, false},
		{"other content type", "text/plain", "hello", http.StatusOK, false},
		{"no body", "application/json", "", http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var parsed bool
			r := gin.New()
			r.Use(BodyParser(128))
			r.POST("/x", func(c *gin.Context) {
				_, parsed = c.Get(BodyKey)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if parsed != tt.wantBody {
				t.Errorf("body parsed = %v, want %v", parsed, tt.wantBody)
			}
			if tt.wantStatus >= 400 && !strings.Contains(w.Body.String(), `"status":"Error"`) {
				t.Errorf("error body = %s", w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	generated := w.Header().Get(RequestIDHeader)
	if len(generated) != 36 || w.Body.String() != generated {
		t.Errorf("generated id = %q, body = %q", generated, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("propagated id = %q, want abc-123", got)
	}
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name   string
		expose bool
		want   string
	}{
		{"exposed", true, `{"error":"kaboom","status":"Error"}`},
		{"hidden", false, `{"error":"Internal server error","status":"Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Recovery(tt.expose))
			r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

			if w.Code != http.StatusInternalServerError {
				t.Errorf("status = %d, want 500", w.Code)
			}
			if w.Body.String() != tt.want {
				t.Errorf("body = %s, want %s", w.Body.String(), tt.want)
			}
		})
	}
}
