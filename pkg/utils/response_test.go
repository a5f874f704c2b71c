package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func render(t *testing.T, fn func(c *gin.Context)) (int, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON %q: %v", w.Body.String(), err)
	}
	return w.Code, body
}

func TestSuccessResponse(t *testing.T) {
	code, body := render(t, func(c *gin.Context) { SuccessResponse(c, []int{}) })
	if code != http.StatusOK || body["status"] != StatusOK {
		t.Errorf("SuccessResponse = %d %v", code, body)
	}
	if data, ok := body["data"].([]interface{}); !ok || len(data) != 0 {
		t.Errorf("data = %#v, want empty array", body["data"])
	}
}

func TestStatusResponseWithNullData(t *testing.T) {
	code, body := render(t, func(c *gin.Context) { StatusResponse(c, "No hospitals found", nil) })
	if code != http.StatusOK || body["status"] != "No hospitals found" {
		t.Errorf("StatusResponse = %d %v", code, body)
	}
	if v, ok := body["data"]; !ok || v != nil {
		t.Errorf("data = %#v, want explicit null", v)
	}
}

func TestErrorAndMessageResponses(t *testing.T) {
	code, body := render(t, func(c *gin.Context) { ErrorResponse(c, http.StatusInternalServerError, "boom") })
	if code != http.StatusInternalServerError || body["status"] != StatusError || body["error"] != "boom" {
		t.Errorf("ErrorResponse = %d %v", code, body)
	}

	code, body = render(t, func(c *gin.Context) { MessageResponse(c, http.StatusNotFound, StatusError, "Endpoint not found") })
	if code != http.StatusNotFound || body["message"] != "Endpoint not found" {
		t.Errorf("MessageResponse = %d %v", code, body)
	}
}
