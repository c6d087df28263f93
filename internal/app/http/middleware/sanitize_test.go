package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func sanitizeRouter(captured *map[string]interface{}) *gin.Engine {
	r := gin.New()
	r.POST("/echo", SanitizeAndCleanInputMiddleware(), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		_ = json.Unmarshal(body, captured)
		c.Status(http.StatusOK)
	})
	return r
}

func TestSanitizeStripsMarkup(t *testing.T) {
	var captured map[string]interface{}
	r := sanitizeRouter(&captured)

	payload := `{
		"title": "<script>alert(1)</script>Safe title",
		"additional_authors": [{"first_name": "<b>Wei</b>"}]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if title, _ := captured["title"].(string); strings.Contains(title, "<script>") {
		t.Errorf("script tag survived: %q", title)
	}
	authors, _ := captured["additional_authors"].([]interface{})
	if len(authors) != 1 {
		t.Fatalf("authors = %v", captured["additional_authors"])
	}
	first := authors[0].(map[string]interface{})["first_name"].(string)
	if strings.Contains(first, "<b>") {
		t.Errorf("nested markup survived: %q", first)
	}
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	var captured map[string]interface{}
	r := sanitizeRouter(&captured)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("{nope"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSanitizeSkipsMultipart(t *testing.T) {
	r := gin.New()
	called := false
	r.POST("/upload", SanitizeAndCleanInputMiddleware(), func(c *gin.Context) {
		called = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewBufferString("--boundary--"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=boundary")
	r.ServeHTTP(w, req)

	if !called {
		t.Error("multipart request did not reach the handler")
	}
}
