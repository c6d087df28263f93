package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeAndCleanInputMiddleware strips markup from all string fields of
// JSON request bodies on the public mutating routes. Multipart bodies
// (the PDF upload) pass through untouched; the submit handler sanitizes its
// own form fields.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}
		if !strings.Contains(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		var body map[string]interface{}
		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid body"})
			return
		}
		if len(buf) == 0 {
			c.Next()
			return
		}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Malformed JSON"})
			return
		}

		sanitizeValue(body, policy)

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

// sanitizeValue walks nested objects and arrays so structured author lists
// get the same treatment as flat fields.
func sanitizeValue(v interface{}, policy *bluemonday.Policy) {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, item := range val {
			if str, ok := item.(string); ok {
				val[k] = policy.Sanitize(str)
			} else {
				sanitizeValue(item, policy)
			}
		}
	case []interface{}:
		for i, item := range val {
			if str, ok := item.(string); ok {
				val[i] = policy.Sanitize(str)
			} else {
				sanitizeValue(item, policy)
			}
		}
	}
}
