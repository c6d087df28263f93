package middleware

import (
	"fmt"
	"net/http"
	"time"

	"abstract-portal/internal/cache"

	"github.com/gin-gonic/gin"
)

// RateLimit caps requests per client IP on a route. With no Redis client it
// passes everything through, and it fails open on Redis errors so a cache
// outage never blocks submissions.
func RateLimit(client *cache.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := client.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "Too many requests, please try again later"})
			c.Abort()
			return
		}

		c.Next()
	}
}
