package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Health probes poll every few seconds and would drown out real traffic.
var unloggedPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
}

// RequestID injects an X-Request-ID header into the request and response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger logs each request with its tenant scope, status, and latency.
// Health probe endpoints are skipped.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if unloggedPaths[path] {
			return
		}

		requestID, _ := c.Get("request_id")
		tenant := "-"
		if id, err := GetTenantID(c); err == nil {
			tenant = id.String()
		}
		log.Printf("[%s] tenant=%s %s %s %d %s",
			requestID,
			tenant,
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start),
		)
		for _, ginErr := range c.Errors {
			log.Printf("[%s] error: %v", requestID, ginErr.Err)
		}
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
