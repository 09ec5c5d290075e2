package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one key=value line per request and turns panics into
// logged 500 responses.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Printf(
					"request_panic method=%s path=%s error=%q stack=%s",
					c.Request.Method, c.Request.URL.Path,
					fmt.Sprintf("%v", recovered), string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Internal Server Error"},
				})
				return
			}

			log.Printf(
				"request method=%s path=%s status=%d client_ip=%s latency=%s",
				c.Request.Method, c.Request.URL.Path,
				c.Writer.Status(), c.ClientIP(), time.Since(start),
			)
		}()

		c.Next()
	}
}
