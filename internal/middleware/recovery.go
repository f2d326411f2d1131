package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery logs panics with their stack and renders the 500 page instead
// of leaking internals to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error().
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Str("error", fmt.Sprintf("%v", recovered)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.HTML(http.StatusInternalServerError, "500.html", nil)
				c.Abort()
			}
		}()

		c.Next()
	}
}
