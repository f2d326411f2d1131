package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON helpers for the few non-HTML endpoints (venue delete, health).

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// NotFoundPage renders the 404 view.
func NotFoundPage(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", nil)
}

// ServerErrorPage renders the 500 view. Internals are never exposed; the
// page carries only a generic message.
func ServerErrorPage(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", nil)
}
