package flash

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash messages ride the cookie session: a mutation handler adds one,
// the next rendered page drains them.

func Add(c *gin.Context, message string) {
	s := sessions.Default(c)
	s.AddFlash(message)
	_ = s.Save()
}

// Take returns the pending messages and clears them from the session.
func Take(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	_ = s.Save()

	messages := make([]string, 0, len(raw))
	for _, m := range raw {
		if str, ok := m.(string); ok {
			messages = append(messages, str)
		}
	}
	return messages
}
