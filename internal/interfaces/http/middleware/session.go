package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/teromix/storefront-api/internal/config"
)

const sessionContextKey = "session_id"

// Session ensures every request carries a session id cookie. The id scopes
// the visitor's cart; a new id is minted when the cookie is missing or not
// a valid UUID.
func Session(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.Cart.CookieName)
		if err != nil || sessionID == "" || uuid.Validate(sessionID) != nil {
			sessionID = uuid.New().String()
			c.SetCookie(
				cfg.Cart.CookieName,
				sessionID,
				cfg.Cart.CookieMaxAge,
				"/",
				"",
				cfg.Cart.CookieSecure,
				true, // httpOnly
			)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session id set by the Session middleware
func GetSessionID(c *gin.Context) string {
	if v, exists := c.Get(sessionContextKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
