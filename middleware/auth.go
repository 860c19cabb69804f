package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/sessions"
)

const SessionKey = "session"

// Sessions resolves the session cookie into the request context. Missing,
// unknown, or expired tokens degrade to "no session" rather than an error.
func Sessions(store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(sessions.CookieName); err == nil && token != "" {
			if sess, ok := store.Get(token); ok {
				c.Set(SessionKey, sess)
			}
		}
		c.Next()
	}
}

// CurrentSession returns the session established by Sessions, if any.
func CurrentSession(c *gin.Context) (sessions.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return sessions.Session{}, false
	}
	sess, ok := v.(sessions.Session)
	return sess, ok
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}
		if sess.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
