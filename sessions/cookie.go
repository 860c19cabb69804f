package sessions

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const CookieName = "session_id"

// SetCookie issues the session cookie to the client.
func SetCookie(c *gin.Context, sess Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetCookie(CookieName, sess.Token, maxAge, "/", "", false, true)
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
