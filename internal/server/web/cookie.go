package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const sessionCookieName = "token"

// setSessionCookie binds the signed token to the client. The cookie's max
// age matches the token's own expiry claim, so neither outlives the other.
func setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, int(ttl.Seconds()), "/", "", c.Request.TLS != nil, true)
}

// clearSessionCookie overwrites the cookie with an empty value and a
// negative max age so the client drops it immediately.
func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", c.Request.TLS != nil, true)
}
