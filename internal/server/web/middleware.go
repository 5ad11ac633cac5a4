package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/models"
)

// contextUserKey is where the guard stores the authenticated user for
// downstream handlers.
const contextUserKey = "auth.user"

// requireAuth gates a route on a valid session token. A missing cookie, a
// malformed/forged/expired token, and a token whose user no longer exists
// all resolve to the anonymous state and a redirect to the login page; only
// the happy path reaches the handler.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {

		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		user, err := s.users.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, common.ErrorInternal) {
				s.logger.Error(c.Request.Context(), "auth lookup failed", "error", err)
			}
			clearSessionCookie(c)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// currentUser extracts the user attached by requireAuth.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
