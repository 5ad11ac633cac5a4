package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authgate/internal/common"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) registerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (s *Server) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Email": ""})
}

func (s *Server) home(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{"Name": user.Name})
}

func (s *Server) register(c *gin.Context) {
	ctx := c.Request.Context()

	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, token, err := s.users.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			// Already registered: send the visitor to the login form
			// instead of surfacing an error.
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		s.logger.Error(ctx, "registration failed", "error", err)
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Message": "Something went wrong"})
		return
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)

	setSessionCookie(c, token, s.sessionTTL)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) login(c *gin.Context) {
	ctx := c.Request.Context()

	email := c.PostForm("email")
	password := c.PostForm("password")

	user, token, err := s.users.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			c.Redirect(http.StatusSeeOther, "/register")
		case errors.Is(err, common.ErrorUnauthorized):
			// Re-render with the submitted email pre-filled; the password
			// is never echoed back.
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"Email":   email,
				"Message": "Incorrect Password",
			})
		default:
			s.logger.Error(ctx, "login failed", "error", err)
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Email": email, "Message": "Something went wrong"})
		}
		return
	}

	s.logger.Info(ctx, "Logged in", "user_id", user.ID)

	setSessionCookie(c, token, s.sessionTTL)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) logout(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}
