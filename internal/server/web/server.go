// Package web exposes the HTML-over-HTTP surface of the service: the
// register/login/logout flows, the guarded landing page, and the session
// cookie plumbing.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/config"
	"github.com/dmitrijs2005/authgate/internal/server/users"
)

type Server struct {
	address    string
	users      *users.Service
	logger     logging.Logger
	sessionTTL time.Duration
	templates  string
	staticDir  string
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service) *Server {
	return &Server{
		address:    cfg.EndpointAddrHTTP,
		users:      us,
		logger:     l.With("module", "http_server"),
		sessionTTL: cfg.SessionTTL,
		templates:  cfg.TemplatesGlob,
		staticDir:  cfg.StaticDir,
	}
}

// Router assembles the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.LoadHTMLGlob(s.templates)
	r.Static("/static", s.staticDir)

	r.GET("/healthz", s.health)

	r.GET("/register", s.registerPage)
	r.POST("/register", s.register)
	r.GET("/login", s.loginPage)
	r.POST("/login", s.login)
	r.GET("/logout", s.logout)

	r.GET("/", s.requireAuth(), s.home)

	return r
}

// Run serves HTTP until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
