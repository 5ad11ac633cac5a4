package web

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/config"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/dmitrijs2005/authgate/internal/server/users"
)

// ---- in-memory credential store ----

type memRepo struct {
	mu       sync.Mutex
	seq      int
	byID     map[string]*models.User
	byEmail  map[string]*models.User
	failWith error
}

func newMemRepo() *memRepo {
	return &memRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *memRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return nil, r.failWith
	}
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, common.ErrEmailTaken
	}

	r.seq++
	u.ID = fmt.Sprintf("u-%d", r.seq)
	u.CreatedAt = time.Now()
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return u, nil
}

func (r *memRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

// delete removes a stored user, simulating a stale token's vanished owner.
func (r *memRepo) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.byID[id]; ok {
		delete(r.byEmail, u.Email)
		delete(r.byID, id)
	}
}

// ---- helpers ----

func writeTemplate(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
		t.Fatalf("writing template %s: %v", name, err)
	}
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	writeTemplate(t, dir, "register.html",
		`<h1>Register</h1>{{if .Message}}<p class="error">{{.Message}}</p>{{end}}`)
	writeTemplate(t, dir, "login.html",
		`<h1>Login</h1>{{if .Message}}<p class="error">{{.Message}}</p>{{end}}<input name="email" value="{{.Email}}">`)
	writeTemplate(t, dir, "home.html",
		`<h1>Welcome {{.Name}}</h1>`)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.SessionTTL = time.Minute
	cfg.BcryptCost = bcrypt.MinCost // keep hashing fast in tests
	cfg.TemplatesGlob = filepath.Join(dir, "*.html")
	cfg.StaticDir = dir
	cfg.GinMode = gin.TestMode
	return cfg
}

func newTestServer(t *testing.T, repo *memRepo) (*Server, *gin.Engine, *users.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := newTestConfig(t)
	svc := users.NewService(repo, cfg)
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	s := NewServer(cfg, logger, svc)
	return s, s.Router(), svc
}

func mustRegister(t *testing.T, svc *users.Service, name, email, password string) (*models.User, string) {
	t.Helper()
	user, token, err := svc.Register(context.Background(), name, email, password)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	return user, token
}
