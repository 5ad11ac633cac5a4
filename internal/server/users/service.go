// Package users implements the authentication flows on top of the
// credential store: registration, login, and session token resolution.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/config"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	usersrepo "github.com/dmitrijs2005/authgate/internal/server/repositories/users"
)

type Service struct {
	repo       usersrepo.Repository
	jwtSecret  []byte
	sessionTTL time.Duration
	bcryptCost int
}

func NewService(repo usersrepo.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:       repo,
		jwtSecret:  []byte(cfg.SecretKey),
		sessionTTL: cfg.SessionTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

// SessionTTL reports the configured session lifetime so the transport layer
// can align the cookie expiry with the token's expiry claim.
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Register hashes the password, stores a new credential record, and issues a
// session token for it. The store's unique index arbitrates concurrent
// registrations with the same email; the loser gets common.ErrEmailTaken.
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, "", common.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Login verifies the email/password pair and issues a session token.
// An unknown email yields common.ErrorNotFound so the caller can branch to
// registration; a wrong password yields common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorNotFound
		}
		return nil, "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Authenticate resolves a session token to its stored user. Every token
// failure mode (malformed, forged, expired) and a stale token whose user no
// longer exists collapse into common.ErrorUnauthorized, never a fatal error.
// Store outages surface as common.ErrorInternal so callers can log them.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
