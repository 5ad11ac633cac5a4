// Package users persists credential records and is the only owner of the
// users collection.
package users

import (
	"context"

	"github.com/dmitrijs2005/authgate/internal/server/models"
)

type Repository interface {
	// Create stores a new record, assigning its id, and returns it.
	// A duplicate email yields common.ErrEmailTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the record for the email or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the record for the id or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
