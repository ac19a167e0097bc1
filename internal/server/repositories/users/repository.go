// Package users persists registered accounts. Users are created at
// registration and never updated or deleted afterwards.
package users

import (
	"context"

	"github.com/dmitrijs2005/bookkeeper/internal/server/models"
)

type Repository interface {
	// Create stores a new user and fills in ID and CreatedAt.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail returns the user registered under email, or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Exists reports whether any user already holds the username or the email.
	Exists(ctx context.Context, username, email string) (bool, error)
}
