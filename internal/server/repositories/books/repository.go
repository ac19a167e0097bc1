// Package books persists the per-user book records.
package books

import (
	"context"

	"github.com/dmitrijs2005/bookkeeper/internal/server/models"
)

type Repository interface {
	// Create stores a new book and fills in ID and CreatedAt.
	Create(ctx context.Context, book *models.Book) (*models.Book, error)

	// GetByID returns the book with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Book, error)

	// ListByUser returns all books owned by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Book, error)

	// Update overwrites the mutable fields (title, author, read) of the
	// stored book identified by book.ID. Returns common.ErrNotFound if the
	// row is gone.
	Update(ctx context.Context, book *models.Book) (*models.Book, error)

	// Delete removes the book, or returns common.ErrNotFound.
	Delete(ctx context.Context, id string) error
}
