package books

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookkeeper/internal/common"
	"github.com/dmitrijs2005/bookkeeper/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository used in tests and as a
// throwaway backend when no database is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	books map[string]*models.Book
	seq   int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{books: make(map[string]*models.Book)}
}

func (r *InMemoryRepository) Create(ctx context.Context, book *models.Book) (*models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book.ID = uuid.NewString()
	// a counter keeps ordering stable when two books share a timestamp
	r.seq++
	book.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Nanosecond)

	clone := *book
	r.books[book.ID] = &clone

	return book, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return nil, common.ErrNotFound
	}

	clone := *book
	return &clone, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := []*models.Book{}
	for _, book := range r.books {
		if book.UserID == userID {
			clone := *book
			books = append(books, &clone)
		}
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].CreatedAt.After(books[j].CreatedAt)
	})

	return books, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, book *models.Book) (*models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.books[book.ID]
	if !ok {
		return nil, common.ErrNotFound
	}

	stored.Title = book.Title
	stored.Author = book.Author
	stored.Read = book.Read

	clone := *stored
	return &clone, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return common.ErrNotFound
	}

	delete(r.books, id)
	return nil
}
