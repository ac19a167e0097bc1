package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookkeeper/internal/common"
	"github.com/dmitrijs2005/bookkeeper/internal/server/models"
	"github.com/dmitrijs2005/bookkeeper/internal/server/repositories/books"
)

// BookUpdate carries a partial update; nil fields are left untouched.
type BookUpdate struct {
	Title  *string
	Author *string
	Read   *bool
}

// BookService implements the per-owner book operations. Every mutation
// checks ownership before touching the record; listing is pre-filtered by
// owner at the query level.
type BookService struct {
	repo books.Repository
}

func NewBookService(repo books.Repository) *BookService {
	return &BookService{repo: repo}
}

// List returns the books owned by userID, newest first.
func (s *BookService) List(ctx context.Context, userID string) ([]*models.Book, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing books: %w", err)
	}
	return list, nil
}

// Create stores a new book owned by userID. The read flag defaults to
// false when not supplied by the caller.
func (s *BookService) Create(ctx context.Context, userID, title, author string, read bool) (*models.Book, error) {

	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if title == "" || author == "" {
		return nil, common.ErrMissingTitleAuthor
	}

	book := &models.Book{
		UserID: userID,
		Title:  title,
		Author: author,
		Read:   read,
	}

	book, err := s.repo.Create(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("error creating book: %w", err)
	}

	return book, nil
}

// Update applies the provided fields to the book. Returns
// common.ErrNotFound when the book does not exist, common.ErrNotOwner when
// it belongs to someone else and common.ErrEmptyUpdate when upd carries no
// fields at all.
func (s *BookService) Update(ctx context.Context, userID, bookID string, upd BookUpdate) (*models.Book, error) {

	if upd.Title == nil && upd.Author == nil && upd.Read == nil {
		return nil, common.ErrEmptyUpdate
	}

	book, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if book.UserID != userID {
		return nil, common.ErrNotOwner
	}

	if upd.Title != nil {
		book.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Author != nil {
		book.Author = strings.TrimSpace(*upd.Author)
	}
	if upd.Read != nil {
		book.Read = *upd.Read
	}

	// the record must stay valid after the update
	if book.Title == "" || book.Author == "" {
		return nil, common.ErrMissingTitleAuthor
	}

	book, err = s.repo.Update(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("error updating book: %w", err)
	}

	return book, nil
}

// Delete removes the book after the same existence and ownership checks as
// Update.
func (s *BookService) Delete(ctx context.Context, userID, bookID string) error {

	book, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		return err
	}

	if book.UserID != userID {
		return common.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, bookID); err != nil {
		return fmt.Errorf("error deleting book: %w", err)
	}

	return nil
}
