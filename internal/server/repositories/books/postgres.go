package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookkeeper/internal/common"
	"github.com/dmitrijs2005/bookkeeper/internal/dbx"
	"github.com/dmitrijs2005/bookkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, book *models.Book) (*models.Book, error) {

	query :=
		`INSERT INTO books (user_id, title, author, read)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		book.UserID, book.Title, book.Author, book.Read).Scan(&book.ID, &book.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return book, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	query :=
		`SELECT id, user_id, title, author, read, created_at FROM books
		 WHERE id = $1
		 `

	book := &models.Book{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&book.ID, &book.UserID, &book.Title, &book.Author, &book.Read, &book.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return book, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Book, error) {
	query :=
		`SELECT id, user_id, title, author, read, created_at FROM books
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	books := []*models.Book{}
	for rows.Next() {
		book := &models.Book{}
		if err := rows.Scan(&book.ID, &book.UserID, &book.Title, &book.Author, &book.Read, &book.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return books, nil
}

func (r *PostgresRepository) Update(ctx context.Context, book *models.Book) (*models.Book, error) {
	query :=
		`UPDATE books SET title = $2, author = $3, read = $4
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, book.ID, book.Title, book.Author, book.Read)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrNotFound
	}

	return book, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM books WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
