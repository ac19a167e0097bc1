// Command seed loads a demo user and a few books into the database so a
// fresh environment has something to show. The whole load runs in one
// transaction; rerunning against a seeded database is a no-op.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/dmitrijs2005/bookkeeper/internal/dbx"
	"github.com/dmitrijs2005/bookkeeper/internal/server/auth"
	"github.com/dmitrijs2005/bookkeeper/internal/server/config"
	"github.com/dmitrijs2005/bookkeeper/internal/server/models"
	"github.com/dmitrijs2005/bookkeeper/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bookkeeper/internal/server/repositories/users"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@example.com"
	demoPassword = "demo-password"
)

var demoBooks = []models.Book{
	{Title: "The Hobbit", Author: "J.R.R. Tolkien", Read: true},
	{Title: "Dune", Author: "Frank Herbert", Read: false},
	{Title: "Hyperion", Author: "Dan Simmons", Read: false},
}

var errAlreadySeeded = errors.New("already seeded")

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	rm, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer rm.Close()

	err = dbx.WithTx(ctx, rm.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		return seed(ctx, tx)
	})
	if errors.Is(err, errAlreadySeeded) {
		log.Printf("demo user %q already exists, nothing to do", demoUsername)
		return
	}
	if err != nil {
		log.Fatalf("seed error: %v", err)
	}

	log.Printf("seeded user %q with %d books", demoUsername, len(demoBooks))
}

// seed runs against a transactional handle so a failure halfway leaves no
// partial data behind.
func seed(ctx context.Context, tx dbx.DBTX) error {

	userRepo := users.NewPostgresRepository(tx)
	bookRepo := books.NewPostgresRepository(tx)

	exists, err := userRepo.Exists(ctx, demoUsername, demoEmail)
	if err != nil {
		return err
	}
	if exists {
		return errAlreadySeeded
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	user, err := userRepo.Create(ctx, &models.User{
		Username:     demoUsername,
		Email:        demoEmail,
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}

	for _, b := range demoBooks {
		b.UserID = user.ID
		if _, err := bookRepo.Create(ctx, &b); err != nil {
			return err
		}
	}

	return nil
}
