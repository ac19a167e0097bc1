package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookkeeper/internal/logging"
	"github.com/dmitrijs2005/bookkeeper/internal/server/auth"
	"github.com/dmitrijs2005/bookkeeper/internal/server/config"
	"github.com/dmitrijs2005/bookkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bookkeeper/internal/server/services"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret"

func newTestHandler(t *testing.T) (*Server, http.Handler) {
	t.Helper()

	cfg := &config.Config{
		SecretKey:             testSecret,
		TokenValidityDuration: time.Hour,
	}

	rm := repomanager.NewInMemoryRepositoryManager()
	us := services.NewUserService(rm.Users(), cfg)
	bs := services.NewBookService(rm.Books())

	srv := NewServer(":0", logging.NewJSON(), us, bs)
	return srv, srv.routes()
}

func registerUser(t *testing.T, srv *Server, username, email string) (userID, token string) {
	t.Helper()

	user, tk, err := srv.users.Register(context.Background(), username, email, "password123")
	require.NoError(t, err)
	return user.ID, tk
}

func bearer(token string) string {
	return fmt.Sprintf("Bearer %v", token)
}

func TestRootProbe(t *testing.T) {
	_, handler := newTestHandler(t)

	apitest.New().
		Handler(handler).
		Get("/").
		Expect(t).
		Status(http.StatusOK).
		Body("Book Tracker API is running").
		End()
}

func TestRegister(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		_, handler := newTestHandler(t)

		apitest.New().
			Handler(handler).
			Post("/api/auth/register").
			JSON(`{"username":"alice","email":"alice@example.com","password":"password123"}`).
			Expect(t).
			Status(http.StatusCreated).
			Assert(jsonpath.Equal(`$.username`, "alice")).
			Assert(jsonpath.Equal(`$.email`, "alice@example.com")).
			Assert(jsonpath.Present(`$._id`)).
			Assert(jsonpath.Present(`$.token`)).
			End()
	})

	t.Run("missing fields", func(t *testing.T) {
		_, handler := newTestHandler(t)

		apitest.New().
			Handler(handler).
			Post("/api/auth/register").
			JSON(`{"username":"alice"}`).
			Expect(t).
			Status(http.StatusBadRequest).
			Assert(jsonpath.Equal(`$.message`, "Please enter all fields")).
			End()
	})

	t.Run("duplicate", func(t *testing.T) {
		srv, handler := newTestHandler(t)
		registerUser(t, srv, "alice", "alice@example.com")

		apitest.New().
			Handler(handler).
			Post("/api/auth/register").
			JSON(`{"username":"alice","email":"other@example.com","password":"password123"}`).
			Expect(t).
			Status(http.StatusBadRequest).
			Assert(jsonpath.Equal(`$.message`, "User with that email or username already exists")).
			End()
	})

	t.Run("malformed body", func(t *testing.T) {
		_, handler := newTestHandler(t)

		apitest.New().
			Handler(handler).
			Post("/api/auth/register").
			Body(`{not json`).
			Expect(t).
			Status(http.StatusBadRequest).
			Assert(jsonpath.Equal(`$.message`, "invalid request body")).
			End()
	})
}

func TestLogin(t *testing.T) {
	srv, handler := newTestHandler(t)
	userID, _ := registerUser(t, srv, "alice", "alice@example.com")

	t.Run("success", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Post("/api/auth/login").
			JSON(`{"email":"alice@example.com","password":"password123"}`).
			Expect(t).
			Status(http.StatusOK).
			Assert(jsonpath.Equal(`$._id`, userID)).
			Assert(jsonpath.Equal(`$.username`, "alice")).
			Assert(jsonpath.Present(`$.token`)).
			End()
	})

	t.Run("wrong password", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Post("/api/auth/login").
			JSON(`{"email":"alice@example.com","password":"wrongpass"}`).
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal(`$.message`, "Invalid credentials")).
			End()
	})

	t.Run("unknown email", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Post("/api/auth/login").
			JSON(`{"email":"nobody@example.com","password":"password123"}`).
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal(`$.message`, "Invalid credentials")).
			End()
	})
}

func TestProtect(t *testing.T) {
	srv, handler := newTestHandler(t)
	userID, token := registerUser(t, srv, "alice", "alice@example.com")

	t.Run("no token", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Get("/api/books").
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal(`$.message`, "Not authorized, no token")).
			End()
	})

	t.Run("malformed header", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Get("/api/books").
			Header("Authorization", "Basic abc123").
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal(`$.message`, "Not authorized, no token")).
			End()
	})

	t.Run("garbage token", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Get("/api/books").
			Header("Authorization", bearer("not.a.token")).
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal(`$.message`, "Not authorized, token failed")).
			End()
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := auth.GenerateToken(userID, []byte(testSecret), -time.Minute)
		require.NoError(t, err)

		apitest.New().
			Handler(handler).
			Get("/api/books").
			Header("Authorization", bearer(expired)).
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal(`$.message`, "Not authorized, token failed")).
			End()
	})

	t.Run("token for missing user", func(t *testing.T) {
		ghost, err := auth.GenerateToken("no-such-user", []byte(testSecret), time.Hour)
		require.NoError(t, err)

		apitest.New().
			Handler(handler).
			Get("/api/books").
			Header("Authorization", bearer(ghost)).
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal(`$.message`, "Not authorized, user not found")).
			End()
	})

	t.Run("valid token", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Get("/api/books").
			Header("Authorization", bearer(token)).
			Expect(t).
			Status(http.StatusOK).
			Body(`[]`).
			End()
	})
}

func TestBooks_CreateAndList(t *testing.T) {
	srv, handler := newTestHandler(t)
	userID, token := registerUser(t, srv, "alice", "alice@example.com")
	_, otherToken := registerUser(t, srv, "bob", "bob@example.com")

	apitest.New().
		Handler(handler).
		Post("/api/books").
		Header("Authorization", bearer(token)).
		JSON(`{"title":"Dune","author":"Frank Herbert"}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal(`$.title`, "Dune")).
		Assert(jsonpath.Equal(`$.author`, "Frank Herbert")).
		Assert(jsonpath.Equal(`$.read`, false)).
		Assert(jsonpath.Equal(`$.user`, userID)).
		Assert(jsonpath.Present(`$._id`)).
		Assert(jsonpath.Present(`$.createdAt`)).
		End()

	apitest.New().
		Handler(handler).
		Post("/api/books").
		Header("Authorization", bearer(token)).
		JSON(`{"title":"Hyperion","author":"Dan Simmons","read":true}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal(`$.read`, true)).
		End()

	t.Run("missing title", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Post("/api/books").
			Header("Authorization", bearer(token)).
			JSON(`{"author":"Frank Herbert"}`).
			Expect(t).
			Status(http.StatusBadRequest).
			Assert(jsonpath.Equal(`$.message`, "Please add a title and author for the book")).
			End()
	})

	t.Run("newest first", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Get("/api/books").
			Header("Authorization", bearer(token)).
			Expect(t).
			Status(http.StatusOK).
			Assert(jsonpath.Len(`$`, 2)).
			Assert(jsonpath.Equal(`$[0].title`, "Hyperion")).
			Assert(jsonpath.Equal(`$[1].title`, "Dune")).
			End()
	})

	t.Run("other users see only their own", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Get("/api/books").
			Header("Authorization", bearer(otherToken)).
			Expect(t).
			Status(http.StatusOK).
			Body(`[]`).
			End()
	})
}

func TestBooks_Update(t *testing.T) {
	srv, handler := newTestHandler(t)
	userID, token := registerUser(t, srv, "alice", "alice@example.com")
	_, otherToken := registerUser(t, srv, "bob", "bob@example.com")

	book, err := srv.books.Create(context.Background(), userID, "Dune", "Frank Herbert", false)
	require.NoError(t, err)

	t.Run("partial update", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Put("/api/books/"+book.ID).
			Header("Authorization", bearer(token)).
			JSON(`{"read":true}`).
			Expect(t).
			Status(http.StatusOK).
			Assert(jsonpath.Equal(`$.title`, "Dune")).
			Assert(jsonpath.Equal(`$.read`, true)).
			End()
	})

	t.Run("empty payload", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Put("/api/books/"+book.ID).
			Header("Authorization", bearer(token)).
			JSON(`{}`).
			Expect(t).
			Status(http.StatusBadRequest).
			Assert(jsonpath.Equal(`$.message`, "No valid fields provided for update")).
			End()
	})

	t.Run("not the owner", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Put("/api/books/"+book.ID).
			Header("Authorization", bearer(otherToken)).
			JSON(`{"read":true}`).
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal(`$.message`, "Not authorized to update this book")).
			End()
	})

	t.Run("unknown book", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Put("/api/books/no-such-id").
			Header("Authorization", bearer(token)).
			JSON(`{"read":true}`).
			Expect(t).
			Status(http.StatusNotFound).
			Assert(jsonpath.Equal(`$.message`, "Book not found")).
			End()
	})
}

func TestBooks_Delete(t *testing.T) {
	srv, handler := newTestHandler(t)
	userID, token := registerUser(t, srv, "alice", "alice@example.com")
	_, otherToken := registerUser(t, srv, "bob", "bob@example.com")

	book, err := srv.books.Create(context.Background(), userID, "Dune", "Frank Herbert", false)
	require.NoError(t, err)

	t.Run("not the owner", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Delete("/api/books/"+book.ID).
			Header("Authorization", bearer(otherToken)).
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal(`$.message`, "Not authorized to delete this book")).
			End()
	})

	t.Run("success", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Delete("/api/books/"+book.ID).
			Header("Authorization", bearer(token)).
			Expect(t).
			Status(http.StatusOK).
			Assert(jsonpath.Equal(`$.message`, "Book removed successfully")).
			Assert(jsonpath.Equal(`$.id`, book.ID)).
			End()
	})

	t.Run("already gone", func(t *testing.T) {
		apitest.New().
			Handler(handler).
			Delete("/api/books/"+book.ID).
			Header("Authorization", bearer(token)).
			Expect(t).
			Status(http.StatusNotFound).
			Assert(jsonpath.Equal(`$.message`, "Book not found")).
			End()
	})
}
