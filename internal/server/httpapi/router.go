package httpapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes builds the route table. Everything under /api/books requires a
// bearer token; the auth endpoints and the root probe do not.
func (s *Server) routes() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/", s.handleRoot)

	router.HandlerFunc(http.MethodPost, "/api/auth/register", s.handleRegister)
	router.HandlerFunc(http.MethodPost, "/api/auth/login", s.handleLogin)

	router.Handle(http.MethodGet, "/api/books", s.protect(s.handleListBooks))
	router.Handle(http.MethodPost, "/api/books", s.protect(s.handleCreateBook))
	router.Handle(http.MethodPut, "/api/books/:id", s.protect(s.handleUpdateBook))
	router.Handle(http.MethodDelete, "/api/books/:id", s.protect(s.handleDeleteBook))

	return router
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Book Tracker API is running"))
}
