package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/bookkeeper/internal/server/models"
	"github.com/dmitrijs2005/bookkeeper/internal/server/services"
	"github.com/julienschmidt/httprouter"
)

type createBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Read   bool   `json:"read"`
}

type updateBookRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Read   *bool   `json:"read"`
}

type bookResponse struct {
	ID        string    `json:"_id"`
	User      string    `json:"user"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type deleteBookResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func newBookResponse(book *models.Book) bookResponse {
	return bookResponse{
		ID:        book.ID,
		User:      book.UserID,
		Title:     book.Title,
		Author:    book.Author,
		Read:      book.Read,
		CreatedAt: book.CreatedAt,
	}
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {

	user := userFromContext(r.Context())

	list, err := s.books.List(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]bookResponse, 0, len(list))
	for _, book := range list {
		resp = append(resp, newBookResponse(book))
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {

	user := userFromContext(r.Context())

	var req createBookRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	book, err := s.books.Create(r.Context(), user.ID, req.Title, req.Author, req.Read)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, newBookResponse(book))
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {

	user := userFromContext(r.Context())

	var req updateBookRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := services.BookUpdate{
		Title:  req.Title,
		Author: req.Author,
		Read:   req.Read,
	}

	book, err := s.books.Update(r.Context(), user.ID, ps.ByName("id"), upd)
	if err != nil {
		s.writeBookError(w, r, err, "Not authorized to update this book")
		return
	}

	s.writeJSON(w, http.StatusOK, newBookResponse(book))
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {

	user := userFromContext(r.Context())

	id := ps.ByName("id")
	if err := s.books.Delete(r.Context(), user.ID, id); err != nil {
		s.writeBookError(w, r, err, "Not authorized to delete this book")
		return
	}

	s.writeJSON(w, http.StatusOK, deleteBookResponse{
		Message: "Book removed successfully",
		ID:      id,
	})
}
