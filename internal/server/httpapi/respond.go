package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/bookkeeper/internal/common"
)

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "error encoding response", "error", err)
	}
}

func (s *Server) writeMessage(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, messageResponse{Message: msg})
}

// writeError is the single mapping from service errors to HTTP responses.
// Sentinel errors carry their user-facing text; anything unrecognized is
// logged and reported as a generic 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {

	var status int

	switch {
	case errors.Is(err, common.ErrMissingFields),
		errors.Is(err, common.ErrUsernameTooShort),
		errors.Is(err, common.ErrInvalidEmailFormat),
		errors.Is(err, common.ErrPasswordTooShort),
		errors.Is(err, common.ErrMissingTitleAuthor),
		errors.Is(err, common.ErrEmptyUpdate),
		errors.Is(err, common.ErrUserAlreadyExists):
		status = http.StatusBadRequest

	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		status = http.StatusUnauthorized

	case errors.Is(err, common.ErrNotOwner):
		// ownership failures do not reveal whether the id exists
		status = http.StatusUnauthorized

	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound

	default:
		s.logger.Error(r.Context(), "internal error", "method", r.Method, "path", r.URL.Path, "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.writeMessage(w, status, err.Error())
}

// writeBookError is writeError with the per-route wording for the two
// errors whose message depends on the operation.
func (s *Server) writeBookError(w http.ResponseWriter, r *http.Request, err error, notOwnerMsg string) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		s.writeMessage(w, http.StatusNotFound, "Book not found")
	case errors.Is(err, common.ErrNotOwner):
		s.writeMessage(w, http.StatusUnauthorized, notOwnerMsg)
	default:
		s.writeError(w, r, err)
	}
}
