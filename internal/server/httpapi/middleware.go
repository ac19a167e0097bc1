package httpapi

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"github.com/dmitrijs2005/bookkeeper/internal/common"
	"github.com/dmitrijs2005/bookkeeper/internal/server/models"
	"github.com/julienschmidt/httprouter"
)

type ctxKey string

const userKey ctxKey = "user"

var bearerTokenRE = regexp.MustCompile(`^Bearer (\S+)$`)

// protect resolves the Authorization bearer token to a user and stores it
// in the request context. Requests without a usable token never reach the
// wrapped handler.
func (s *Server) protect(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {

		groups := bearerTokenRE.FindStringSubmatch(r.Header.Get("Authorization"))
		if len(groups) == 0 {
			s.writeMessage(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		user, err := s.users.Authenticate(r.Context(), groups[1])
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				s.writeMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
				return
			}
			if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrTokenExpired) {
				s.writeMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}
			s.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next(w, r.WithContext(ctx), ps)
	}
}

// userFromContext returns the user placed there by protect. Handlers behind
// protect may assume it is present.
func userFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
