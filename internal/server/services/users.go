// Package services contains the business logic: credential handling and
// token issuance (UserService) and per-owner book CRUD (BookService).
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/bookkeeper/internal/common"
	"github.com/dmitrijs2005/bookkeeper/internal/server/auth"
	"github.com/dmitrijs2005/bookkeeper/internal/server/config"
	"github.com/dmitrijs2005/bookkeeper/internal/server/models"
	"github.com/dmitrijs2005/bookkeeper/internal/server/repositories/users"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// good enough for "looks like an address"; the mail server has the last word
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService implements registration, login and bearer-token verification.
// The signing secret and token lifetime are injected once at construction.
type UserService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register validates the credentials, stores the user with a salted hash of
// the password and returns the user together with a fresh token. The
// password is hashed here and nowhere else; the plaintext is not retained
// or logged.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return nil, "", common.ErrMissingFields
	}
	if len(username) < minUsernameLength {
		return nil, "", common.ErrUsernameTooShort
	}
	if !emailRE.MatchString(email) {
		return nil, "", common.ErrInvalidEmailFormat
	}
	if len(password) < minPasswordLength {
		return nil, "", common.ErrPasswordTooShort
	}

	exists, err := s.repo.Exists(ctx, username, email)
	if err != nil {
		return nil, "", fmt.Errorf("error checking credentials: %w", err)
	}
	if exists {
		return nil, "", common.ErrUserAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return user, token, nil
}

// Login verifies the email/password pair and returns the user with a fresh
// token. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {

	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return nil, "", common.ErrMissingFields
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("error searching user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return user, token, nil
}

// IssueToken mints a bearer token for userID.
func (s *UserService) IssueToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.tokenValidityDuration)
}

// Authenticate resolves a bearer token to the user it was issued for.
// Invalid or expired tokens yield common.ErrInvalidToken /
// common.ErrTokenExpired; a valid token whose user is gone yields
// common.ErrNotFound.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user, nil
}
