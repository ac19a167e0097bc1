// Package common defines the sentinel errors shared by services, repositories
// and the HTTP boundary. Callers match them with errors.Is; the boundary layer
// performs the single mapping to HTTP status codes.
package common

import "errors"

// The sentinel texts double as the user-facing response messages, hence
// the sentence casing.
var (
	// validation errors (client input, HTTP 400)
	ErrMissingFields      = errors.New("Please enter all fields")
	ErrUsernameTooShort   = errors.New("Username must be at least 3 characters long")
	ErrInvalidEmailFormat = errors.New("Please enter a valid email address")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters long")
	ErrMissingTitleAuthor = errors.New("Please add a title and author for the book")
	ErrEmptyUpdate        = errors.New("No valid fields provided for update")

	// duplicate credential (HTTP 400)
	ErrUserAlreadyExists = errors.New("User with that email or username already exists")

	// auth errors (HTTP 401)
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// ownership violation, surfaced as 401 so ids cannot be probed
	ErrNotOwner = errors.New("not the owner of this resource")

	// repository-level errors
	ErrNotFound = errors.New("not found")

	// anything unexpected (HTTP 500)
	ErrInternal = errors.New("internal error")
)
