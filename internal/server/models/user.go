// Package models holds the persistent record types shared by repositories,
// services and the HTTP layer.
package models

import "time"

// User is a registered account. PasswordHash is a bcrypt digest; the
// plaintext password never reaches a model and the hash never reaches
// a client (the HTTP layer serializes its own response types).
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
