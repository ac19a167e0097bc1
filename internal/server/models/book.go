package models

import "time"

// Book is a single tracked book. UserID references the owning User;
// every mutation must be authorized against it.
type Book struct {
	ID        string
	UserID    string
	Title     string
	Author    string
	Read      bool
	CreatedAt time.Time
}
