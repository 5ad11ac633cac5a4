// Package models holds the storage-facing data structures of the server.
package models

import "time"

// User is a stored credential record. Records are created on registration
// and never updated or deleted by this system. Email is the natural lookup
// key and carries a unique index in the store.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
