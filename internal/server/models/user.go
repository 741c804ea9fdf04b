package models

import "time"

// User is a registered account. Users are never hard-deleted; Banned flips
// to true when a ban request against them is approved.
type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	Banned       bool
	CreatedAt    time.Time
}

// UserStatus is one roster row of the status snapshot.
type UserStatus struct {
	UserName string
	Online   bool
}
