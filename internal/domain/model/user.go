package model

import "time"

// User is a stored credential record. PasswordHash is never the plaintext.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
