package model

import "time"

// Session marks the user currently logged in to the CLI. There is at most one.
type Session struct {
	ID       string
	Username string
	IssuedAt time.Time
}
