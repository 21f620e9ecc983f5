package model

import (
	"strings"
	"time"
)

// DefaultDescription is stored in place of an empty or omitted task description.
const DefaultDescription = "No description"

// Task is a single to-do item. Title is fixed at creation; only Description
// and Completed change afterwards.
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeDescription returns DefaultDescription for an empty or whitespace-only
// description and the description unchanged otherwise.
func NormalizeDescription(description string) string {
	if strings.TrimSpace(description) == "" {
		return DefaultDescription
	}
	return description
}

// DisplayDescription is the description as shown to a user.
func (t Task) DisplayDescription() string {
	if t.Description == DefaultDescription {
		return "No description provided"
	}
	return t.Description
}

// Status renders the completion flag.
func (t Task) Status() string {
	if t.Completed {
		return "Done"
	}
	return "Not Done"
}
