package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
)

// ErrInvalidSession is returned by Load when a session marker exists but
// cannot be trusted (bad signature, unreadable claims).
var ErrInvalidSession = errors.New("invalid session marker")

// SessionStore defines the driven port for the durable session marker.
type SessionStore interface {
	// Load returns (nil, nil) when no marker exists.
	Load(ctx context.Context) (*model.Session, error)

	// Save writes the marker, replacing any existing one.
	Save(ctx context.Context, session model.Session) error

	// Clear removes the marker and reports whether one existed.
	Clear(ctx context.Context) (bool, error)
}
