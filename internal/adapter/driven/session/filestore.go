// Package session persists the CLI login marker as a signed token in a local file.
package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/natefinch/atomic"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SessionStore = (*FileStore)(nil)

// FileStore keeps at most one session in a file as an HS256 JWT. The token
// carries no expiry; a session lasts until Clear.
type FileStore struct {
	path string
	key  []byte
}

// NewFileStore creates a FileStore writing to path and signing with key.
func NewFileStore(path string, key []byte) *FileStore {
	return &FileStore{path: path, key: key}
}

// Path returns the marker file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and verifies the marker. Returns (nil, nil) when no marker file
// exists and an error wrapping ErrInvalidSession when it cannot be trusted.
func (s *FileStore) Load(ctx context.Context) (*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session marker: %w", err)
	}

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(strings.TrimSpace(string(raw)), claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.key, nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, fmt.Errorf("%w: %v", driven.ErrInvalidSession, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", driven.ErrInvalidSession)
	}

	sess := &model.Session{
		ID:       claims.ID,
		Username: claims.Subject,
	}
	if claims.IssuedAt != nil {
		sess.IssuedAt = claims.IssuedAt.Time
	}
	return sess, nil
}

// Save signs the session and atomically replaces the marker file.
func (s *FileStore) Save(ctx context.Context, sess model.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	issuedAt := sess.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now().UTC()
	}

	claims := jwt.RegisteredClaims{
		Subject:  sess.Username,
		ID:       sess.ID,
		IssuedAt: jwt.NewNumericDate(issuedAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return fmt.Errorf("sign session marker: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader([]byte(signed+"\n"))); err != nil {
		return fmt.Errorf("write session marker: %w", err)
	}

	return nil
}

// Clear removes the marker file and reports whether it existed.
func (s *FileStore) Clear(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove session marker: %w", err)
	}

	return true, nil
}
