// Package password implements the PasswordHasher port with bcrypt and with the
// unsalted SHA-256 hex digest used by databases created by earlier versions.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

// Algorithm names the digest produced by Hash.
type Algorithm string

const (
	// AlgorithmBcrypt produces salted bcrypt hashes.
	AlgorithmBcrypt Algorithm = "bcrypt"

	// AlgorithmSHA256 produces unsalted lowercase hex SHA-256 digests. Fast and
	// unsalted, so only useful for credential compatibility with old databases.
	AlgorithmSHA256 Algorithm = "sha256"
)

// ParseAlgorithm validates an algorithm name from configuration.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case AlgorithmBcrypt, AlgorithmSHA256:
		return a, nil
	default:
		return "", fmt.Errorf("unknown password hash algorithm %q (want bcrypt or sha256)", s)
	}
}

// Compile-time interface satisfaction check.
var _ driven.PasswordHasher = (*Hasher)(nil)

// Hasher hashes with one algorithm but verifies digests of either kind, so a
// database seeded with SHA-256 digests keeps working after switching to bcrypt.
type Hasher struct {
	algorithm Algorithm
	cost      int
}

// New creates a Hasher for the given algorithm using bcrypt.DefaultCost.
func New(algorithm Algorithm) *Hasher {
	return NewWithCost(algorithm, bcrypt.DefaultCost)
}

// NewWithCost creates a Hasher with an explicit bcrypt cost. Tests use
// bcrypt.MinCost to stay fast.
func NewWithCost(algorithm Algorithm, cost int) *Hasher {
	return &Hasher{algorithm: algorithm, cost: cost}
}

// Algorithm returns the algorithm used by Hash.
func (h *Hasher) Algorithm() Algorithm {
	return h.algorithm
}

// Hash returns the digest of plaintext under the configured algorithm.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if h.algorithm == AlgorithmSHA256 {
		return sha256Hex(plaintext), nil
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. Both comparisons run in
// constant time with respect to the digest contents.
func (h *Hasher) Verify(digest, plaintext string) bool {
	switch {
	case isBcrypt(digest):
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
	case isSHA256Hex(digest):
		want := []byte(strings.ToLower(digest))
		got := []byte(sha256Hex(plaintext))
		return subtle.ConstantTimeCompare(want, got) == 1
	default:
		return false
	}
}

// NeedsRehash reports whether digest should be replaced by a fresh Hash. In
// bcrypt mode that is any SHA-256 digest or a bcrypt hash of a different cost.
// SHA-256 mode never asks for a rehash.
func (h *Hasher) NeedsRehash(digest string) bool {
	if h.algorithm != AlgorithmBcrypt {
		return false
	}
	if isSHA256Hex(digest) {
		return true
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		return false
	}
	return cost != h.cost
}

func sha256Hex(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func isBcrypt(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}

func isSHA256Hex(digest string) bool {
	if len(digest) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(digest)
	return err == nil
}
