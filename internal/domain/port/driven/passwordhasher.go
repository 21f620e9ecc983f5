package driven

// PasswordHasher turns plaintext passwords into stored digests and checks
// plaintext against them.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored digest. A digest
	// in a format the hasher does not understand never matches.
	Verify(digest, plaintext string) bool

	// NeedsRehash reports whether a digest that verified should be replaced
	// with one produced by Hash.
	NeedsRehash(digest string) bool
}
