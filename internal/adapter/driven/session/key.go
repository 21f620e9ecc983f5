package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

// SigningKeySetting is the settings key holding the generated signing key.
const SigningKeySetting = "session_signing_key"

const signingKeySize = 32

// ResolveSigningKey returns the key used to sign session markers. A configured
// secret wins; otherwise a random key is generated once and kept in settings.
func ResolveSigningKey(ctx context.Context, settings driven.SettingsStore, configured string) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}

	stored, err := settings.Get(ctx, SigningKeySetting)
	if err != nil {
		return nil, fmt.Errorf("load session signing key: %w", err)
	}
	if stored != "" {
		key, err := hex.DecodeString(stored)
		if err != nil {
			return nil, fmt.Errorf("decode session signing key: %w", err)
		}
		return key, nil
	}

	key := make([]byte, signingKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate session signing key: %w", err)
	}
	if err := settings.Set(ctx, SigningKeySetting, hex.EncodeToString(key)); err != nil {
		return nil, fmt.Errorf("store session signing key: %w", err)
	}

	return key, nil
}
