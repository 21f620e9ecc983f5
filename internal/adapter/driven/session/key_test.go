package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSettingsStore struct {
	values map[string]string
	setErr error
}

func (m *mockSettingsStore) Get(_ context.Context, key string) (string, error) {
	return m.values[key], nil
}

func (m *mockSettingsStore) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func TestResolveSigningKey_ConfiguredWins(t *testing.T) {
	settings := &mockSettingsStore{}

	key, err := ResolveSigningKey(context.Background(), settings, "from-config")
	require.NoError(t, err)
	assert.Equal(t, []byte("from-config"), key)
	assert.Empty(t, settings.values, "configured key is not persisted")
}

func TestResolveSigningKey_GeneratesOnce(t *testing.T) {
	settings := &mockSettingsStore{}
	ctx := context.Background()

	first, err := ResolveSigningKey(ctx, settings, "")
	require.NoError(t, err)
	assert.Len(t, first, signingKeySize)

	second, err := ResolveSigningKey(ctx, settings, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveSigningKey_CorruptStoredKey(t *testing.T) {
	settings := &mockSettingsStore{values: map[string]string{SigningKeySetting: "zz-not-hex"}}

	_, err := ResolveSigningKey(context.Background(), settings, "")
	assert.Error(t, err)
}

func TestResolveSigningKey_StoreFailure(t *testing.T) {
	settings := &mockSettingsStore{setErr: errors.New("disk full")}

	_, err := ResolveSigningKey(context.Background(), settings, "")
	assert.ErrorContains(t, err, "disk full")
}
