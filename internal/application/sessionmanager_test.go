package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

func TestSessionManager_RoundTrip(t *testing.T) {
	mgr := NewSessionManager(&mockSessionStore{}, discardLogger())
	ctx := context.Background()

	active, err := mgr.IsActive(ctx)
	require.NoError(t, err)
	assert.False(t, active, "initial state is logged out")

	require.NoError(t, mgr.Login(ctx, "alice"))

	active, err = mgr.IsActive(ctx)
	require.NoError(t, err)
	assert.True(t, active)

	username, ok, err := mgr.CurrentUser(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)

	require.NoError(t, mgr.Logout(ctx))

	active, err = mgr.IsActive(ctx)
	require.NoError(t, err)
	assert.False(t, active)

	_, ok, err = mgr.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionManager_LoginOverwrites(t *testing.T) {
	store := &mockSessionStore{}
	mgr := NewSessionManager(store, discardLogger())
	ctx := context.Background()

	require.NoError(t, mgr.Login(ctx, "alice"))
	firstID := store.session.ID
	require.NoError(t, mgr.Login(ctx, "bob"))

	username, err := mgr.RequireSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", username)
	assert.NotEqual(t, firstID, store.session.ID)
	assert.False(t, store.session.IssuedAt.IsZero())
}

func TestSessionManager_LogoutWithoutSession(t *testing.T) {
	mgr := NewSessionManager(&mockSessionStore{}, discardLogger())

	err := mgr.Logout(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestSessionManager_RequireSession(t *testing.T) {
	mgr := NewSessionManager(&mockSessionStore{}, discardLogger())

	_, err := mgr.RequireSession(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestSessionManager_InvalidMarkerMeansLoggedOut(t *testing.T) {
	store := &mockSessionStore{loadErr: fmt.Errorf("%w: signature is invalid", driven.ErrInvalidSession)}
	mgr := NewSessionManager(store, discardLogger())
	ctx := context.Background()

	active, err := mgr.IsActive(ctx)
	require.NoError(t, err)
	assert.False(t, active)

	// The bad marker can still be cleared.
	require.NoError(t, mgr.Logout(ctx))
}
