package credstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskpilot/client/domain"
)

func openTestStore(t *testing.T) *Bolt {
	t.Helper()
	store, err := OpenBolt(filepath.Join(t.TempDir(), "credentials.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBoltTokenRoundTrip(t *testing.T) {
	store := openTestStore(t)

	assert.Equal(t, "", store.GetAccessToken())
	assert.Equal(t, "", store.GetRefreshToken())

	require.NoError(t, store.SetAccessToken("access-abc"))
	require.NoError(t, store.SetRefreshToken("refresh-xyz"))
	assert.Equal(t, "access-abc", store.GetAccessToken())
	assert.Equal(t, "refresh-xyz", store.GetRefreshToken())

	require.NoError(t, store.ClearAccessToken())
	assert.Equal(t, "", store.GetAccessToken())
	assert.Equal(t, "refresh-xyz", store.GetRefreshToken())

	require.NoError(t, store.ClearAllTokens())
	assert.Equal(t, "", store.GetRefreshToken())
}

func TestBoltUserRoundTrip(t *testing.T) {
	store := openTestStore(t)

	assert.Nil(t, store.GetUser())

	user := &domain.User{ID: "u-1", Email: "user@domain.tld", FirstName: "Ada"}
	require.NoError(t, store.SetUser(user))

	got := store.GetUser()
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "user@domain.tld", got.Email)
	assert.Equal(t, "Ada", got.FirstName)

	require.NoError(t, store.SetUser(nil))
	assert.Nil(t, store.GetUser())
}

func TestBoltClearAuthStorage(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SetAccessToken("access"))
	require.NoError(t, store.SetRefreshToken("refresh"))
	require.NoError(t, store.SetUser(&domain.User{ID: "u-1"}))

	require.NoError(t, store.ClearAuthStorage())

	assert.Equal(t, "", store.GetAccessToken())
	assert.Equal(t, "", store.GetRefreshToken())
	assert.Nil(t, store.GetUser())
}

func TestBoltSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.db")

	store, err := OpenBolt(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.SetAccessToken("persisted"))
	require.NoError(t, store.Close())

	reopened, err := OpenBolt(path, nil)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, "persisted", reopened.GetAccessToken())
}

func TestNoopStore(t *testing.T) {
	t.Parallel()

	store := NewNoop()

	assert.NoError(t, store.SetAccessToken("ignored"))
	assert.Equal(t, "", store.GetAccessToken())
	assert.NoError(t, store.SetUser(&domain.User{ID: "u-1"}))
	assert.Nil(t, store.GetUser())
	assert.NoError(t, store.ClearAuthStorage())
	assert.NoError(t, store.Close())
}
