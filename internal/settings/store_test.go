package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/internal/testutil"
)

func TestStore_PutAppendsVersions(t *testing.T) {
	t.Parallel()

	store := NewStore(testutil.OpenEntPostgres(t, "settings_versions"))
	ctx := context.Background()

	v, err := store.Put(ctx, KeyVotingDefaultDuration, map[string]interface{}{"days": 5}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = store.Put(ctx, KeyVotingDefaultDuration, map[string]interface{}{"days": 7}, "admin-2")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	doc, ok, err := store.Get(ctx, KeyVotingDefaultDuration)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, doc.Version)
	assert.Equal(t, float64(7), doc.Body["days"])
}

func TestStore_MissingKeyIsNotAnError(t *testing.T) {
	t.Parallel()

	store := NewStore(testutil.OpenEntPostgres(t, "settings_missing"))

	_, ok, err := store.Get(context.Background(), "no.such.key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_KeysVersionIndependently(t *testing.T) {
	t.Parallel()

	store := NewStore(testutil.OpenEntPostgres(t, "settings_independent"))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Put(ctx, KeyRateLimitRules, map[string]interface{}{}, "admin-1")
		require.NoError(t, err)
	}
	v, err := store.Put(ctx, KeyVotingDefaultDuration, map[string]interface{}{"days": 5}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	doc, ok, err := store.Get(ctx, KeyRateLimitRules)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, doc.Version)
}

func TestStore_PutInvalidatesCache(t *testing.T) {
	t.Parallel()

	store := NewStore(testutil.OpenEntPostgres(t, "settings_cache"))
	ctx := context.Background()

	_, err := store.Put(ctx, KeyVotingDefaultDuration, map[string]interface{}{"days": 5}, "admin-1")
	require.NoError(t, err)

	// Prime the cache.
	doc, ok, err := store.Get(ctx, KeyVotingDefaultDuration)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, doc.Version)

	// A write through the same store must be visible immediately, TTL or not.
	_, err = store.Put(ctx, KeyVotingDefaultDuration, map[string]interface{}{"days": 9}, "admin-1")
	require.NoError(t, err)

	doc, ok, err = store.Get(ctx, KeyVotingDefaultDuration)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, doc.Version)
	assert.Equal(t, float64(9), doc.Body["days"])
}
