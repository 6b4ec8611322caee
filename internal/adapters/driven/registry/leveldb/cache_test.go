package leveldb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlink-care/medlink-cli/internal/adapters/driven/storage/memory"
	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

func newTestCache(t *testing.T) (*Cache, *memory.DoctorRegistry) {
	t.Helper()
	upstream := memory.NewDoctorRegistry()
	cache, err := Open(t.TempDir(), upstream)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, cache.Close())
	})
	return cache, upstream
}

func TestCache_ReadThroughCachesRegistrations(t *testing.T) {
	cache, upstream := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, upstream.RegisterDoctor(ctx, domain.DoctorRecord{
		Address:        "0xabc",
		Name:           "Dr Crusher",
		Specialization: "cardiology",
	}))
	upstream.Lookups = 0

	first, err := cache.Doctor(ctx, "0xabc")
	require.NoError(t, err)
	assert.True(t, first.IsRegistered)
	assert.Equal(t, 1, upstream.Lookups)

	second, err := cache.Doctor(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, upstream.Lookups, "the second lookup must be served from cache")
}

func TestCache_UnregisteredAddressesAreNotCached(t *testing.T) {
	cache, upstream := newTestCache(t)
	ctx := context.Background()

	record, err := cache.Doctor(ctx, "0xnew")
	require.NoError(t, err)
	assert.False(t, record.IsRegistered)
	assert.Equal(t, 1, upstream.Lookups)

	// The address registers; the next lookup must see it.
	require.NoError(t, upstream.RegisterDoctor(ctx, domain.DoctorRecord{Address: "0xnew", Name: "Dr Late"}))

	record, err = cache.Doctor(ctx, "0xnew")
	require.NoError(t, err)
	assert.True(t, record.IsRegistered)
	assert.Equal(t, 2, upstream.Lookups)
}

func TestCache_RegisterInvalidatesEntry(t *testing.T) {
	cache, upstream := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, upstream.RegisterDoctor(ctx, domain.DoctorRecord{Address: "0xabc", Name: "Old Name"}))
	_, err := cache.Doctor(ctx, "0xabc")
	require.NoError(t, err)

	// Re-registration through the cache must evict the stale entry.
	require.NoError(t, cache.RegisterDoctor(ctx, domain.DoctorRecord{Address: "0xabc", Name: "New Name"}))

	record, err := cache.Doctor(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "New Name", record.Name)
}

func TestCache_EmptyAddressRejected(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Doctor(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCache_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	upstream := memory.NewDoctorRegistry()
	ctx := context.Background()

	require.NoError(t, upstream.RegisterDoctor(ctx, domain.DoctorRecord{Address: "0xabc", Name: "Dr Crusher"}))

	cache, err := Open(dir, upstream)
	require.NoError(t, err)
	_, err = cache.Doctor(ctx, "0xabc")
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	upstream.Lookups = 0
	cache, err = Open(dir, upstream)
	require.NoError(t, err)
	defer cache.Close()

	record, err := cache.Doctor(ctx, "0xabc")
	require.NoError(t, err)
	assert.True(t, record.IsRegistered)
	assert.Zero(t, upstream.Lookups, "a persisted cache entry survives restart")
}
