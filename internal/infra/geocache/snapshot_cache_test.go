package geocache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"locator/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSnapshotCache_StartsEmptyWithoutSnapshot(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	cache, err := NewSnapshotCache(ctx, bucket, "cache.json", discardLogger())
	require.NoError(t, err)

	_, ok, err := cache.Get(ctx, "sao paulo|sp")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestSnapshotCache_PutPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	cache, err := NewSnapshotCache(ctx, bucket, "cache.json", discardLogger())
	require.NoError(t, err)

	require.NoError(t, cache.Put(ctx, "sao paulo|sp", entity.NewCoordinate(-23.55, -46.63)))

	reloaded, err := NewSnapshotCache(ctx, bucket, "cache.json", discardLogger())
	require.NoError(t, err)

	coord, ok, err := reloaded.Get(ctx, "sao paulo|sp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, -23.55, coord.Lat, 1e-9)
	assert.InDelta(t, -46.63, coord.Lng, 1e-9)
}

func TestSnapshotCache_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	cache, err := NewSnapshotCache(ctx, bucket, "cache.json", discardLogger())
	require.NoError(t, err)

	require.NoError(t, cache.Put(ctx, "natal|rn", entity.NewCoordinate(1, 1)))
	require.NoError(t, cache.Put(ctx, "natal|rn", entity.NewCoordinate(-5.79, -35.2)))

	coord, ok, err := cache.Get(ctx, "natal|rn")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, -5.79, coord.Lat, 1e-9)
	assert.Equal(t, 1, cache.Len())
}

func TestSnapshotCache_ConcurrentPutsKeepEveryEntry(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	cache, err := NewSnapshotCache(ctx, bucket, "cache.json", discardLogger())
	require.NoError(t, err)

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("city %d|sp", i)
			assert.NoError(t, cache.Put(ctx, key, entity.NewCoordinate(float64(i)/10, -46)))
		}(i)
	}
	wg.Wait()

	reloaded, err := NewSnapshotCache(ctx, bucket, "cache.json", discardLogger())
	require.NoError(t, err)
	assert.Equal(t, writers, reloaded.Len())

	for i := 0; i < writers; i++ {
		coord, ok, err := reloaded.Get(ctx, fmt.Sprintf("city %d|sp", i))
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDelta(t, float64(i)/10, coord.Lat, 1e-9)
	}
}

func TestSnapshotCache_CorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(ctx, "cache.json", []byte("{not json"), nil))

	_, err := NewSnapshotCache(ctx, bucket, "cache.json", discardLogger())
	assert.Error(t, err)
}

func TestRedisEntryEncoding(t *testing.T) {
	raw, err := encodeEntry(entity.NewCoordinate(-22.9068, -43.1729))
	require.NoError(t, err)
	assert.JSONEq(t, `{"latitude":-22.9068,"longitude":-43.1729}`, raw)

	coord, err := decodeEntry(raw)
	require.NoError(t, err)
	assert.Equal(t, entity.NewCoordinate(-22.9068, -43.1729), coord)

	_, err = decodeEntry("garbage")
	assert.Error(t, err)
}
