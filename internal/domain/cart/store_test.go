// internal/domain/cart/store_test.go
package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage(), time.Hour)

	c := New("session-1")
	c.AddItem(oakTable(), nil, 2)
	c.AddItem(walnutWardrobe(), intPtr(0), 1)
	require.NoError(t, store.Save(ctx, c))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)

	assert.Equal(t, "session-1", loaded.SessionID)
	require.Len(t, loaded.Lines, 2)
	assert.Equal(t, c.NextLineID, loaded.NextLineID)
	assert.Equal(t, c.Total(), loaded.Total())
	assert.Equal(t, 2, loaded.Lines[0].Quantity)
	require.NotNil(t, loaded.Lines[1].DimensionIndex)
	assert.Equal(t, 0, *loaded.Lines[1].DimensionIndex)
}

func TestStoreLoadMissingKeyYieldsEmptyCart(t *testing.T) {
	store := NewStore(NewMemoryStorage(), time.Hour)

	loaded, err := store.Load(context.Background(), "never-seen")
	require.NoError(t, err)

	assert.Equal(t, "never-seen", loaded.SessionID)
	assert.True(t, loaded.IsEmpty())
	assert.Equal(t, uint64(1), loaded.NextLineID)
}

func TestStoreLoadRejectsEmptySessionID(t *testing.T) {
	store := NewStore(NewMemoryStorage(), time.Hour)

	_, err := store.Load(context.Background(), "")
	assert.Error(t, err)
}

func TestStoreLoadCorruptPayload(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage, time.Hour)

	require.NoError(t, storage.Set(ctx, sessionKey("session-1"), "{not json", 0))

	_, err := store.Load(ctx, "session-1")
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, sessionKey("session-1"), decodeErr.Key)
}

func TestStoreLoadBackfillsLineCounter(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage, time.Hour)

	// Payload without next_line_id, as written before the counter existed
	payload := `{"session_id":"session-1","lines":[{"id":3,"product":{"product_id":1,"price":1000},"quantity":1}]}`
	require.NoError(t, storage.Set(ctx, sessionKey("session-1"), payload, 0))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), loaded.NextLineID)

	line := loaded.AddItem(walnutWardrobe(), nil, 1)
	assert.Equal(t, uint64(4), line.ID)
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage(), time.Hour)

	c := New("session-1")
	c.AddItem(oakTable(), nil, 1)
	require.NoError(t, store.Save(ctx, c))

	require.NoError(t, store.Delete(ctx, "session-1"))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestMemoryStorageTTLExpiry(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	require.NoError(t, storage.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := storage.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}
