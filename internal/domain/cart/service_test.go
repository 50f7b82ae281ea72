// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teromix/storefront-api/internal/config"
	"github.com/teromix/storefront-api/internal/domain/catalog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func catalogProductWithDimensions() *catalog.Product {
	return &catalog.Product{
		ID:        2,
		Name:      "Walnut Sliding Wardrobe",
		Slug:      "walnut-sliding-wardrobe",
		Price:     280000,
		SalePrice: 245000,
		WoodType:  "Walnut",
		InStock:   true,
		Dimensions: []catalog.ProductDimension{
			{Label: "200cm wide", Price: 245000, InStock: true, SortOrder: 1},
			{Label: "250cm wide", Price: 289000, InStock: false, SortOrder: 2},
		},
	}
}

func newTestService(storage Storage) *Service {
	cfg := &config.Config{
		Cart: config.CartConfig{
			SessionTTL: time.Hour,
		},
	}
	return NewService(nil, storage, cfg)
}

func TestGetCartResetsCorruptPayload(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, sessionKey("session-1"), "garbage!!", 0))

	svc := newTestService(storage)

	resp, err := svc.GetCart(ctx, "session-1")
	require.NoError(t, err)

	assert.Equal(t, "session-1", resp.SessionID)
	assert.Empty(t, resp.Lines)
	assert.Equal(t, int64(0), resp.Totals.TotalAmount)
}

func TestUpdateLineUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	svc := newTestService(storage)

	resp, err := svc.UpdateLine(ctx, "session-1", 42, 3)
	require.NoError(t, err)
	assert.Empty(t, resp.Lines)
}

func TestRemoveLinePersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	svc := newTestService(storage)

	// Seed through the store directly, bypassing catalog resolution
	store := NewStore(storage, time.Hour)
	c := New("session-1")
	first := c.AddItem(oakTable(), nil, 2)
	c.AddItem(walnutWardrobe(), nil, 1)
	require.NoError(t, store.Save(ctx, c))

	resp, err := svc.RemoveLine(ctx, "session-1", first.ID)
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)

	reloaded, err := svc.GetCart(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, reloaded.Lines, 1)
	assert.Equal(t, walnutWardrobe().ProductID, reloaded.Lines[0].Product.ProductID)
}

func TestClearDropsPersistedCart(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	svc := newTestService(storage)

	store := NewStore(storage, time.Hour)
	c := New("session-1")
	c.AddItem(oakTable(), nil, 1)
	require.NoError(t, store.Save(ctx, c))

	require.NoError(t, svc.Clear(ctx, "session-1"))

	resp, err := svc.GetCart(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Lines)
}

func TestTotalsRecomputedOnEveryResponse(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	svc := newTestService(storage)

	store := NewStore(storage, time.Hour)
	c := New("session-1")
	line := c.AddItem(walnutWardrobe(), nil, 2) // sale price 245000
	require.NoError(t, store.Save(ctx, c))

	resp, err := svc.GetCart(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2*245000), resp.Totals.TotalAmount)
	assert.Equal(t, 2, resp.Totals.TotalQuantity)
	assert.Equal(t, 1, resp.Totals.LineCount)

	resp, err = svc.UpdateLine(ctx, "session-1", line.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(245000), resp.Totals.TotalAmount)
}

func TestSnapshotProductDimensionOutOfRange(t *testing.T) {
	product := catalogProductWithDimensions()

	_, err := snapshotProduct(product, intPtr(5))
	assert.ErrorIs(t, err, ErrInvalidDimension)

	snapshot, err := snapshotProduct(product, intPtr(1))
	require.NoError(t, err)
	require.NotNil(t, snapshot.DimensionPrice)
	assert.Equal(t, int64(289000), *snapshot.DimensionPrice)
	assert.Equal(t, "250cm wide", snapshot.DimensionLabel)
	assert.False(t, snapshot.InStock)
}

func TestAddItemSeparatesMissingProductFromLookupFailure(t *testing.T) {
	ctx := context.Background()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	cfg := &config.Config{Cart: config.CartConfig{SessionTTL: time.Hour}}
	svc := NewService(gdb, NewMemoryStorage(), cfg)

	// Unknown product is a client error
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = svc.AddItem(ctx, "session-1", &AddItemRequest{ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)

	// A failing lookup is not rewritten as not-found; the cause is preserved
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnError(errors.New("connection refused"))
	_, err = svc.AddItem(ctx, "session-1", &AddItemRequest{ProductID: 99, Quantity: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProductNotFound)
	assert.Contains(t, err.Error(), "connection refused")

	assert.NoError(t, mock.ExpectationsWereMet())
}
