// internal/domain/order/service_test.go
package order

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teromix/storefront-api/internal/config"
	"github.com/teromix/storefront-api/internal/domain/cart"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService() *Service {
	cfg := &config.Config{
		Cart: config.CartConfig{
			SessionTTL: time.Hour,
		},
	}
	return NewService(nil, cart.NewMemoryStorage(), cfg)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	return gdb, mock
}

// newCheckoutService wires the service against a mocked database and an
// in-memory cart storage holding one populated session cart.
func newCheckoutService(t *testing.T, sessionID string) (*Service, sqlmock.Sqlmock, *cart.Store) {
	t.Helper()

	gdb, mock := newMockDB(t)
	storage := cart.NewMemoryStorage()
	cfg := &config.Config{
		Cart:  config.CartConfig{SessionTTL: time.Hour},
		Email: config.EmailConfig{Provider: "log"},
	}

	store := cart.NewStore(storage, time.Hour)
	sessionCart := cart.New(sessionID)
	sessionCart.AddItem(cart.ProductSnapshot{
		ProductID: 5,
		Name:      "Beech Work Desk",
		Slug:      "beech-work-desk",
		Price:     86000,
		InStock:   true,
	}, nil, 2)
	require.NoError(t, store.Save(context.Background(), sessionCart))

	return NewService(gdb, storage, cfg), mock, store
}

func submitRequest() *SubmitRequest {
	return &SubmitRequest{
		CustomerInfo: CustomerInfo{
			FullName: "Nino K.",
			Email:    "nino@example.com",
			Phone:    "+995555123456",
		},
	}
}

func TestSubmitFailedTransactionLeavesCartUntouched(t *testing.T) {
	svc, mock, store := newCheckoutService(t, "session-1")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	_, err := svc.Submit(context.Background(), "session-1", submitRequest())
	require.Error(t, err)

	reloaded, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	require.Len(t, reloaded.Lines, 1)
	assert.Equal(t, 2, reloaded.Lines[0].Quantity)
	assert.Equal(t, int64(172000), reloaded.Total())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitCommitClearsCart(t *testing.T) {
	svc, mock, store := newCheckoutService(t, "session-1")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "orders"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	created, err := svc.Submit(context.Background(), "session-1", submitRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(172000), created.TotalAmount)
	assert.Contains(t, created.OrderNumber, "TMX-")
	require.Len(t, created.Items, 1)
	assert.Equal(t, int64(86000), created.Items[0].UnitPrice)

	reloaded, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	assert.True(t, reloaded.IsEmpty())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	svc := newTestService()

	req := &SubmitRequest{
		CustomerInfo: CustomerInfo{
			FullName: "Nino K.",
			Email:    "nino@example.com",
			Phone:    "+995555123456",
		},
	}

	_, err := svc.Submit(context.Background(), "session-1", req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestGenerateOrderNumber(t *testing.T) {
	svc := newTestService()

	number := svc.generateOrderNumber(42)
	expected := fmt.Sprintf("TMX-%s-00042", time.Now().Format("20060102"))
	assert.Equal(t, expected, number)
}

func TestCanBeCancelled(t *testing.T) {
	o := Order{Status: StatusPending}
	assert.True(t, o.CanBeCancelled())

	o.Status = StatusConfirmed
	assert.True(t, o.CanBeCancelled())

	o.Status = StatusInProduction
	assert.False(t, o.CanBeCancelled())

	o.Status = StatusDelivered
	assert.False(t, o.CanBeCancelled())
}

func TestBuildOrderEmailData(t *testing.T) {
	svc := newTestService()

	o := Order{
		OrderNumber:  "TMX-20260830-00001",
		CustomerName: "David M.",
		Email:        "david@example.com",
		Phone:        "+995555000111",
		TotalAmount:  245000,
		Items: []OrderItem{
			{ProductName: "Walnut Sliding Wardrobe", DimensionLabel: "200cm wide", Quantity: 1, UnitPrice: 245000, TotalPrice: 245000},
		},
	}

	data := svc.buildOrderEmailData(&o)
	assert.Equal(t, "TMX-20260830-00001", data.OrderNumber)
	assert.Equal(t, "david@example.com", data.CustomerEmail)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "200cm wide", data.Items[0].DimensionLabel)
	assert.Equal(t, int64(245000), data.TotalAmount)
}
