// internal/domain/inquiry/service_test.go
package inquiry

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teromix/storefront-api/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	cfg := &config.Config{Email: config.EmailConfig{Provider: "log"}}
	return NewService(gdb, cfg), mock
}

func TestSubscribeExistingEmailReturnsAlreadySubscribed(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT (.+) FROM "newsletter_subscribers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "nino@example.com"))

	_, err := svc.Subscribe(context.Background(), &SubscribeRequest{Email: "Nino@Example.com"})
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribeConcurrentDuplicateReturnsAlreadySubscribed(t *testing.T) {
	svc, mock := newTestService(t)

	// The dedupe check sees nothing; the insert then trips the unique index,
	// as happens when two signups for the same address race.
	mock.ExpectQuery(`SELECT (.+) FROM "newsletter_subscribers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "newsletter_subscribers"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_newsletter_subscribers_email"})
	mock.ExpectRollback()

	_, err := svc.Subscribe(context.Background(), &SubscribeRequest{Email: "nino@example.com"})
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
