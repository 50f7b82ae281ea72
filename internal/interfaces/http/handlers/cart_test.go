// internal/interfaces/http/handlers/cart_test.go
package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teromix/storefront-api/internal/config"
	"github.com/teromix/storefront-api/internal/domain/cart"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCartTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	cfg := &config.Config{Cart: config.CartConfig{SessionTTL: time.Hour}}
	handler := NewCartHandler(gdb, cart.NewMemoryStorage(), cfg)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("session_id", "session-1")
		c.Next()
	})
	router.POST("/cart/items", handler.AddItem)

	return router, mock
}

func postAddItem(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id":99,"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAddItemUnknownProductIsClientError(t *testing.T) {
	router, mock := newCartTestRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := postAddItem(router)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "product not found")
}

func TestAddItemCatalogOutageIsServerError(t *testing.T) {
	router, mock := newCartTestRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnError(errors.New("connection refused"))

	w := postAddItem(router)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "product not found")
}
