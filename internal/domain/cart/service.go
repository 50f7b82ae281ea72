// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teromix/storefront-api/internal/config"
	"github.com/teromix/storefront-api/internal/domain/catalog"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when the requested product does not exist
var ErrProductNotFound = errors.New("cart: product not found")

// ErrInvalidDimension is returned when the dimension index does not select an
// existing dimension of the product
var ErrInvalidDimension = errors.New("cart: dimension index out of range")

// Service handles cart business logic for session carts
type Service struct {
	catalog *catalog.Service
	store   *Store
	config  *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, storage Storage, cfg *config.Config) *Service {
	return &Service{
		catalog: catalog.NewService(db, cfg),
		store:   NewStore(storage, cfg.Cart.SessionTTL),
		config:  cfg,
	}
}

// AddItemRequest represents an add to cart request
type AddItemRequest struct {
	ProductID      uint `json:"product_id" binding:"required"`
	DimensionIndex *int `json:"dimension_index"`
	Quantity       int  `json:"quantity" binding:"required,min=1"`
}

// UpdateLineRequest represents a quantity change request. Zero removes the
// line, matching the storefront's quantity stepper behavior.
type UpdateLineRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// Totals represents the derived cart summary
type Totals struct {
	LineCount     int   `json:"line_count"`
	TotalQuantity int   `json:"total_quantity"`
	TotalAmount   int64 `json:"total_amount"` // In cents
}

// Response represents a cart with its derived totals
type Response struct {
	SessionID string    `json:"session_id"`
	Lines     []Line    `json:"lines"`
	Totals    Totals    `json:"totals"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetCart retrieves the session cart
func (s *Service) GetCart(ctx context.Context, sessionID string) (*Response, error) {
	cart, err := s.loadOrReset(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(cart), nil
}

// AddItem resolves the product into a snapshot and adds it to the cart. Stock
// flags ride along in the snapshot but do not block adding; enforcing stock
// is left to the storefront UI.
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*Response, error) {
	product, err := s.catalog.GetProductByID(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to resolve product %d: %w", req.ProductID, err)
	}

	snapshot, err := snapshotProduct(product, req.DimensionIndex)
	if err != nil {
		return nil, err
	}

	cart, err := s.loadOrReset(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(snapshot, req.DimensionIndex, req.Quantity)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.toResponse(cart), nil
}

// UpdateLine changes a line's quantity; zero or below removes the line. An
// unknown line id is a no-op, not an error.
func (s *Service) UpdateLine(ctx context.Context, sessionID string, lineID uint64, quantity int) (*Response, error) {
	cart, err := s.loadOrReset(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(lineID, quantity)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.toResponse(cart), nil
}

// RemoveLine deletes a line from the cart, best effort
func (s *Service) RemoveLine(ctx context.Context, sessionID string, lineID uint64) (*Response, error) {
	cart, err := s.loadOrReset(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.RemoveLine(lineID)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.toResponse(cart), nil
}

// Clear empties the session cart, typically after a successful checkout
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// LoadCart exposes the raw cart to collaborating services (checkout)
func (s *Service) LoadCart(ctx context.Context, sessionID string) (*Cart, error) {
	return s.loadOrReset(ctx, sessionID)
}

// loadOrReset is where the recovery policy lives: a corrupt persisted cart is
// logged and replaced with an empty one; it is overwritten on the next
// mutation and never surfaced to the user.
func (s *Service) loadOrReset(ctx context.Context, sessionID string) (*Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err == nil {
		return cart, nil
	}
	if IsDecodeError(err) {
		logrus.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Discarding corrupt cart payload")
		return New(sessionID), nil
	}
	return nil, err
}

// snapshotProduct resolves the catalog row and selected dimension into the
// denormalized snapshot stored on the line. Resolution happens once, here;
// the cart never looks at the catalog again.
func snapshotProduct(product *catalog.Product, dimensionIndex *int) (ProductSnapshot, error) {
	snapshot := ProductSnapshot{
		ProductID: product.ID,
		Name:      product.Name,
		Slug:      product.Slug,
		ImageURL:  product.ImageURL,
		WoodType:  product.WoodType,
		Price:     product.Price,
		SalePrice: product.SalePrice,
		InStock:   product.InStock,
	}

	if dimensionIndex != nil {
		dimension := product.DimensionAt(*dimensionIndex)
		if dimension == nil {
			return ProductSnapshot{}, fmt.Errorf("%w: index %d", ErrInvalidDimension, *dimensionIndex)
		}
		price := dimension.Price
		snapshot.DimensionLabel = dimension.Label
		snapshot.DimensionPrice = &price
		snapshot.InStock = dimension.InStock
	}

	return snapshot, nil
}

func (s *Service) toResponse(cart *Cart) *Response {
	return &Response{
		SessionID: cart.SessionID,
		Lines:     cart.Lines,
		Totals: Totals{
			LineCount:     len(cart.Lines),
			TotalQuantity: cart.TotalQuantity(),
			TotalAmount:   cart.Total(),
		},
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
}
