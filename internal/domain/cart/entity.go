// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// ProductSnapshot is the denormalized view of a catalog item captured at the
// moment it was added to the cart. The cart never re-fetches or re-validates
// it against the catalog.
type ProductSnapshot struct {
	ProductID      uint   `json:"product_id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	ImageURL       string `json:"image_url"`
	WoodType       string `json:"wood_type"`
	Price          int64  `json:"price"`                     // Base price in cents
	SalePrice      int64  `json:"sale_price,omitempty"`      // 0 means no sale
	DimensionLabel string `json:"dimension_label,omitempty"` // Set when a dimension was selected
	DimensionPrice *int64 `json:"dimension_price,omitempty"` // Price of the selected dimension
	InStock        bool   `json:"in_stock"`
}

// EffectiveUnitPrice is the price used for totals: the selected dimension's
// price if present, else the sale price if set, else the base price.
func (p ProductSnapshot) EffectiveUnitPrice() int64 {
	if p.DimensionPrice != nil {
		return *p.DimensionPrice
	}
	if p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.Price
}

// Line is one entry in the cart: a product snapshot, an optional dimension
// selector and a quantity. Quantity is always >= 1 while the line exists.
type Line struct {
	ID             uint64          `json:"id"`
	Product        ProductSnapshot `json:"product"`
	DimensionIndex *int            `json:"dimension_index,omitempty"`
	Quantity       int             `json:"quantity"`
	AddedAt        time.Time       `json:"added_at"`
}

// Subtotal is the line's contribution to the cart total
func (l Line) Subtotal() int64 {
	return l.Product.EffectiveUnitPrice() * int64(l.Quantity)
}

// Cart holds the ordered line collection for one browser session. Line ids
// come from a monotonic per-cart counter so they never collide within a
// session. Mutators maintain two invariants: at most one line per
// (product, dimension) pair, and no line with quantity below one.
type Cart struct {
	SessionID  string    `json:"session_id"`
	NextLineID uint64    `json:"next_line_id"`
	Lines      []Line    `json:"lines"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// New creates an empty cart owned by the given session
func New(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		SessionID:  sessionID,
		NextLineID: 1,
		Lines:      []Line{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AddItem adds a product to the cart. If a line already exists for the same
// (product id, dimension index) pair its quantity is incremented, otherwise a
// new line is appended with a freshly generated id. Quantity is clamped to a
// minimum of one. Returns the affected line.
func (c *Cart) AddItem(snapshot ProductSnapshot, dimensionIndex *int, quantity int) *Line {
	if quantity < 1 {
		quantity = 1
	}

	if line := c.findLine(snapshot.ProductID, dimensionIndex); line != nil {
		line.Quantity += quantity
		c.touch()
		return line
	}

	c.Lines = append(c.Lines, Line{
		ID:             c.NextLineID,
		Product:        snapshot,
		DimensionIndex: dimensionIndex,
		Quantity:       quantity,
		AddedAt:        time.Now().UTC(),
	})
	c.NextLineID++
	c.touch()
	return &c.Lines[len(c.Lines)-1]
}

// SetQuantity replaces a line's quantity. A quantity of zero or below removes
// the line. Returns false when no line has the given id.
func (c *Cart) SetQuantity(lineID uint64, quantity int) bool {
	if quantity <= 0 {
		return c.RemoveLine(lineID)
	}

	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines[i].Quantity = quantity
			c.touch()
			return true
		}
	}
	return false
}

// RemoveLine deletes a line if present. Best effort: a missing id is not an
// error, just a false return.
func (c *Cart) RemoveLine(lineID uint64) bool {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.touch()
			return true
		}
	}
	return false
}

// Clear empties the cart unconditionally
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.touch()
}

// Total is recomputed from the current lines on every call and never stored,
// so it cannot desync from the line list.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Subtotal()
	}
	return total
}

// TotalQuantity is the sum of all line quantities
func (c *Cart) TotalQuantity() int {
	var quantity int
	for _, line := range c.Lines {
		quantity += line.Quantity
	}
	return quantity
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Line returns the line with the given id, or nil
func (c *Cart) Line(lineID uint64) *Line {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			return &c.Lines[i]
		}
	}
	return nil
}

// findLine locates the line for a (product, dimension) pair
func (c *Cart) findLine(productID uint, dimensionIndex *int) *Line {
	for i := range c.Lines {
		if c.Lines[i].Product.ProductID != productID {
			continue
		}
		if sameDimension(c.Lines[i].DimensionIndex, dimensionIndex) {
			return &c.Lines[i]
		}
	}
	return nil
}

func sameDimension(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
