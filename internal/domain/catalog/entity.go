// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// Category represents a product category (kitchens, wardrobes, doors, ...)
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null;size:255" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string    `gorm:"size:500" json:"description"`
	ImageURL    string    `gorm:"size:500" json:"image_url"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// Product represents a catalog item
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"` // Price in cents
	SalePrice   int64          `json:"sale_price"`            // 0 means no sale
	ImageURL    string         `gorm:"not null;size:500" json:"image_url"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	InStock     bool           `gorm:"default:true" json:"in_stock"`
	IsFeatured  bool           `gorm:"default:false" json:"is_featured"`
	WoodType    string         `gorm:"not null;size:100" json:"wood_type"`
	SizeNotes   string         `gorm:"size:100" json:"size_notes"` // LxWxH format
	Weight      float64        `json:"weight"`                     // Weight in kg
	Rating      float64        `gorm:"default:0" json:"rating"`
	ReviewCount int            `gorm:"default:0" json:"review_count"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Computed for API responses, not stored
	DisplayPrice int64 `gorm:"-" json:"display_price"`
	OnSale       bool  `gorm:"-" json:"on_sale"`

	// Relationships
	Category   Category           `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	Dimensions []ProductDimension `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"dimensions,omitempty"`
}

// ProductDimension represents a priced size/finish variant of a product
type ProductDimension struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Code      string    `gorm:"uniqueIndex;not null;size:100" json:"code"`
	Label     string    `gorm:"not null;size:255" json:"label"` // e.g. "200x90x75 cm"
	Price     int64     `gorm:"not null" json:"price"`          // Price in cents
	InStock   bool      `gorm:"default:true" json:"in_stock"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides
func (Category) TableName() string         { return "categories" }
func (Product) TableName() string          { return "products" }
func (ProductDimension) TableName() string { return "product_dimensions" }

// Business methods for Product

// EffectivePrice is the price used for totals when no dimension is selected:
// sale price if set, base price otherwise.
func (p *Product) EffectivePrice() int64 {
	if p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.Price
}

func (p *Product) IsOnSale() bool {
	return p.SalePrice > 0 && p.SalePrice < p.Price
}

// AfterFind populates the computed pricing fields on every read
func (p *Product) AfterFind(tx *gorm.DB) error {
	p.DisplayPrice = p.EffectivePrice()
	p.OnSale = p.IsOnSale()
	return nil
}

// DimensionAt returns the dimension at the given index in sort order, or nil
// when the index is out of range.
func (p *Product) DimensionAt(index int) *ProductDimension {
	if index < 0 || index >= len(p.Dimensions) {
		return nil
	}
	return &p.Dimensions[index]
}
