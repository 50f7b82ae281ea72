// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/teromix/storefront-api/internal/config"
	"github.com/teromix/storefront-api/internal/domain/catalog"
	"github.com/teromix/storefront-api/internal/domain/inquiry"
	"github.com/teromix/storefront-api/internal/domain/order"
	"github.com/teromix/storefront-api/internal/domain/testimonial"
	"github.com/teromix/storefront-api/internal/domain/user"
	"github.com/teromix/storefront-api/internal/pkg/auth"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Define all models that need migration in dependency order
	models := []interface{}{
		// User domain - Base tables
		&user.User{},

		// Catalog domain
		&catalog.Category{},
		&catalog.Product{},
		&catalog.ProductDimension{},

		// Order domain - Dependent tables
		&order.Order{},
		&order.OrderItem{},

		// Testimonials and inquiries
		&testimonial.Testimonial{},
		&inquiry.Inquiry{},
		&inquiry.NewsletterSubscriber{},
	}

	// Run auto-migration for each model
	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products(is_featured, in_stock)",
		"CREATE INDEX IF NOT EXISTS idx_products_slug ON products(slug)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Category indexes
		"CREATE INDEX IF NOT EXISTS idx_categories_slug ON categories(slug)",
		"CREATE INDEX IF NOT EXISTS idx_categories_sort_order ON categories(sort_order)",

		// Dimension indexes
		"CREATE INDEX IF NOT EXISTS idx_product_dimensions_product ON product_dimensions(product_id, sort_order)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_order_number ON orders(order_number)",
		"CREATE INDEX IF NOT EXISTS idx_orders_email ON orders(email)",

		// Order items indexes
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)",

		// Testimonial indexes
		"CREATE INDEX IF NOT EXISTS idx_testimonials_approved ON testimonials(is_approved, created_at DESC)",

		// Inquiry indexes
		"CREATE INDEX IF NOT EXISTS idx_inquiries_kind_created ON inquiries(kind, created_at DESC)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData(cfg *config.Config) error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	if err := m.seedAdminUser(cfg); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedTestimonials(); err != nil {
		return fmt.Errorf("failed to seed testimonials: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedCategories creates the default storefront categories
func (m *Migration) seedCategories() error {
	log.Println("🏷️ Seeding categories...")

	categories := []catalog.Category{
		{
			Name:        "Kitchens",
			Slug:        "kitchens",
			Description: "Custom-built kitchen cabinetry and islands",
			SortOrder:   1,
		},
		{
			Name:        "Wardrobes",
			Slug:        "wardrobes",
			Description: "Built-in and freestanding wardrobes",
			SortOrder:   2,
		},
		{
			Name:        "Doors",
			Slug:        "doors",
			Description: "Solid wood interior and entry doors",
			SortOrder:   3,
		},
		{
			Name:        "Tables",
			Slug:        "tables",
			Description: "Dining, coffee, and work tables",
			SortOrder:   4,
		},
	}

	for _, category := range categories {
		var existing catalog.Category
		result := m.db.Where("slug = ?", category.Slug).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&category).Error; err != nil {
				return err
			}
			log.Printf("✅ Created category: %s", category.Name)
		} else {
			log.Printf("⏭️ Category already exists: %s", category.Name)
		}
	}

	return nil
}

// seedProducts creates a starter set of products with dimension options
func (m *Migration) seedProducts() error {
	log.Println("🛍️ Seeding products...")

	var productCount int64
	m.db.Model(&catalog.Product{}).Count(&productCount)
	if productCount > 0 {
		log.Println("⏭️ Products already exist")
		return nil
	}

	var kitchens, wardrobes, doors, tables catalog.Category
	m.db.Where("slug = ?", "kitchens").First(&kitchens)
	m.db.Where("slug = ?", "wardrobes").First(&wardrobes)
	m.db.Where("slug = ?", "doors").First(&doors)
	m.db.Where("slug = ?", "tables").First(&tables)

	products := []catalog.Product{
		{
			Name:        "Classic Oak Kitchen",
			Slug:        "classic-oak-kitchen",
			ImageURL:    "/images/products/classic-oak-kitchen.jpg",
			Description: "Traditional oak kitchen with soft-close drawers and a carved crown profile. Built to measure for your space.",
			Price:       450000, // $4500.00
			CategoryID:  kitchens.ID,
			InStock:     true,
			IsFeatured:  true,
			WoodType:    "Oak",
			Dimensions: []catalog.ProductDimension{
				{Code: "linear-3m", Label: "3m run", Price: 450000, InStock: true, SortOrder: 1},
				{Code: "linear-4m", Label: "4m run", Price: 580000, InStock: true, SortOrder: 2},
				{Code: "linear-5m", Label: "5m run with island", Price: 760000, InStock: true, SortOrder: 3},
			},
		},
		{
			Name:        "Walnut Sliding Wardrobe",
			Slug:        "walnut-sliding-wardrobe",
			ImageURL:    "/images/products/walnut-sliding-wardrobe.jpg",
			Description: "Floor-to-ceiling sliding wardrobe in American walnut with interior lighting and adjustable shelving.",
			Price:       280000,
			SalePrice:   245000,
			CategoryID:  wardrobes.ID,
			InStock:     true,
			IsFeatured:  true,
			WoodType:    "Walnut",
			Dimensions: []catalog.ProductDimension{
				{Code: "w200", Label: "200cm wide", Price: 245000, InStock: true, SortOrder: 1},
				{Code: "w250", Label: "250cm wide", Price: 289000, InStock: true, SortOrder: 2},
				{Code: "w300", Label: "300cm wide", Price: 332000, InStock: false, SortOrder: 3},
			},
		},
		{
			Name:        "Solid Ash Interior Door",
			Slug:        "solid-ash-interior-door",
			ImageURL:    "/images/products/solid-ash-interior-door.jpg",
			Description: "Single-panel interior door in solid ash with concealed hinges. Finished with natural hardwax oil.",
			Price:       48000,
			CategoryID:  doors.ID,
			InStock:     true,
			WoodType:    "Ash",
			SizeNotes:   "Standard frame sizes; custom widths on request",
			Dimensions: []catalog.ProductDimension{
				{Code: "d70", Label: "70cm", Price: 48000, InStock: true, SortOrder: 1},
				{Code: "d80", Label: "80cm", Price: 52000, InStock: true, SortOrder: 2},
				{Code: "d90", Label: "90cm", Price: 56000, InStock: true, SortOrder: 3},
			},
		},
		{
			Name:        "Live Edge Dining Table",
			Slug:        "live-edge-dining-table",
			ImageURL:    "/images/products/live-edge-dining-table.jpg",
			Description: "Single-slab walnut dining table with a natural live edge and blackened steel legs.",
			Price:       195000,
			CategoryID:  tables.ID,
			InStock:     true,
			IsFeatured:  true,
			WoodType:    "Walnut",
			Dimensions: []catalog.ProductDimension{
				{Code: "l180", Label: "180cm, seats 6", Price: 195000, InStock: true, SortOrder: 1},
				{Code: "l220", Label: "220cm, seats 8", Price: 238000, InStock: true, SortOrder: 2},
			},
		},
		{
			Name:        "Beech Work Desk",
			Slug:        "beech-work-desk",
			ImageURL:    "/images/products/beech-work-desk.jpg",
			Description: "Minimal beech desk with a cable tray and two dovetailed drawers.",
			Price:       86000,
			CategoryID:  tables.ID,
			InStock:     true,
			WoodType:    "Beech",
		},
	}

	for _, prod := range products {
		if err := m.db.Create(&prod).Error; err != nil {
			log.Printf("⚠️ Failed to create product %s: %v", prod.Slug, err)
		} else {
			log.Printf("✅ Created product: %s", prod.Name)
		}
	}

	return nil
}

func (m *Migration) seedAdminUser(cfg *config.Config) error {
	log.Println("👤 Seeding admin user...")

	var existing user.User
	result := m.db.Where("email = ?", "admin@teromix.ge").First(&existing)
	if result.Error != nil {
		hashedPassword, err := auth.HashPassword("admin123", cfg.Security.BcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		adminUser := user.User{
			Username:     "admin",
			Email:        "admin@teromix.ge",
			PasswordHash: hashedPassword,
			FullName:     "Teromix Admin",
			IsAdmin:      true,
		}

		if err := m.db.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("✅ Created admin user: admin@teromix.ge")
	} else {
		log.Printf("⏭️ Admin user already exists with ID: %d", existing.ID)
	}

	return nil
}

// seedTestimonials creates a starter set of approved testimonials
func (m *Migration) seedTestimonials() error {
	log.Println("⭐ Seeding testimonials...")

	var count int64
	m.db.Model(&testimonial.Testimonial{}).Count(&count)
	if count > 0 {
		log.Println("⏭️ Testimonials already exist")
		return nil
	}

	testimonials := []testimonial.Testimonial{
		{
			Name:       "Nino K.",
			Location:   "Tbilisi",
			Rating:     5,
			Comment:    "The oak kitchen turned out better than the renders. Installation was done in two days and every drawer closes like a bank vault.",
			IsApproved: true,
		},
		{
			Name:       "David M.",
			Location:   "Batumi",
			Rating:     5,
			Comment:    "Ordered a walnut wardrobe for an awkward sloped ceiling. They measured twice, built once, and it fits to the millimeter.",
			IsApproved: true,
		},
		{
			Name:       "Tamar G.",
			Location:   "Kutaisi",
			Rating:     4,
			Comment:    "Beautiful dining table, the live edge is stunning. Delivery took a week longer than quoted but the result was worth it.",
			IsApproved: true,
		},
	}

	for _, t := range testimonials {
		if err := m.db.Create(&t).Error; err != nil {
			log.Printf("⚠️ Failed to create testimonial: %v", err)
		}
	}

	log.Printf("✅ Created %d testimonials", len(testimonials))
	return nil
}
