// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/teromix/storefront-api/internal/config"
	"github.com/teromix/storefront-api/internal/domain/cart"
	"github.com/teromix/storefront-api/internal/interfaces/http/handlers"
	"gorm.io/gorm"
)

// SetupRoutes wires all storefront routes onto the given group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	cartStorage := cart.NewRedisStorage(redisClient)

	setupCatalogRoutes(rg, db, cfg)
	setupCartRoutes(rg, db, cartStorage, cfg)
	setupOrderRoutes(rg, db, cartStorage, cfg)
	setupTestimonialRoutes(rg, db, cfg)
	setupInquiryRoutes(rg, db, cfg)
}

// setupCatalogRoutes sets up category and product routes
func setupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, cfg)

	categories := rg.Group("/categories")
	{
		categories.GET("", catalogHandler.GetCategories)
		categories.GET("/:slug", catalogHandler.GetCategoryBySlug)
	}

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/featured", catalogHandler.GetFeaturedProducts)
		products.GET("/:slug", catalogHandler.GetProductBySlug)
	}
}

// setupCartRoutes sets up session cart routes
func setupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, storage cart.Storage, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, storage, cfg)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateLine)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveLine)
	}
}

// setupOrderRoutes sets up pre-order routes
func setupOrderRoutes(rg *gin.RouterGroup, db *gorm.DB, storage cart.Storage, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(db, storage, cfg)

	orders := rg.Group("/orders")
	{
		orders.POST("", orderHandler.SubmitOrder)
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}
}

// setupTestimonialRoutes sets up testimonial routes
func setupTestimonialRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	testimonialHandler := handlers.NewTestimonialHandler(db, cfg)

	testimonials := rg.Group("/testimonials")
	{
		testimonials.GET("", testimonialHandler.GetTestimonials)
		testimonials.POST("", testimonialHandler.CreateTestimonial)
	}
}

// setupInquiryRoutes sets up inquiry and newsletter routes
func setupInquiryRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	inquiryHandler := handlers.NewInquiryHandler(db, cfg)

	rg.POST("/inquiries", inquiryHandler.CreateInquiry)
	rg.POST("/newsletter/subscribe", inquiryHandler.SubscribeNewsletter)
}
