// internal/router/router.go
package router

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/product-service/internal/config"
	"github.com/javajoker/product-service/internal/handlers"
	"github.com/javajoker/product-service/internal/middleware"
	"github.com/javajoker/product-service/internal/services"
)

const jsonContentType = "application/json"

// Initialize wires every route onto a fresh engine. Background work started
// here (the rate limiter janitor) stops when ctx is cancelled.
func Initialize(ctx context.Context, db *gorm.DB, cfg *config.Config, log *logrus.Logger) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(db, log)

	// Initialize handlers
	indexHandler := handlers.NewIndexHandler(db, log)
	productHandler := handlers.NewProductHandler(productService, log)

	metrics := middleware.NewMetrics()

	// Initialize Gin router
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.ErrorHandler(log))
	r.Use(middleware.RateLimit(ctx, cfg.RateLimit))

	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())

	r.GET("/", indexHandler.Index)
	r.GET("/health", indexHandler.Health)
	r.GET("/metrics", metrics.Handler())

	products := r.Group("/products")
	{
		requireJSON := middleware.RequireContentType(jsonContentType)

		products.GET("", productHandler.ListProducts)
		products.POST("", requireJSON, productHandler.CreateProduct)
		products.GET("/:id", productHandler.GetProduct)
		products.PUT("/:id", requireJSON, productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
		products.PUT("/:id/purchase", requireJSON, productHandler.PurchaseProduct)
		products.POST("/:id/purchase", requireJSON, productHandler.PurchaseProduct)
	}

	return r
}
