// internal/handlers/index.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/product-service/internal/database"
)

const (
	ServiceName    = "Product Demo REST API Service"
	ServiceVersion = "1.0.0"
)

type IndexHandler struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewIndexHandler(db *gorm.DB, log *logrus.Logger) *IndexHandler {
	return &IndexHandler{db: db, log: log}
}

// GET /
func (h *IndexHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    ServiceName,
		"version": ServiceVersion,
		"paths":   "/products",
	})
}

// GET /health
func (h *IndexHandler) Health(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.db); err != nil {
		h.log.WithError(err).Error("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"version": ServiceVersion,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": ServiceVersion,
	})
}
