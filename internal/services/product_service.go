// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/product-service/internal/database"
	"github.com/javajoker/product-service/internal/i18n"
	"github.com/javajoker/product-service/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// ProductNotFoundError matches ErrProductNotFound and remembers which id
// was looked up.
type ProductNotFoundError struct {
	ID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with id %d not found", e.ID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

// ProductService is the only code that reads or writes the products table.
type ProductService struct {
	db  *gorm.DB
	log *logrus.Logger
}

type PurchaseProductRequest struct {
	ID     *uint `json:"id,omitempty"`
	Amount int   `json:"amount" validate:"required,min=1"`
}

func NewProductService(db *gorm.DB, log *logrus.Logger) *ProductService {
	return &ProductService{
		db:  db,
		log: log,
	}
}

// Create inserts product as a new row. Any caller-supplied ID is discarded
// so the store always assigns a fresh one.
func (s *ProductService) Create(ctx context.Context, product *models.Product) error {
	s.log.WithField("name", product.Name).Info("Creating product")

	product.ID = 0
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update writes every field of product over the stored row. Last writer wins.
func (s *ProductService) Update(ctx context.Context, product *models.Product) error {
	s.log.WithField("product_id", product.ID).Info("Updating product")

	if product.ID == 0 {
		s.log.Warn("Refusing to update product with empty ID")
		return models.NewDataValidationError(i18n.KeyValidationEmptyID)
	}

	result := s.db.WithContext(ctx).Model(product).Select("*").Updates(product)
	if result.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return &ProductNotFoundError{ID: product.ID}
	}
	return nil
}

// Delete removes product. Losing a race against another writer counts as
// success: the transaction is rolled back and nil is returned.
func (s *ProductService) Delete(ctx context.Context, product *models.Product) error {
	s.log.WithField("product_id", product.ID).Info("Deleting product")

	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		return tx.Delete(&models.Product{}, product.ID).Error
	})
	if database.IsConflict(err) {
		s.log.WithError(err).WithField("product_id", product.ID).Warn("Delete conflicted with a concurrent change, rolled back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", product.ID, err)
	}
	return nil
}

func (s *ProductService) All(ctx context.Context) ([]models.Product, error) {
	s.log.Debug("Processing all products")
	return s.findWhere(ctx, "")
}

// Find returns nil, nil when no product has the given id.
func (s *ProductService) Find(ctx context.Context, id uint) (*models.Product, error) {
	s.log.WithField("product_id", id).Debug("Processing lookup")

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product %d: %w", id, err)
	}
	return &product, nil
}

func (s *ProductService) FindOr404(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &ProductNotFoundError{ID: id}
	}
	return product, nil
}

func (s *ProductService) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	s.log.WithField("name", name).Debug("Processing name query")
	return s.findWhere(ctx, "name = ?", name)
}

// FindByPrice returns products priced within [low, high].
func (s *ProductService) FindByPrice(ctx context.Context, low, high float64) ([]models.Product, error) {
	s.log.WithFields(logrus.Fields{"low": low, "high": high}).Debug("Processing price query")
	return s.findWhere(ctx, "price >= ? AND price <= ?", low, high)
}

func (s *ProductService) FindByOwner(ctx context.Context, owner string) ([]models.Product, error) {
	s.log.WithField("owner", owner).Debug("Processing owner query")
	return s.findWhere(ctx, "owner = ?", owner)
}

func (s *ProductService) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	s.log.WithField("category", category).Debug("Processing category query")
	return s.findWhere(ctx, "category = ?", category)
}

func (s *ProductService) findWhere(ctx context.Context, query string, args ...interface{}) ([]models.Product, error) {
	products := []models.Product{}

	tx := s.db.WithContext(ctx)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

// Purchase takes amount units out of the product's inventory. Inventory is
// allowed to go negative. Reserving stock with the shopping-cart and
// inventory services is not wired in.
func (s *ProductService) Purchase(ctx context.Context, id uint, amount int) (*models.Product, error) {
	s.log.WithFields(logrus.Fields{"product_id": id, "amount": amount}).Info("Purchasing product")

	var product models.Product
	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		result := tx.Model(&models.Product{}).
			Where("id = ?", id).
			Update("inventory", gorm.Expr("COALESCE(inventory, 0) - ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &ProductNotFoundError{ID: id}
		}
		return tx.First(&product, id).Error
	})
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to purchase product %d: %w", id, err)
	}
	return &product, nil
}
