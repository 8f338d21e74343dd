package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/javajoker/product-service/internal/database"
	"github.com/javajoker/product-service/internal/logging"
	"github.com/javajoker/product-service/internal/models"
)

func ptr[T any](v T) *T {
	return &v
}

func newProduct(name, description string, price float64, inventory int, owner, category string) *models.Product {
	return &models.Product{ProductFields: models.ProductFields{
		Name:        name,
		Description: description,
		Price:       ptr(price),
		Inventory:   ptr(inventory),
		Owner:       ptr(owner),
		Category:    ptr(category),
	}}
}

type ProductServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ProductService
	ctx     context.Context
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.db = database.NewTestDB(suite.T())
	suite.service = NewProductService(suite.db, logging.Discard())
	suite.ctx = context.Background()
}

func (suite *ProductServiceTestSuite) create(p *models.Product) *models.Product {
	suite.Require().NoError(suite.service.Create(suite.ctx, p))
	return p
}

func (suite *ProductServiceTestSuite) seedTwo() {
	suite.create(newProduct("test1", "test des1", 105, 100, "test person1", "A"))
	suite.create(newProduct("test2", "test des2", 85, 300, "test person2", "B"))
}

func (suite *ProductServiceTestSuite) TestCreateAssignsFreshID() {
	products, err := suite.service.All(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(products)

	product := newProduct("apple", "good", 1.5, 100, "sun123", "fruit")
	product.ID = 77
	suite.create(product)

	suite.NotZero(product.ID)
	suite.NotEqual(uint(77), product.ID)

	products, err = suite.service.All(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(products, 1)
	suite.Equal(product.ID, products[0].ID)
}

func (suite *ProductServiceTestSuite) TestCreateNeverReusesIDs() {
	first := suite.create(newProduct("a", "d", 1, 1, "o", "c"))
	second := suite.create(newProduct("b", "d", 1, 1, "o", "c"))
	suite.NotEqual(first.ID, second.ID)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct() {
	product := suite.create(newProduct("iPhone 12 Pro Max", "iPhone 12 Pro Max purple", 1099, 100, "Alice", "Technology"))
	originalID := product.ID

	product.Price = ptr(999.99)
	product.Description = "iPhone 12 Pro Max Black"
	suite.Require().NoError(suite.service.Update(suite.ctx, product))
	suite.Equal(originalID, product.ID)

	products, err := suite.service.All(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.Equal(999.99, *products[0].Price)
	suite.Equal("iPhone 12 Pro Max Black", products[0].Description)
	suite.Equal("Alice", *products[0].Owner)
}

func (suite *ProductServiceTestSuite) TestUpdateCanClearOptionalFields() {
	product := suite.create(newProduct("pen", "blue", 2, 10, "Bob", "office"))

	product.Owner = nil
	product.Price = nil
	suite.Require().NoError(suite.service.Update(suite.ctx, product))

	stored, err := suite.service.Find(suite.ctx, product.ID)
	suite.Require().NoError(err)
	suite.Nil(stored.Owner)
	suite.Nil(stored.Price)
	suite.Equal("office", *stored.Category)
}

func (suite *ProductServiceTestSuite) TestUpdateEmptyID() {
	product := suite.create(newProduct("iPhone 12 Pro Max", "purple", 1099, 100, "Alice", "Technology"))
	product.ID = 0

	err := suite.service.Update(suite.ctx, product)

	var verr *models.DataValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Equal("empty ID", verr.Error())
}

func (suite *ProductServiceTestSuite) TestUpdateMissingRow() {
	product := newProduct("ghost", "gone", 1, 1, "o", "c")
	product.ID = 4242

	err := suite.service.Update(suite.ctx, product)
	suite.ErrorIs(err, ErrProductNotFound)

	products, err := suite.service.All(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(products)
}

func (suite *ProductServiceTestSuite) TestDeleteProduct() {
	product := suite.create(newProduct("iPhone 12 Pro Max", "purple", 1099, 100, "Alice", "Technology"))

	suite.Require().NoError(suite.service.Delete(suite.ctx, product))

	products, err := suite.service.All(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(products)

	// Deleting again is a no-op.
	suite.NoError(suite.service.Delete(suite.ctx, product))
}

func (suite *ProductServiceTestSuite) TestDeleteConflictIsSwallowed() {
	product := suite.create(newProduct("iPhone 12 Pro Max", "purple", 1099, 100, "Alice", "Technology"))

	suite.Require().NoError(suite.db.Callback().Delete().Before("gorm:delete").Register("test:conflict", func(tx *gorm.DB) {
		tx.AddError(&pgconn.PgError{Code: "40001", Message: "could not serialize access"})
	}))

	suite.NoError(suite.service.Delete(suite.ctx, product))

	products, err := suite.service.All(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(products, 1, "rolled back delete must leave the row in place")
}

func (suite *ProductServiceTestSuite) TestDeleteOtherErrorsPropagate() {
	product := suite.create(newProduct("lamp", "bright", 20, 3, "Ann", "home"))

	suite.Require().NoError(suite.db.Callback().Delete().Before("gorm:delete").Register("test:failure", func(tx *gorm.DB) {
		tx.AddError(errors.New("disk full"))
	}))

	err := suite.service.Delete(suite.ctx, product)
	suite.ErrorContains(err, "disk full")
}

func (suite *ProductServiceTestSuite) TestFind() {
	suite.seedTwo()

	product, err := suite.service.Find(suite.ctx, 9999)
	suite.NoError(err)
	suite.Nil(product)
}

func (suite *ProductServiceTestSuite) TestFindOr404Found() {
	products := []*models.Product{
		suite.create(newProduct("Ann", "des1", 10.5, 120, "owner1", "A")),
		suite.create(newProduct("Ben", "des2", 20, 150, "owner2", "B")),
		suite.create(newProduct("Cid", "des3", 80, 80, "owner3", "C")),
	}

	product, err := suite.service.FindOr404(suite.ctx, products[1].ID)
	suite.Require().NoError(err)
	suite.Equal(products[1].ID, product.ID)
	suite.Equal(products[1].Name, product.Name)
}

func (suite *ProductServiceTestSuite) TestFindOr404NotFound() {
	_, err := suite.service.FindOr404(suite.ctx, 0)

	suite.ErrorIs(err, ErrProductNotFound)
	var nf *ProductNotFoundError
	suite.Require().True(errors.As(err, &nf))
	suite.Equal(uint(0), nf.ID)
}

func (suite *ProductServiceTestSuite) TestFindByName() {
	suite.seedTwo()

	products, err := suite.service.FindByName(suite.ctx, "test2")
	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.Equal("test2", products[0].Name)
	suite.Equal("test des2", products[0].Description)
	suite.Equal(85.0, *products[0].Price)
	suite.Equal(300, *products[0].Inventory)
	suite.Equal("test person2", *products[0].Owner)
	suite.Equal("B", *products[0].Category)
}

func (suite *ProductServiceTestSuite) TestFindByPrice() {
	suite.seedTwo()

	products, err := suite.service.FindByPrice(suite.ctx, 80, 90)
	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.Equal("test2", products[0].Name)

	products, err = suite.service.FindByPrice(suite.ctx, 85, 105)
	suite.Require().NoError(err)
	suite.Len(products, 2, "range is inclusive on both ends")

	products, err = suite.service.FindByPrice(suite.ctx, 200, 300)
	suite.Require().NoError(err)
	suite.NotNil(products)
	suite.Empty(products)
}

func (suite *ProductServiceTestSuite) TestFindByOwner() {
	suite.seedTwo()

	products, err := suite.service.FindByOwner(suite.ctx, "test person2")
	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.Equal("test2", products[0].Name)
}

func (suite *ProductServiceTestSuite) TestFindByCategory() {
	suite.seedTwo()

	products, err := suite.service.FindByCategory(suite.ctx, "A")
	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.Equal("test1", products[0].Name)
}

func (suite *ProductServiceTestSuite) TestPurchaseDecrementsInventory() {
	product := suite.create(newProduct("apple", "good", 1.5, 100, "sun123", "fruit"))

	purchased, err := suite.service.Purchase(suite.ctx, product.ID, 30)
	suite.Require().NoError(err)
	suite.Equal(70, *purchased.Inventory)

	purchased, err = suite.service.Purchase(suite.ctx, product.ID, 80)
	suite.Require().NoError(err)
	suite.Equal(-10, *purchased.Inventory, "inventory has no floor")
}

func (suite *ProductServiceTestSuite) TestPurchaseWithoutInventory() {
	product := suite.create(&models.Product{ProductFields: models.ProductFields{Name: "air", Description: "free"}})

	purchased, err := suite.service.Purchase(suite.ctx, product.ID, 2)
	suite.Require().NoError(err)
	suite.Require().NotNil(purchased.Inventory)
	suite.Equal(-2, *purchased.Inventory)
}

func (suite *ProductServiceTestSuite) TestPurchaseNotFound() {
	_, err := suite.service.Purchase(suite.ctx, 31337, 1)
	suite.ErrorIs(err, ErrProductNotFound)
}

func TestProductServiceSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

func TestProductNotFoundError(t *testing.T) {
	err := &ProductNotFoundError{ID: 5}
	assert.Equal(t, "product with id 5 not found", err.Error())
	require.ErrorIs(t, err, ErrProductNotFound)
}
