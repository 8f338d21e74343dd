// internal/handlers/product.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/product-service/internal/i18n"
	"github.com/javajoker/product-service/internal/models"
	"github.com/javajoker/product-service/internal/services"
	"github.com/javajoker/product-service/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	log            *logrus.Logger
}

func NewProductHandler(productService *services.ProductService, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		log:            log,
	}
}

// GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		products []models.Product
		err      error
	)

	name := c.Query("name")
	low, high := c.Query("low"), c.Query("high")
	owner := c.Query("owner")
	category := c.Query("category")

	switch {
	case name != "":
		h.log.WithField("name", name).Debug("Filtering products by name")
		products, err = h.productService.FindByName(ctx, name)
	case low != "" && high != "":
		lowPrice, lowErr := strconv.ParseFloat(low, 64)
		highPrice, highErr := strconv.ParseFloat(high, 64)
		if lowErr != nil || highErr != nil {
			abortWithError(c, utils.NewBadRequestError(i18n.KeyValidationPriceRange, nil))
			return
		}
		h.log.WithFields(logrus.Fields{"low": lowPrice, "high": highPrice}).Debug("Filtering products by price")
		products, err = h.productService.FindByPrice(ctx, lowPrice, highPrice)
	case owner != "":
		h.log.WithField("owner", owner).Debug("Filtering products by owner")
		products, err = h.productService.FindByOwner(ctx, owner)
	case category != "":
		h.log.WithField("category", category).Debug("Filtering products by category")
		products, err = h.productService.FindByCategory(ctx, category)
	default:
		products, err = h.productService.All(ctx)
	}
	if err != nil {
		abortWithError(c, err)
		return
	}

	results := make([]map[string]interface{}, 0, len(products))
	for i := range products {
		results = append(results, products[i].Serialize())
	}
	c.JSON(http.StatusOK, results)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	product, err := (&models.Product{}).Deserialize(payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.productService.Create(c.Request.Context(), product); err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Location", productURL(c, product.ID))
	c.JSON(http.StatusCreated, product.Serialize())
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		abortWithError(c, utils.NewNotFoundError(i18n.KeyRequestNotFound))
		return
	}

	product, err := h.productService.FindOr404(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product.Serialize())
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		abortWithError(c, utils.NewBadRequestError(i18n.KeyValidationInvalidID, nil, c.Param("id")))
		return
	}

	ctx := c.Request.Context()
	product, err := h.productService.FindOr404(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	if _, err := product.Deserialize(payload); err != nil {
		abortWithError(c, err)
		return
	}

	product.ID = id
	if err := h.productService.Update(ctx, product); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product.Serialize())
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		abortWithError(c, utils.NewNotFoundError(i18n.KeyRequestNotFound))
		return
	}

	ctx := c.Request.Context()
	product, err := h.productService.Find(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if product != nil {
		if err := h.productService.Delete(ctx, product); err != nil {
			abortWithError(c, err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// PUT|POST /products/:id/purchase
func (h *ProductHandler) PurchaseProduct(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		abortWithError(c, utils.NewBadRequestError(i18n.KeyValidationInvalidID, nil, c.Param("id")))
		return
	}

	var req services.PurchaseProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, utils.NewBadRequestError(i18n.KeyValidationMalformedBody, err))
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		abortWithError(c, &models.DataValidationError{
			Key:     i18n.KeyValidationPurchase,
			Args:    []interface{}{validationErrors[0].Message},
			Details: validationErrors,
		})
		return
	}

	product, err := h.productService.Purchase(c.Request.Context(), id, req.Amount)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"product_id": id,
		"amount":     req.Amount,
		"inventory":  product.Inventory,
	}).Info("Product purchased")

	c.JSON(http.StatusOK, product.Serialize())
}

// bindPayload decodes the request body into a generic value so that
// Deserialize can report missing and mistyped fields itself.
func bindPayload(c *gin.Context) (interface{}, bool) {
	var payload interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, utils.NewBadRequestError(i18n.KeyValidationMalformedBody, err))
		return nil, false
	}
	return payload, true
}

// parseID accepts only unsigned decimal integers.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func productURL(c *gin.Context, id uint) string {
	scheme := "http"
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/products/%d", scheme, c.Request.Host, id)
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
