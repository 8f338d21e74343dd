// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Products
	KeyProductNotFound = "product.not_found"

	// Validation
	KeyValidationBadData       = "validation.bad_data"
	KeyValidationMissingField  = "validation.missing_field"
	KeyValidationWrongType     = "validation.wrong_type"
	KeyValidationInvalidField  = "validation.invalid_field"
	KeyValidationEmptyID       = "validation.empty_id"
	KeyValidationInvalidID     = "validation.invalid_id"
	KeyValidationPriceRange    = "validation.invalid_price_range"
	KeyValidationPurchase      = "validation.invalid_purchase"
	KeyValidationMalformedBody = "validation.malformed_body"

	// Request
	KeyRequestNotFound         = "request.not_found"
	KeyRequestMethodNotAllowed = "request.method_not_allowed"
	KeyRequestUnsupportedMedia = "request.unsupported_media_type"
	KeyRequestRateLimited      = "request.rate_limited"

	// Server
	KeyServerInternalError = "server.internal_error"
)
