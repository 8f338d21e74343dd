// internal/models/product.go
package models

import (
	"encoding/json"
	"math"

	"github.com/javajoker/product-service/internal/i18n"
	"github.com/javajoker/product-service/internal/utils"
)

// ProductFields holds everything a client may write.
type ProductFields struct {
	Name        string   `json:"name" gorm:"size:63;not null;index" validate:"required,max=63"`
	Description string   `json:"description" gorm:"size:128;not null" validate:"max=128"`
	Price       *float64 `json:"price" gorm:"index"`
	Inventory   *int     `json:"inventory"`
	Owner       *string  `json:"owner" gorm:"size:63;index" validate:"omitempty,max=63"`
	Category    *string  `json:"category" gorm:"size:63;index" validate:"omitempty,max=63"`
}

// Product is a stored ProductFields plus its server-assigned identifier.
type Product struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductFields
}

func (Product) TableName() string {
	return "products"
}

// Serialize returns the flat representation sent over the wire.
func (p *Product) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       derefOrNil(p.Price),
		"inventory":   derefOrNil(p.Inventory),
		"owner":       derefOrNil(p.Owner),
		"category":    derefOrNil(p.Category),
	}
}

// Deserialize replaces p's writable fields with the ones in data. Every
// field key must be present; optional fields may be null. The ID is left
// untouched.
func (p *Product) Deserialize(data interface{}) (*Product, error) {
	fields, ok := data.(map[string]interface{})
	if !ok {
		return nil, NewDataValidationError(i18n.KeyValidationBadData)
	}

	for _, key := range []string{"name", "description", "price", "inventory", "owner", "category"} {
		if _, present := fields[key]; !present {
			return nil, NewDataValidationError(i18n.KeyValidationMissingField, key)
		}
	}

	var (
		decoded ProductFields
		err     error
	)
	if decoded.Name, err = requiredString(fields, "name"); err != nil {
		return nil, err
	}
	if decoded.Description, err = requiredString(fields, "description"); err != nil {
		return nil, err
	}
	if decoded.Price, err = optionalNumber(fields, "price"); err != nil {
		return nil, err
	}
	if decoded.Inventory, err = optionalInteger(fields, "inventory"); err != nil {
		return nil, err
	}
	if decoded.Owner, err = optionalString(fields, "owner"); err != nil {
		return nil, err
	}
	if decoded.Category, err = optionalString(fields, "category"); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(&decoded); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		if len(validationErrors) == 0 {
			return nil, err
		}
		verr := NewDataValidationError(i18n.KeyValidationInvalidField, validationErrors[0].Message)
		verr.Details = validationErrors
		return nil, verr
	}

	p.ProductFields = decoded
	return p, nil
}

func requiredString(fields map[string]interface{}, key string) (string, error) {
	s, ok := fields[key].(string)
	if !ok {
		return "", NewDataValidationError(i18n.KeyValidationWrongType, key, "a string")
	}
	return s, nil
}

func optionalString(fields map[string]interface{}, key string) (*string, error) {
	if fields[key] == nil {
		return nil, nil
	}
	s, err := requiredString(fields, key)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func optionalNumber(fields map[string]interface{}, key string) (*float64, error) {
	var f float64
	switch v := fields[key].(type) {
	case nil:
		return nil, nil
	case float64:
		f = v
	case int:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil, NewDataValidationError(i18n.KeyValidationWrongType, key, "a number")
		}
		f = parsed
	default:
		return nil, NewDataValidationError(i18n.KeyValidationWrongType, key, "a number")
	}
	return &f, nil
}

func optionalInteger(fields map[string]interface{}, key string) (*int, error) {
	f, err := optionalNumber(fields, key)
	if err != nil {
		return nil, NewDataValidationError(i18n.KeyValidationWrongType, key, "an integer")
	}
	if f == nil {
		return nil, nil
	}
	if *f != math.Trunc(*f) || *f > math.MaxInt32 || *f < math.MinInt32 {
		return nil, NewDataValidationError(i18n.KeyValidationWrongType, key, "an integer")
	}
	n := int(*f)
	return &n, nil
}

func derefOrNil[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
