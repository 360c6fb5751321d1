package models

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NewValidator returns a validator that understands decimal.Decimal
// fields, so numeric tags like gte apply to prices.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	return v
}

func decimalAsFloat(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// ValidationMessages flattens validator errors into field -> message
// pairs suitable for printing. Returns nil for any other error.
func ValidationMessages(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	messages := make(map[string]string, len(verrs))
	for _, ve := range verrs {
		messages[ve.Field()] = fieldMessage(ve)
	}
	return messages
}

func fieldMessage(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + ve.Param() + " characters"
	case "gte":
		return "cannot be negative"
	}
	return "is invalid"
}
