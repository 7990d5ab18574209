package menu

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Let numeric tags (gte=0) apply to decimal prices.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Validate checks the item's field rules: name present and at most 50
// characters, type one of the three categories, price non-negative,
// description at most 400 characters, image URL at most 256.
func (it Item) Validate() error {
	return validate.Struct(it)
}
