package service

import (
	"reflect"
	"strings"

	"tipster/models"

	"github.com/go-playground/validator/v10"
)

// validate is shared across services; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the JSON field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("sport", func(fl validator.FieldLevel) bool {
		return models.Sport(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("plan", func(fl validator.FieldLevel) bool {
		return models.SubscriptionPlan(fl.Field().String()).IsValid()
	})

	return v
}

// checkStruct runs struct validation and converts failures into a
// field-listing ValidationError
func checkStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}
