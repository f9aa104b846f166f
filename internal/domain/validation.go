package domain

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"reflect"
	"strings"
)

type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	v := validator.New()
	v.RegisterValidation("notblank", validateNotBlank)

	// Report fields by their JSON names so paths match the request body
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Validate decimals as float64 so the numeric tags apply
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	return &Validation{validator: v}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidationError is a single field violation
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (v ValidationError) Error() string {
	return fmt.Sprintf("Field '%s': %s", v.Field, v.Message)
}

// ValidationErrors is a slice of ValidationError
type ValidationErrors []ValidationError

// Errors converts the violations to a slice of strings
func (ve ValidationErrors) Errors() []string {
	errs := make([]string, 0, len(ve))
	for _, v := range ve {
		errs = append(errs, v.Error())
	}
	return errs
}

// Validate checks i against its struct tags and returns every violation.
// Field paths drop the root type name, e.g. "product.price".
func (v *Validation) Validate(i interface{}) ValidationErrors {
	var errors ValidationErrors

	err := v.validator.Struct(i)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return ValidationErrors{{Field: "", Message: err.Error()}}
		}
		for _, fe := range validationErrors {
			errors = append(errors, ValidationError{
				Field:   fieldPath(fe.Namespace()),
				Message: fieldMessage(fe),
			})
		}
	}

	return errors
}

func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

// fieldMessages maps "<field>.<tag>" to the message shown to the user
var fieldMessages = map[string]string{
	"product.required":     "Product is required",
	"name.required":        "Product name is required",
	"name.notblank":        "Product name is required",
	"name.max":             "Product name must be 200 characters or less",
	"description.required": "Description must be at least 10 characters",
	"description.min":      "Description must be at least 10 characters",
	"description.max":      "Description must be 2000 characters or less",
	"price.required":       "Price is required",
	"price.gte":            "Price must be a positive number",
	"price.lte":            "Price must be less than $1,000,000",
	"category.max":         "Category must be 100 characters or less",
	"tone.oneof":           "Tone must be one of: professional, casual, humorous, urgent, inspirational",
	"platforms.min":        "At least one platform must be selected",
	"platforms.oneof":      "Platform must be one of: twitter, instagram, linkedin",
	"language.oneof":       "Unsupported language",
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	// dive errors are reported on the element, e.g. "platforms[1]"
	if idx := strings.Index(field, "["); idx >= 0 {
		field = field[:idx]
	}
	if msg, ok := fieldMessages[field+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("failed on the '%s' tag", fe.Tag())
}
