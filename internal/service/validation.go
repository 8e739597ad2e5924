package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/money"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

// initValidator creates the validator and registers the decimal rules used
// by the api messages. Field names in errors are the JSON names.
func initValidator() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	vld.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal is validated in place; registering a custom type func
	// returning the same type would loop.
	if err := vld.RegisterValidation("nonnegative_decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && !value.IsNegative()
	}); err != nil {
		return nil, fmt.Errorf("failed to register 'nonnegative_decimal': %w", err)
	}

	if err := vld.RegisterValidation("percent_decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && money.IsPercentage(value)
	}); err != nil {
		return nil, fmt.Errorf("failed to register 'percent_decimal': %w", err)
	}

	return vld, nil
}

func getValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidator()
	})
	return validate, errValidate
}

// validateRequest checks msg against its validate tags. The error wraps
// models.ErrInvalidArgument and names the first failing field.
func validateRequest(msg any) error {
	vld, err := getValidator()
	if err != nil {
		return err
	}

	if err := vld.Struct(msg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return formatValidationError(validationErrors[0])
		}
		return fmt.Errorf("%w: %v", models.ErrInvalidArgument, err)
	}
	return nil
}

func formatValidationError(fe validator.FieldError) error {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:] // drop the message type name
	}

	var reason string
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "max":
		reason = "must be at most " + fe.Param() + " characters"
	case "min":
		reason = "must be at least " + fe.Param() + " characters"
	case "gte":
		reason = "must be at least " + fe.Param()
	case "len":
		reason = "must be exactly " + fe.Param() + " characters"
	case "alpha":
		reason = "must contain only letters"
	case "nonnegative_decimal":
		reason = "must be a non-negative amount"
	case "percent_decimal":
		reason = "must be a percentage between 0 and 100"
	default:
		reason = "failed '" + fe.Tag() + "' validation"
	}
	return fmt.Errorf("%w: '%s' %s", models.ErrInvalidArgument, field, reason)
}
