// Package validation wires go-playground/validator for request payloads and
// registers the domain-specific rules the default tag set lacks.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"walletdesk/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

var nationalIDPattern = regexp.MustCompile(`^[0-9]{11}$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// currency: one of the supported wallet currencies.
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return models.Currency(fl.Field().String()).Valid()
	})

	// national_id: eleven digits.
	_ = v.RegisterValidation("national_id", func(fl validator.FieldLevel) bool {
		return nationalIDPattern.MatchString(fl.Field().String())
	})

	// employee_role: one of the known roles.
	_ = v.RegisterValidation("employee_role", func(fl validator.FieldLevel) bool {
		return models.EmployeeRole(fl.Field().String()).Valid()
	})

	// opposite_party_type: IBAN or PAYMENT.
	_ = v.RegisterValidation("opposite_party_type", func(fl validator.FieldLevel) bool {
		return models.OppositePartyType(fl.Field().String()).Valid()
	})

	// money: a decimal string with at most two fraction digits, > 0.
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return d.IsPositive() && d.Exponent() >= -2
	})

	return v
}

// ValidateStruct checks the struct's validate tags and returns a single
// human-readable error naming the first offending field.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("field %s failed %s validation", strings.ToLower(fe.Field()), fe.Tag())
	}
	return err
}
