// Package validate checks incoming records before they reach the store.
// It never touches the database: referential checks belong to the store layer.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// maxAmount bounds every monetary input to fit NUMERIC(12,2).
var maxAmount = decimal.New(1, 10)

// FieldError is a single offending field, named by its JSON key.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries every field that failed validation.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator holds the configured struct validator and the accepted payment methods.
type Validator struct {
	v       *validator.Validate
	methods []string
}

// New builds a Validator that accepts the given payment methods (case-sensitive).
func New(paymentMethods []string) *Validator {
	methods := append([]string(nil), paymentMethods...)
	allowed := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		allowed[m] = struct{}{}
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "money_nonneg", func(fl validator.FieldLevel) bool {
		d, err := ParseAmount(fl.Field().String())
		return err == nil && !d.IsNegative()
	})
	mustRegister(v, "money_pos", func(fl validator.FieldLevel) bool {
		d, err := ParseAmount(fl.Field().String())
		return err == nil && d.IsPositive()
	})
	mustRegister(v, "payment_method", func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	})

	return &Validator{v: v, methods: methods}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// PaymentMethods returns the configured method identifiers.
func (val *Validator) PaymentMethods() []string {
	return append([]string(nil), val.methods...)
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseAmount parses a decimal string with at most two fractional digits
// and an absolute value below 10^10.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.New("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, errors.New("exponent notation not allowed")
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Zero, errors.New("more than two decimal places")
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, errors.New("amount too large")
	}
	return d, nil
}

func (val *Validator) check(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: val.message(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace,
// e.g. "SalesEntryInput.individual_sales[0].amount" -> "individual_sales[0].amount".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func (val *Validator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "uuid":
		return "must be a valid UUID"
	case "money_nonneg":
		return "must be a non-negative amount with at most 2 decimal places"
	case "money_pos":
		return "must be an amount greater than zero with at most 2 decimal places"
	case "payment_method":
		return "must be one of: " + strings.Join(val.methods, ", ")
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
