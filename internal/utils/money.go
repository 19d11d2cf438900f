package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/trift/moneycheck/internal/models"
)

var (
	ErrAmountRequired   = errors.New("amount is required")
	ErrAmountNotNumeric = errors.New("amount must be a number")
	ErrAmountNegative   = errors.New("amount must be zero or greater")
	ErrAmountTooLarge   = errors.New("amount is too large")
)

// MaxAmount bounds every input so totals and ratios stay finite.
const MaxAmount = 1e15

var maxAmount = decimal.NewFromFloat(MaxAmount)

var validate = validator.New()

// ParseAmount parses a form amount such as "250,000" into a non-negative value.
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if cleaned == "" {
		return 0, ErrAmountRequired
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrAmountNotNumeric, raw)
	}
	if d.IsNegative() {
		return 0, ErrAmountNegative
	}
	if d.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: %q", ErrAmountTooLarge, raw)
	}

	return d.InexactFloat64(), nil
}

// ValidateRecord checks that every field of a whole submitted record lies in [0, MaxAmount].
func ValidateRecord(record models.InputRecord) error {
	if err := validate.Struct(record); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			if fe.Tag() == "lte" {
				return fmt.Errorf("%w: %s", ErrAmountTooLarge, fe.Field())
			}
			return fmt.Errorf("%w: %s", ErrAmountNegative, fe.Field())
		}
		return fmt.Errorf("invalid record: %w", err)
	}
	return nil
}
