// Package core provides money parsing and handling utilities.
//
// This file contains the monetary and percentage amounts a coupon can save,
// backed by shopspring/decimal so sums never drift.
package core

import (
	"errors"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	MessageMonetaryAmountConstraints   = "Monetary amounts should be non-negative numbers with at most 2 decimal places"
	MessagePercentageAmountConstraints = "Percentage amounts should be numbers greater than 0 and at most 100"
)

var (
	ErrInvalidAmount     = errors.New(MessageMonetaryAmountConstraints)
	ErrInvalidPercentage = errors.New(MessagePercentageAmountConstraints)
)

var hundred = decimal.NewFromInt(100)

type (
	// MonetaryAmount is a non-negative amount of money, kept to 2 decimals.
	// The zero value is 0.00.
	MonetaryAmount struct {
		value decimal.Decimal
	}

	// PercentageAmount is a discount percentage in (0, 100].
	PercentageAmount struct {
		value decimal.Decimal
	}
)

// NewMonetaryAmount rounds d half-up to cents. Negative amounts are rejected.
func NewMonetaryAmount(d decimal.Decimal) (MonetaryAmount, error) {
	if d.IsNegative() {
		return MonetaryAmount{}, ErrInvalidAmount
	}
	return MonetaryAmount{value: d.Round(2)}, nil
}

// ParseMonetaryAmount reads a plain decimal string such as "12.34".
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Signs,
// exponents and more than two decimal places are rejected.
//
// Examples:
//
//	ParseMonetaryAmount("12.34") -> 12.34, nil
//	ParseMonetaryAmount("12,3")  -> 12.30, nil
//	ParseMonetaryAmount("0")     -> 0.00, nil
//	ParseMonetaryAmount("1.005") -> error
func ParseMonetaryAmount(s string) (MonetaryAmount, error) {
	d, err := parsePlainDecimal(s)
	if err != nil {
		return MonetaryAmount{}, ErrInvalidAmount
	}
	if !d.Equal(d.Round(2)) {
		return MonetaryAmount{}, ErrInvalidAmount
	}
	return NewMonetaryAmount(d)
}

func (m MonetaryAmount) Add(other MonetaryAmount) MonetaryAmount {
	return MonetaryAmount{value: m.value.Add(other.value)}
}

func (m MonetaryAmount) Decimal() decimal.Decimal { return m.value }

// Float64 returns the amount as a float64 for display purposes such as
// chart values. Use Add for arithmetic.
func (m MonetaryAmount) Float64() float64 {
	f, _ := m.value.Float64()
	return f
}

func (m MonetaryAmount) IsZero() bool { return m.value.IsZero() }

func (m MonetaryAmount) Equal(other MonetaryAmount) bool {
	return m.value.Equal(other.value)
}

// String formats the amount with exactly two decimals, e.g. "5.00".
func (m MonetaryAmount) String() string {
	return m.value.StringFixed(2)
}

// StringWithSymbol prefixes the formatted amount with a money symbol.
func (m MonetaryAmount) StringWithSymbol(symbol string) string {
	return symbol + m.String()
}

func NewPercentageAmount(d decimal.Decimal) (PercentageAmount, error) {
	if !d.IsPositive() || d.GreaterThan(hundred) {
		return PercentageAmount{}, ErrInvalidPercentage
	}
	return PercentageAmount{value: d}, nil
}

// ParsePercentageAmount reads a number with or without a trailing "%".
func ParsePercentageAmount(s string) (PercentageAmount, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	d, err := parsePlainDecimal(s)
	if err != nil {
		return PercentageAmount{}, ErrInvalidPercentage
	}
	return NewPercentageAmount(d)
}

func (p PercentageAmount) Decimal() decimal.Decimal { return p.value }

func (p PercentageAmount) Equal(other PercentageAmount) bool {
	return p.value.Equal(other.value)
}

func (p PercentageAmount) String() string {
	return p.value.String() + "%"
}

// Of returns this percentage of amount, rounded half-up to cents.
func (p PercentageAmount) Of(amount MonetaryAmount) MonetaryAmount {
	return MonetaryAmount{value: amount.value.Mul(p.value).Div(hundred).Round(2)}
}

func parsePlainDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	parts := strings.Split(s, ".")
	if len(parts) > 2 || (parts[0] == "" && (len(parts) == 1 || parts[1] == "")) {
		return decimal.Zero, ErrInvalidAmount
	}
	for _, part := range parts {
		for _, r := range part {
			if !unicode.IsDigit(r) {
				return decimal.Zero, ErrInvalidAmount
			}
		}
	}
	return decimal.NewFromString(s)
}
