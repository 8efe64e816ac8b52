package parser

import (
	"strconv"
	"strings"

	"couponstash/internal/core"
)

const MessageMultipleAmounts = "Savings can have at most one monetary amount and at most one percentage amount"

// ParseIndex reads a one-based index. Only unsigned digits are accepted.
func ParseIndex(s string) (core.Index, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return core.Index{}, newParseError(core.ErrInvalidIndex)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return core.Index{}, newParseError(core.ErrInvalidIndex)
	}
	idx, err := core.IndexFromOneBased(n)
	if err != nil {
		return core.Index{}, newParseError(err)
	}
	return idx, nil
}

func ParseName(s string) (core.Name, error) {
	n, err := core.NewName(s)
	if err != nil {
		return core.Name{}, newParseError(err)
	}
	return n, nil
}

func ParsePhone(s string) (core.Phone, error) {
	p, err := core.NewPhone(s)
	if err != nil {
		return core.Phone{}, newParseError(err)
	}
	return p, nil
}

func ParseEmail(s string) (core.Email, error) {
	e, err := core.NewEmail(s)
	if err != nil {
		return core.Email{}, newParseError(err)
	}
	return e, nil
}

func ParseExpiryDate(s string) (core.ExpiryDate, error) {
	e, err := core.NewExpiryDate(s)
	if err != nil {
		return core.ExpiryDate{}, newParseError(err)
	}
	return e, nil
}

func ParseLimit(s string) (core.Limit, error) {
	l, err := core.ParseLimit(s)
	if err != nil {
		return core.Limit{}, newParseError(err)
	}
	return l, nil
}

func ParseMonthYear(s string) (core.MonthYear, error) {
	my, err := core.ParseMonthYear(s)
	if err != nil {
		return core.MonthYear{}, newParseError(err)
	}
	return my, nil
}

// ParseMonetaryAmount reads an amount, with or without the money symbol in
// front of it.
func ParseMonetaryAmount(s, moneySymbol string) (core.MonetaryAmount, error) {
	s = strings.TrimSpace(s)
	if moneySymbol != "" {
		s = strings.TrimPrefix(s, moneySymbol)
	}
	amount, err := core.ParseMonetaryAmount(s)
	if err != nil {
		return core.MonetaryAmount{}, newParseError(err)
	}
	return amount, nil
}

func ParseTags(values []string) (core.TagSet, error) {
	tags := make([]core.Tag, 0, len(values))
	for _, v := range values {
		t, err := core.NewTag(v)
		if err != nil {
			return core.TagSet{}, newParseError(err)
		}
		tags = append(tags, t)
	}
	return core.NewTagSet(tags...), nil
}

// ParseSavings classifies each value: a leading money symbol makes a
// monetary amount, a trailing "%" a percentage, anything else a saveable.
func ParseSavings(values []string, moneySymbol string) (core.Savings, error) {
	var (
		monetary   *core.MonetaryAmount
		percentage *core.PercentageAmount
		saveables  []core.Saveable
	)
	for _, v := range values {
		v = strings.TrimSpace(v)
		switch {
		case v == "":
			return core.Savings{}, newParseError(core.ErrInvalidSaveable)
		case moneySymbol != "" && strings.HasPrefix(v, moneySymbol):
			if monetary != nil {
				return core.Savings{}, &ParseError{Message: MessageMultipleAmounts}
			}
			amount, err := ParseMonetaryAmount(v, moneySymbol)
			if err != nil {
				return core.Savings{}, err
			}
			monetary = &amount
		case strings.HasSuffix(v, "%"):
			if percentage != nil {
				return core.Savings{}, &ParseError{Message: MessageMultipleAmounts}
			}
			pct, err := core.ParsePercentageAmount(v)
			if err != nil {
				return core.Savings{}, newParseError(err)
			}
			percentage = &pct
		default:
			sv, err := core.NewSaveable(v)
			if err != nil {
				return core.Savings{}, newParseError(err)
			}
			saveables = append(saveables, sv)
		}
	}

	s, err := core.NewSavings(monetary, percentage, saveables)
	if err != nil {
		return core.Savings{}, newParseError(err)
	}
	return s, nil
}
