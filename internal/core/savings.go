package core

import (
	"errors"
	"slices"
	"strings"
)

const (
	MessageSavingsConstraints    = "Savings should have at least one monetary amount, percentage amount or saveable"
	MessageSaveableConstraints   = "Saveables should not be blank"
	MessageMonetaryAndPercentage = "Savings cannot have both a monetary amount and a percentage amount"
)

var (
	ErrEmptySavings          = errors.New(MessageSavingsConstraints)
	ErrInvalidSaveable       = errors.New(MessageSaveableConstraints)
	ErrMonetaryAndPercentage = errors.New(MessageMonetaryAndPercentage)
)

// SavingsKind names which parts of a Savings are present.
type SavingsKind int

const (
	PercentageOnly SavingsKind = iota
	MonetaryOnly
	// Mixed is a monetary or percentage amount together with saveables.
	Mixed
	SaveablesOnly
)

func (k SavingsKind) String() string {
	switch k {
	case PercentageOnly:
		return "percentage"
	case MonetaryOnly:
		return "monetary"
	case Mixed:
		return "mixed"
	case SaveablesOnly:
		return "saveables"
	default:
		return "unknown"
	}
}

type (
	// Saveable is a non-monetary benefit, e.g. "free dessert".
	Saveable struct {
		value string
	}

	// Savings describes what a coupon saves. A monetary and a percentage
	// amount never appear together.
	Savings struct {
		monetary      MonetaryAmount
		hasMonetary   bool
		percentage    PercentageAmount
		hasPercentage bool
		saveables     []Saveable
	}

	// PureMonetarySavings is savings expressed only as money plus any
	// saveables, after percentages have been converted. The zero value is
	// 0.00 with no saveables.
	PureMonetarySavings struct {
		amount    MonetaryAmount
		saveables []Saveable
	}
)

func NewSaveable(s string) (Saveable, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Saveable{}, ErrInvalidSaveable
	}
	return Saveable{value: s}, nil
}

func (s Saveable) String() string { return s.value }

// NewSavings validates the combination of parts. Nil pointers mean absent.
func NewSavings(monetary *MonetaryAmount, percentage *PercentageAmount, saveables []Saveable) (Savings, error) {
	if monetary != nil && percentage != nil {
		return Savings{}, ErrMonetaryAndPercentage
	}
	if monetary == nil && percentage == nil && len(saveables) == 0 {
		return Savings{}, ErrEmptySavings
	}
	s := Savings{saveables: slices.Clone(saveables)}
	if monetary != nil {
		s.monetary, s.hasMonetary = *monetary, true
	}
	if percentage != nil {
		s.percentage, s.hasPercentage = *percentage, true
	}
	return s, nil
}

// MonetarySavings is shorthand for savings of a fixed amount.
func MonetarySavings(amount MonetaryAmount, saveables ...Saveable) Savings {
	return Savings{monetary: amount, hasMonetary: true, saveables: slices.Clone(saveables)}
}

// PercentageSavings is shorthand for savings of a percentage.
func PercentageSavings(pct PercentageAmount, saveables ...Saveable) Savings {
	return Savings{percentage: pct, hasPercentage: true, saveables: slices.Clone(saveables)}
}

func (s Savings) MonetaryAmount() (MonetaryAmount, bool) {
	return s.monetary, s.hasMonetary
}

func (s Savings) PercentageAmount() (PercentageAmount, bool) {
	return s.percentage, s.hasPercentage
}

func (s Savings) HasPercentage() bool { return s.hasPercentage }

func (s Savings) Saveables() []Saveable {
	return slices.Clone(s.saveables)
}

func (s Savings) Kind() SavingsKind {
	switch {
	case (s.hasMonetary || s.hasPercentage) && len(s.saveables) > 0:
		return Mixed
	case s.hasMonetary:
		return MonetaryOnly
	case s.hasPercentage:
		return PercentageOnly
	default:
		return SaveablesOnly
	}
}

func (s Savings) Equal(other Savings) bool {
	if s.hasMonetary != other.hasMonetary || s.hasPercentage != other.hasPercentage {
		return false
	}
	if s.hasMonetary && !s.monetary.Equal(other.monetary) {
		return false
	}
	if s.hasPercentage && !s.percentage.Equal(other.percentage) {
		return false
	}
	return slices.Equal(s.saveables, other.saveables)
}

// StringWithSymbol renders every part, e.g. "$5.00, free dessert".
func (s Savings) StringWithSymbol(symbol string) string {
	var parts []string
	if s.hasMonetary {
		parts = append(parts, s.monetary.StringWithSymbol(symbol))
	}
	if s.hasPercentage {
		parts = append(parts, s.percentage.String())
	}
	for _, sv := range s.saveables {
		parts = append(parts, sv.value)
	}
	return strings.Join(parts, ", ")
}

func NewPureMonetarySavings(amount MonetaryAmount, saveables ...Saveable) PureMonetarySavings {
	return PureMonetarySavings{amount: amount, saveables: slices.Clone(saveables)}
}

// ConvertToPure expresses savings purely in money. A percentage is applied
// to original when one is given; without it the percentage counts as 0.00.
// Saveables are always carried over.
func ConvertToPure(s Savings, original *MonetaryAmount) PureMonetarySavings {
	p := PureMonetarySavings{saveables: slices.Clone(s.saveables)}
	switch {
	case s.hasMonetary:
		p.amount = s.monetary
	case s.hasPercentage && original != nil:
		p.amount = s.percentage.Of(*original)
	}
	return p
}

// Add sums the amounts and concatenates the saveables.
func (p PureMonetarySavings) Add(other PureMonetarySavings) PureMonetarySavings {
	saveables := make([]Saveable, 0, len(p.saveables)+len(other.saveables))
	saveables = append(saveables, p.saveables...)
	saveables = append(saveables, other.saveables...)
	return PureMonetarySavings{amount: p.amount.Add(other.amount), saveables: saveables}
}

func (p PureMonetarySavings) MonetaryAmount() MonetaryAmount { return p.amount }

func (p PureMonetarySavings) Saveables() []Saveable {
	return slices.Clone(p.saveables)
}

func (p PureMonetarySavings) Equal(other PureMonetarySavings) bool {
	return p.amount.Equal(other.amount) && slices.Equal(p.saveables, other.saveables)
}

// Savings turns the pure savings back into a coupon savings value.
func (p PureMonetarySavings) Savings() Savings {
	return MonetarySavings(p.amount, p.saveables...)
}
