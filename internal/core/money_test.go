package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseMonetaryAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1", "1.00", true},
		{"1.0", "1.00", true},
		{"1.23", "1.23", true},
		{"1,23", "1.23", true},
		{"0", "0.00", true},
		{" 2.50 ", "2.50", true},
		{"1.005", "", false},
		{"-1", "", false},
		{"+1", "", false},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"1e3", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseMonetaryAmount(tc.in)
		if tc.ok {
			if err != nil || got.String() != tc.out {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMonetaryAmountFormatting(t *testing.T) {
	m, err := ParseMonetaryAmount("12.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.StringWithSymbol("$"); got != "$12.50" {
		t.Fatalf("expected $12.50, got %s", got)
	}
	var zero MonetaryAmount
	if got := zero.String(); got != "0.00" {
		t.Fatalf("zero value should render 0.00, got %s", got)
	}
	a, _ := ParseMonetaryAmount("10.50")
	b, _ := ParseMonetaryAmount("0.25")
	if got := a.Add(b).String(); got != "10.75" {
		t.Fatalf("expected 10.75, got %s", got)
	}
}

func TestNewMonetaryAmountRejectsNegative(t *testing.T) {
	if _, err := NewMonetaryAmount(decimal.NewFromInt(-1)); err == nil {
		t.Fatalf("expected error for negative amount")
	}
	m, err := NewMonetaryAmount(decimal.RequireFromString("3.456"))
	if err != nil || m.String() != "3.46" {
		t.Fatalf("expected 3.46 after rounding, got %s (err=%v)", m, err)
	}
}

func TestParsePercentageAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"10", "10%", true},
		{"12.5%", "12.5%", true},
		{"100", "100%", true},
		{"0", "", false},
		{"100.01", "", false},
		{"-5", "", false},
		{"ten", "", false},
	}
	for _, tc := range cases {
		got, err := ParsePercentageAmount(tc.in)
		if tc.ok {
			if err != nil || got.String() != tc.out {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestPercentageOf(t *testing.T) {
	cases := []struct {
		pct, amount, out string
	}{
		{"10", "10", "1.00"},
		{"25", "12.34", "3.09"},
		{"12.5", "80", "10.00"},
		{"100", "7.77", "7.77"},
	}
	for _, tc := range cases {
		p, _ := ParsePercentageAmount(tc.pct)
		a, _ := ParseMonetaryAmount(tc.amount)
		if got := p.Of(a).String(); got != tc.out {
			t.Fatalf("%s%% of %s expected %s, got %s", tc.pct, tc.amount, tc.out, got)
		}
	}
}
