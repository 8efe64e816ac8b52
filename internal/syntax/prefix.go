// Package syntax defines the argument prefixes of the command language.
package syntax

// Prefix marks the start of an argument, e.g. "n/" in "n/Pizza Hut".
type Prefix string

const (
	PrefixName       Prefix = "n/"
	PrefixPhone      Prefix = "p/"
	PrefixEmail      Prefix = "m/"
	PrefixExpiryDate Prefix = "e/"
	PrefixSavings    Prefix = "s/"
	PrefixTag        Prefix = "t/"
	PrefixLimit      Prefix = "l/"
	PrefixMonthYear  Prefix = "my/"
)

// MoneyPrefix is the prefix for an original amount, which is the user's
// configured money symbol.
func MoneyPrefix(symbol string) Prefix {
	return Prefix(symbol)
}

func (p Prefix) String() string { return string(p) }
