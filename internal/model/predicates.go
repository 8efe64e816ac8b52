package model

import (
	"strings"

	"couponstash/internal/core"
)

type (
	// Predicate selects which coupons appear in the filtered view.
	Predicate func(core.Coupon) bool

	// Less orders the filtered view. A nil Less keeps stash order.
	Less func(a, b core.Coupon) bool
)

func ShowAll(core.Coupon) bool { return true }

// NameContainsKeywords matches coupons whose name has any keyword as a
// whole word, ignoring case.
func NameContainsKeywords(keywords ...string) Predicate {
	return func(c core.Coupon) bool {
		words := strings.Fields(c.Name().String())
		for _, k := range keywords {
			for _, w := range words {
				if strings.EqualFold(w, k) {
					return true
				}
			}
		}
		return false
	}
}

func HasAnyTag(tags ...core.Tag) Predicate {
	return func(c core.Coupon) bool {
		for _, t := range tags {
			if c.Tags().Contains(t) {
				return true
			}
		}
		return false
	}
}

// AnyOf matches coupons selected by at least one of preds.
func AnyOf(preds ...Predicate) Predicate {
	return func(c core.Coupon) bool {
		for _, p := range preds {
			if p(c) {
				return true
			}
		}
		return false
	}
}

func ByName(a, b core.Coupon) bool {
	return strings.ToLower(a.Name().String()) < strings.ToLower(b.Name().String())
}

func ByExpiryDate(a, b core.Coupon) bool {
	return a.ExpiryDate().Date().Before(b.ExpiryDate().Date())
}
