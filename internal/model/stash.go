package model

import (
	"errors"
	"slices"

	"couponstash/internal/core"
)

var (
	ErrDuplicateCoupon = errors.New("operation would result in duplicate coupons")
	ErrCouponNotFound  = errors.New("coupon not found in stash")
)

// CouponStash is the authoritative, ordered list of coupons. Coupons are
// unique by value.
type CouponStash struct {
	coupons []core.Coupon
}

// NewCouponStash copies coupons, rejecting duplicates.
func NewCouponStash(coupons ...core.Coupon) (*CouponStash, error) {
	s := &CouponStash{}
	for _, c := range coupons {
		if err := s.Add(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *CouponStash) Coupons() []core.Coupon {
	return slices.Clone(s.coupons)
}

func (s *CouponStash) Len() int { return len(s.coupons) }

func (s *CouponStash) Has(c core.Coupon) bool {
	return s.indexOf(c) >= 0
}

func (s *CouponStash) Add(c core.Coupon) error {
	if s.Has(c) {
		return ErrDuplicateCoupon
	}
	s.coupons = append(s.coupons, c)
	return nil
}

// Set replaces target with edited in place. edited must not equal another
// coupon in the stash.
func (s *CouponStash) Set(target, edited core.Coupon) error {
	i := s.indexOf(target)
	if i < 0 {
		return ErrCouponNotFound
	}
	if !target.Equal(edited) && s.Has(edited) {
		return ErrDuplicateCoupon
	}
	s.coupons[i] = edited
	return nil
}

func (s *CouponStash) Remove(c core.Coupon) error {
	i := s.indexOf(c)
	if i < 0 {
		return ErrCouponNotFound
	}
	s.coupons = slices.Delete(s.coupons, i, i+1)
	return nil
}

func (s *CouponStash) Clear() {
	s.coupons = nil
}

func (s *CouponStash) Equal(other *CouponStash) bool {
	return slices.EqualFunc(s.coupons, other.coupons, core.Coupon.Equal)
}

func (s *CouponStash) indexOf(c core.Coupon) int {
	return slices.IndexFunc(s.coupons, c.Equal)
}
