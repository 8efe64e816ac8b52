// Package testutil holds builders and fixtures shared by tests.
package testutil

import (
	"couponstash/internal/core"
)

const (
	DefaultName       = "Alice Pauline"
	DefaultPhone      = "85355255"
	DefaultEmail      = "alice@gmail.com"
	DefaultExpiryDate = "30-08-2020"
	DefaultUsage      = "0"
	DefaultLimit      = "0"
	DefaultSavings    = "5"
)

// CouponBuilder builds coupons for tests. Invalid field values panic.
type CouponBuilder struct {
	f core.CouponFields
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{f: core.CouponFields{
		Name:       must(core.NewName(DefaultName)),
		Phone:      must(core.NewPhone(DefaultPhone)),
		Email:      must(core.NewEmail(DefaultEmail)),
		ExpiryDate: must(core.NewExpiryDate(DefaultExpiryDate)),
		Usage:      must(core.ParseUsage(DefaultUsage)),
		Limit:      must(core.ParseLimit(DefaultLimit)),
		Savings:    core.MonetarySavings(Money(DefaultSavings)),
		Tags:       core.NewTagSet(),
	}}
}

// CouponBuilderFrom starts from every field of c.
func CouponBuilderFrom(c core.Coupon) *CouponBuilder {
	return &CouponBuilder{f: c.Fields()}
}

func (b *CouponBuilder) WithName(name string) *CouponBuilder {
	b.f.Name = must(core.NewName(name))
	return b
}

func (b *CouponBuilder) WithPhone(phone string) *CouponBuilder {
	b.f.Phone = must(core.NewPhone(phone))
	return b
}

func (b *CouponBuilder) WithEmail(email string) *CouponBuilder {
	b.f.Email = must(core.NewEmail(email))
	return b
}

func (b *CouponBuilder) WithExpiryDate(expiry string) *CouponBuilder {
	b.f.ExpiryDate = must(core.NewExpiryDate(expiry))
	return b
}

func (b *CouponBuilder) WithUsage(usage string) *CouponBuilder {
	b.f.Usage = must(core.ParseUsage(usage))
	return b
}

func (b *CouponBuilder) WithLimit(limit string) *CouponBuilder {
	b.f.Limit = must(core.ParseLimit(limit))
	return b
}

// WithTags replaces the tag set; no arguments clears it.
func (b *CouponBuilder) WithTags(tags ...string) *CouponBuilder {
	b.f.Tags = Tags(tags...)
	return b
}

func (b *CouponBuilder) WithSavings(s core.Savings) *CouponBuilder {
	b.f.Savings = s
	return b
}

// WithSavingsRecorded adds savings earned on day to the coupon's history.
func (b *CouponBuilder) WithSavingsRecorded(day core.Date, s core.PureMonetarySavings) *CouponBuilder {
	b.f.SavingsMap.Add(day, s)
	return b
}

func (b *CouponBuilder) Build() core.Coupon {
	return core.NewCoupon(b.f)
}

// Money parses a plain amount such as "5.50".
func Money(s string) core.MonetaryAmount {
	return must(core.ParseMonetaryAmount(s))
}

// Percent parses a percentage such as "10" or "12.5%".
func Percent(s string) core.PercentageAmount {
	return must(core.ParsePercentageAmount(s))
}

func Saveable(s string) core.Saveable {
	return must(core.NewSaveable(s))
}

func Tags(names ...string) core.TagSet {
	tags := make([]core.Tag, len(names))
	for i, n := range names {
		tags[i] = must(core.NewTag(n))
	}
	return core.NewTagSet(tags...)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
