package testutil

import (
	"couponstash/internal/core"
)

var (
	FirstIndex  = core.MustIndex(1)
	SecondIndex = core.MustIndex(2)
	ThirdIndex  = core.MustIndex(3)
)

// Typical coupons, one per savings kind.
var (
	Alice = NewCouponBuilder().WithName("Alice Pauline").WithPhone("94351253").
		WithEmail("alice@example.com").WithExpiryDate("31-12-2020").
		WithSavings(core.MonetarySavings(Money("5"))).WithTags("friends").Build()
	Benson = NewCouponBuilder().WithName("Benson Meier").WithPhone("98765432").
		WithEmail("johnd@example.com").WithExpiryDate("30-11-2020").WithUsage("1").
		WithSavings(core.PercentageSavings(Percent("10"))).WithTags("owesMoney", "friends").Build()
	Carl = NewCouponBuilder().WithName("Carl Kurz").WithPhone("95352563").
		WithEmail("heinz@example.com").WithExpiryDate("1-1-2021").WithLimit("2").
		WithSavings(must(core.NewSavings(nil, nil, []core.Saveable{Saveable("free dessert")}))).Build()
	Daniel = NewCouponBuilder().WithName("Daniel Meier").WithPhone("87652533").
		WithEmail("cornelia@example.com").WithExpiryDate("15-2-2021").
		WithSavings(core.MonetarySavings(Money("2.50"), Saveable("free drink"))).WithTags("friends").Build()
	Elle = NewCouponBuilder().WithName("Elle Meyer").WithPhone("9482224").
		WithEmail("werner@example.com").WithExpiryDate("28-2-2021").WithUsage("3").WithLimit("3").
		WithSavings(core.PercentageSavings(Percent("25"), Saveable("free parking"))).Build()
)

// TypicalCoupons returns the fixtures in stash order.
func TypicalCoupons() []core.Coupon {
	return []core.Coupon{Alice, Benson, Carl, Daniel, Elle}
}
