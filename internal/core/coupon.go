package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

var ErrInvalidIndex = errors.New(MessageInvalidIndex)

type (
	// TagSet is an ordered set of tags, sorted by name.
	TagSet struct {
		tags []Tag
	}

	// CouponFields lists every part of a coupon. It is how coupons are
	// built and how copies with changes are made.
	CouponFields struct {
		Name       Name
		Phone      Phone
		Email      Email
		ExpiryDate ExpiryDate
		Usage      Usage
		Limit      Limit
		Savings    Savings
		Tags       TagSet
		SavingsMap DateSavingsSumMap
	}

	// Coupon is immutable. Changes produce a new Coupon that replaces the
	// old one in the stash.
	Coupon struct {
		f CouponFields
	}

	// Index is a one-based position in the displayed coupon list.
	Index struct {
		zeroBased int
	}
)

func NewTagSet(tags ...Tag) TagSet {
	out := slices.Clone(tags)
	slices.SortFunc(out, func(a, b Tag) int { return strings.Compare(a.name, b.name) })
	return TagSet{tags: slices.Compact(out)}
}

func (s TagSet) Contains(t Tag) bool {
	_, found := slices.BinarySearchFunc(s.tags, t, func(a, b Tag) int { return strings.Compare(a.name, b.name) })
	return found
}

func (s TagSet) Len() int    { return len(s.tags) }
func (s TagSet) Tags() []Tag { return slices.Clone(s.tags) }

func (s TagSet) Equal(o TagSet) bool {
	return slices.Equal(s.tags, o.tags)
}

func (s TagSet) String() string {
	names := make([]string, len(s.tags))
	for i, t := range s.tags {
		names[i] = "[" + t.name + "]"
	}
	return strings.Join(names, "")
}

// NewCoupon copies the savings map so the coupon owns its state.
func NewCoupon(f CouponFields) Coupon {
	f.SavingsMap = f.SavingsMap.Clone()
	return Coupon{f: f}
}

// Fields returns a copy of every part of the coupon.
func (c Coupon) Fields() CouponFields {
	f := c.f
	f.SavingsMap = c.f.SavingsMap.Clone()
	return f
}

func (c Coupon) Name() Name             { return c.f.Name }
func (c Coupon) Phone() Phone           { return c.f.Phone }
func (c Coupon) Email() Email           { return c.f.Email }
func (c Coupon) ExpiryDate() ExpiryDate { return c.f.ExpiryDate }
func (c Coupon) Usage() Usage           { return c.f.Usage }
func (c Coupon) Limit() Limit           { return c.f.Limit }
func (c Coupon) Savings() Savings       { return c.f.Savings }
func (c Coupon) Tags() TagSet           { return c.f.Tags }

// SavingsMap returns the savings earned on each day the coupon was used.
func (c Coupon) SavingsMap() DateSavingsSumMap { return c.f.SavingsMap.Clone() }

func (c Coupon) HasReachedLimit() bool {
	return c.f.Limit.IsReachedBy(c.f.Usage)
}

func (c Coupon) WithUsage(u Usage) Coupon {
	f := c.Fields()
	f.Usage = u
	return Coupon{f: f}
}

func (c Coupon) WithSavings(s Savings) Coupon {
	f := c.Fields()
	f.Savings = s
	return Coupon{f: f}
}

func (c Coupon) IncreaseUsageByOne() Coupon {
	return c.WithUsage(c.f.Usage.Increase())
}

// WithSavingsRecorded adds s to the savings earned on day.
func (c Coupon) WithSavingsRecorded(day Date, s PureMonetarySavings) Coupon {
	f := c.Fields()
	f.SavingsMap.Add(day, s)
	return Coupon{f: f}
}

// Equal compares every field. Coupons have no identity beyond their values.
func (c Coupon) Equal(o Coupon) bool {
	return c.f.Name == o.f.Name &&
		c.f.Phone == o.f.Phone &&
		c.f.Email == o.f.Email &&
		c.f.ExpiryDate == o.f.ExpiryDate &&
		c.f.Usage == o.f.Usage &&
		c.f.Limit == o.f.Limit &&
		c.f.Savings.Equal(o.f.Savings) &&
		c.f.Tags.Equal(o.f.Tags) &&
		c.f.SavingsMap.Equal(o.f.SavingsMap)
}

func (c Coupon) String() string { return c.StringWithSymbol("$") }

// StringWithSymbol renders the coupon with monetary savings prefixed by symbol.
func (c Coupon) StringWithSymbol(symbol string) string {
	var b strings.Builder
	b.WriteString(c.f.Name.String())
	if !c.f.Phone.IsEmpty() {
		fmt.Fprintf(&b, " Phone: %s", c.f.Phone)
	}
	if !c.f.Email.IsEmpty() {
		fmt.Fprintf(&b, " Email: %s", c.f.Email)
	}
	fmt.Fprintf(&b, " Expiry: %s Usage: %s/%s Savings: %s", c.f.ExpiryDate, c.f.Usage, c.f.Limit, c.f.Savings.StringWithSymbol(symbol))
	if c.f.Tags.Len() > 0 {
		fmt.Fprintf(&b, " Tags: %s", c.f.Tags)
	}
	return b.String()
}

func IndexFromOneBased(n int) (Index, error) {
	if n < 1 {
		return Index{}, ErrInvalidIndex
	}
	return Index{zeroBased: n - 1}, nil
}

// MustIndex is IndexFromOneBased for constant, known-good positions.
func MustIndex(n int) Index {
	idx, err := IndexFromOneBased(n)
	if err != nil {
		panic(err)
	}
	return idx
}

func (i Index) ZeroBased() int { return i.zeroBased }
func (i Index) OneBased() int  { return i.zeroBased + 1 }
