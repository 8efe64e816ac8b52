package command

import (
	"fmt"
	"time"

	"couponstash/internal/core"
	"couponstash/internal/model"
	"couponstash/internal/syntax"
)

const (
	UsedCommandWord = "used"

	MessageUsedSuccess       = "Used Coupon: %s"
	MessageUsageLimitReached = "Usage limit reached! If you wish to use this coupon more, increase the limit with the edit command."
)

// UsedUsage documents the command for a given money symbol, which is the
// prefix of the original amount.
func UsedUsage(moneySymbol string) string {
	return UsedCommandWord + ": Increases the usage of the coupon identified " +
		"by the index number used in the displayed coupon list by one. " +
		"For coupons with percentage savings, the original amount spent can be given " +
		"to record how much was saved.\n" +
		"Parameters: INDEX (must be a positive integer) " +
		"[" + syntax.MoneyPrefix(moneySymbol).String() + "ORIGINAL AMOUNT]\n" +
		"Example: " + UsedCommandWord + " 1 " + syntax.MoneyPrefix(moneySymbol).String() + "100"
}

type UsedCommand struct {
	index    core.Index
	original *core.MonetaryAmount
	now      func() time.Time
}

// NewUsedCommand marks the coupon at index as used. original may be nil.
func NewUsedCommand(index core.Index, original *core.MonetaryAmount) *UsedCommand {
	return &UsedCommand{index: index, original: original, now: time.Now}
}

// WithClock sets the clock that decides on which day the savings are
// recorded.
func (c *UsedCommand) WithClock(now func() time.Time) *UsedCommand {
	c.now = now
	return c
}

func (c *UsedCommand) Word() string { return UsedCommandWord }

// Execute increases the coupon's usage and records what this use saved on
// today's date. When an original amount is given for a percentage coupon,
// the coupon's savings are replaced by their pure monetary equivalent.
func (c *UsedCommand) Execute(m model.Model) (Result, error) {
	target, err := resolve(m, c.index)
	if err != nil {
		return Result{}, err
	}
	if target.HasReachedLimit() {
		return Result{}, &Error{Message: MessageUsageLimitReached}
	}

	pure := core.ConvertToPure(target.Savings(), c.original)
	used := target.IncreaseUsageByOne()
	if c.original != nil && target.Savings().HasPercentage() {
		used = used.WithSavings(pure.Savings())
	}
	used = used.WithSavingsRecorded(core.DateOf(c.now()), pure)

	if err := m.SetCoupon(target, used); err != nil {
		return Result{}, modelError(err)
	}
	return NewResult(fmt.Sprintf(MessageUsedSuccess, used.Name())), nil
}

// Equal ignores the clock.
func (c *UsedCommand) Equal(other Command) bool {
	o, ok := other.(*UsedCommand)
	if !ok || c.index != o.index {
		return false
	}
	if c.original == nil || o.original == nil {
		return c.original == nil && o.original == nil
	}
	return c.original.Equal(*o.original)
}
