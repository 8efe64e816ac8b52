// Package command implements the operations a user can run against the
// coupon stash.
//
// Every command validates its input before it touches the model, so a
// command either applies one mutation or fails without changing anything.
package command

import (
	"errors"

	"couponstash/internal/core"
	"couponstash/internal/model"
)

// Messages shared by several commands.
const (
	MessageInvalidCouponIndex    = "The coupon index provided is invalid"
	MessageCouponsListedOverview = "%d coupons listed!"
	MessageDuplicateCoupon       = "This coupon already exists in the coupon stash"
)

type (
	// Command is a parsed user request, ready to run against a Model.
	Command interface {
		Execute(m model.Model) (Result, error)
		// Equal reports whether other is the same kind of command with the
		// same arguments.
		Equal(other Command) bool
		// Word is the command word the user typed, e.g. "add".
		Word() string
	}

	// Result is what the user sees after a command runs.
	Result struct {
		Feedback string
		ShowHelp bool
		Exit     bool
	}

	// Error is a command failure whose message is shown to the user as is.
	Error struct {
		Message string
		Err     error
	}
)

func NewResult(feedback string) Result {
	return Result{Feedback: feedback}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// IsError reports whether err is a user-facing command failure.
func IsError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}

// Mutates reports whether running cmd can change the stored coupons, in
// which case the stash needs saving afterwards.
func Mutates(cmd Command) bool {
	switch cmd.(type) {
	case *AddCommand, *EditCommand, *UsedCommand, *DeleteCommand, *ClearCommand:
		return true
	default:
		return false
	}
}

// resolve maps a displayed index to its coupon.
func resolve(m model.Model, idx core.Index) (core.Coupon, error) {
	c, ok := m.ResolveFilteredIndex(idx)
	if !ok {
		return core.Coupon{}, &Error{Message: MessageInvalidCouponIndex}
	}
	return c, nil
}

// modelError turns a model failure into the message users see.
func modelError(err error) error {
	if errors.Is(err, model.ErrDuplicateCoupon) {
		return &Error{Message: MessageDuplicateCoupon, Err: err}
	}
	return err
}
