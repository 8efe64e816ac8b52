package command

import (
	"fmt"

	"couponstash/internal/core"
	"couponstash/internal/model"
	"couponstash/internal/syntax"
)

const (
	EditCommandWord = "edit"

	MessageEditSuccess = "Edited Coupon: %s"
	MessageNotEdited   = "At least one field to edit must be provided."
)

var EditUsage = EditCommandWord + ": Edits the details of the coupon identified " +
	"by the index number used in the displayed coupon list. " +
	"Existing values will be overwritten by the input values.\n" +
	"Parameters: INDEX (must be a positive integer) " +
	"[" + syntax.PrefixName.String() + "NAME] " +
	"[" + syntax.PrefixPhone.String() + "PHONE] " +
	"[" + syntax.PrefixEmail.String() + "EMAIL] " +
	"[" + syntax.PrefixExpiryDate.String() + "EXPIRY DATE] " +
	"[" + syntax.PrefixSavings.String() + "SAVINGS]... " +
	"[" + syntax.PrefixLimit.String() + "LIMIT] " +
	"[" + syntax.PrefixTag.String() + "TAG]...\n" +
	"Example: " + EditCommandWord + " 1 " +
	syntax.PrefixPhone.String() + "91234567 " +
	syntax.PrefixSavings.String() + "10%"

// EditCouponDescriptor holds the fields to change. Nil fields keep the
// coupon's current value.
type EditCouponDescriptor struct {
	Name       *core.Name
	Phone      *core.Phone
	Email      *core.Email
	ExpiryDate *core.ExpiryDate
	Savings    *core.Savings
	Limit      *core.Limit
	Tags       *core.TagSet
}

func (d EditCouponDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.ExpiryDate != nil ||
		d.Savings != nil || d.Limit != nil || d.Tags != nil
}

// Apply returns c with every set field replaced. Usage and savings history
// are never edited.
func (d EditCouponDescriptor) Apply(c core.Coupon) core.Coupon {
	f := c.Fields()
	if d.Name != nil {
		f.Name = *d.Name
	}
	if d.Phone != nil {
		f.Phone = *d.Phone
	}
	if d.Email != nil {
		f.Email = *d.Email
	}
	if d.ExpiryDate != nil {
		f.ExpiryDate = *d.ExpiryDate
	}
	if d.Savings != nil {
		f.Savings = *d.Savings
	}
	if d.Limit != nil {
		f.Limit = *d.Limit
	}
	if d.Tags != nil {
		f.Tags = *d.Tags
	}
	return core.NewCoupon(f)
}

func (d EditCouponDescriptor) Equal(o EditCouponDescriptor) bool {
	return equalPtr(d.Name, o.Name, func(a, b core.Name) bool { return a == b }) &&
		equalPtr(d.Phone, o.Phone, func(a, b core.Phone) bool { return a == b }) &&
		equalPtr(d.Email, o.Email, func(a, b core.Email) bool { return a == b }) &&
		equalPtr(d.ExpiryDate, o.ExpiryDate, func(a, b core.ExpiryDate) bool { return a == b }) &&
		equalPtr(d.Savings, o.Savings, core.Savings.Equal) &&
		equalPtr(d.Limit, o.Limit, func(a, b core.Limit) bool { return a == b }) &&
		equalPtr(d.Tags, o.Tags, core.TagSet.Equal)
}

func equalPtr[T any](a, b *T, eq func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return eq(*a, *b)
}

type EditCommand struct {
	index core.Index
	desc  EditCouponDescriptor
}

func NewEditCommand(index core.Index, desc EditCouponDescriptor) *EditCommand {
	return &EditCommand{index: index, desc: desc}
}

func (c *EditCommand) Word() string { return EditCommandWord }

func (c *EditCommand) Execute(m model.Model) (Result, error) {
	target, err := resolve(m, c.index)
	if err != nil {
		return Result{}, err
	}
	if !c.desc.IsAnyFieldEdited() {
		return Result{}, &Error{Message: MessageNotEdited}
	}

	edited := c.desc.Apply(target)
	if !target.Equal(edited) && m.HasCoupon(edited) {
		return Result{}, &Error{Message: MessageDuplicateCoupon}
	}
	if err := m.SetCoupon(target, edited); err != nil {
		return Result{}, modelError(err)
	}
	m.UpdateFilteredCouponList(model.ShowAll)
	return NewResult(fmt.Sprintf(MessageEditSuccess, edited.Name())), nil
}

func (c *EditCommand) Equal(other Command) bool {
	o, ok := other.(*EditCommand)
	return ok && c.index == o.index && c.desc.Equal(o.desc)
}
