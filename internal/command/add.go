package command

import (
	"fmt"

	"couponstash/internal/core"
	"couponstash/internal/model"
	"couponstash/internal/syntax"
)

const (
	AddCommandWord = "add"

	MessageAddSuccess = "New coupon added: %s"
)

var AddUsage = AddCommandWord + ": Adds a coupon to the coupon stash. " +
	"Parameters: " +
	syntax.PrefixName.String() + "NAME " +
	"[" + syntax.PrefixPhone.String() + "PHONE] " +
	"[" + syntax.PrefixEmail.String() + "EMAIL] " +
	syntax.PrefixExpiryDate.String() + "EXPIRY DATE " +
	syntax.PrefixSavings.String() + "SAVINGS... " +
	"[" + syntax.PrefixLimit.String() + "LIMIT] " +
	"[" + syntax.PrefixTag.String() + "TAG]...\n" +
	"Example: " + AddCommandWord + " " +
	syntax.PrefixName.String() + "Pizza Hut " +
	syntax.PrefixPhone.String() + "98765432 " +
	syntax.PrefixExpiryDate.String() + "30-08-2020 " +
	syntax.PrefixSavings.String() + "$5 " +
	syntax.PrefixSavings.String() + "free garlic bread " +
	syntax.PrefixLimit.String() + "3 " +
	syntax.PrefixTag.String() + "food"

type AddCommand struct {
	toAdd core.Coupon
}

func NewAddCommand(c core.Coupon) *AddCommand {
	return &AddCommand{toAdd: c}
}

func (c *AddCommand) Word() string { return AddCommandWord }

func (c *AddCommand) Execute(m model.Model) (Result, error) {
	if m.HasCoupon(c.toAdd) {
		return Result{}, &Error{Message: MessageDuplicateCoupon}
	}
	if err := m.AddCoupon(c.toAdd); err != nil {
		return Result{}, modelError(err)
	}
	return NewResult(fmt.Sprintf(MessageAddSuccess, c.toAdd.Name())), nil
}

func (c *AddCommand) Equal(other Command) bool {
	o, ok := other.(*AddCommand)
	return ok && c.toAdd.Equal(o.toAdd)
}
