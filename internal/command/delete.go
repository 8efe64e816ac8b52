package command

import (
	"fmt"

	"couponstash/internal/core"
	"couponstash/internal/model"
)

const (
	DeleteCommandWord = "delete"

	MessageDeleteSuccess = "Deleted Coupon: %s"
)

var DeleteUsage = DeleteCommandWord + ": Deletes the coupon identified by the index number used in the displayed coupon list.\n" +
	"Parameters: INDEX (must be a positive integer)\n" +
	"Example: " + DeleteCommandWord + " 1"

type DeleteCommand struct {
	index core.Index
}

func NewDeleteCommand(index core.Index) *DeleteCommand {
	return &DeleteCommand{index: index}
}

func (c *DeleteCommand) Word() string { return DeleteCommandWord }

func (c *DeleteCommand) Execute(m model.Model) (Result, error) {
	target, err := resolve(m, c.index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteCoupon(target); err != nil {
		return Result{}, modelError(err)
	}
	return NewResult(fmt.Sprintf(MessageDeleteSuccess, target.Name())), nil
}

func (c *DeleteCommand) Equal(other Command) bool {
	o, ok := other.(*DeleteCommand)
	return ok && c.index == o.index
}
