package command

import (
	"fmt"

	"couponstash/internal/model"
	"couponstash/internal/syntax"
)

const (
	GoToCommandWord = "goto"

	MessageGoToSuccess = "Showing Calendar on %s"
)

var GoToUsage = GoToCommandWord + ": Shows the specified month and year on the calendar.\n" +
	"Parameters: " + syntax.PrefixMonthYear.String() + "MONTH-YEAR\n" +
	"Example: " + GoToCommandWord + " " + syntax.PrefixMonthYear.String() + "12-2020"

// GoToCommand moves the calendar to a month. value has already been
// checked to be a valid month-year.
type GoToCommand struct {
	value string
}

func NewGoToCommand(value string) *GoToCommand {
	return &GoToCommand{value: value}
}

func (c *GoToCommand) Word() string { return GoToCommandWord }

func (c *GoToCommand) Execute(m model.Model) (Result, error) {
	if err := m.UpdateMonthView(c.value); err != nil {
		return Result{}, &Error{Message: err.Error(), Err: err}
	}
	return NewResult(fmt.Sprintf(MessageGoToSuccess, c.value)), nil
}

func (c *GoToCommand) Equal(other Command) bool {
	o, ok := other.(*GoToCommand)
	return ok && c.value == o.value
}
