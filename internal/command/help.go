package command

import (
	"strings"

	"couponstash/internal/model"
)

const (
	HelpCommandWord = "help"
	ExitCommandWord = "exit"

	MessageExitAcknowledgement = "Exiting Coupon Stash as requested ..."
)

var (
	HelpUsage = HelpCommandWord + ": Shows program usage instructions.\n" +
		"Example: " + HelpCommandWord

	ExitUsage = ExitCommandWord + ": Exits the program.\n" +
		"Example: " + ExitCommandWord
)

// AllUsages lists the usage of every command, in the order help shows them.
func AllUsages(moneySymbol string) []string {
	return []string{
		AddUsage, EditUsage, UsedUsage(moneySymbol), DeleteUsage, FindUsage, ListUsage,
		SortUsage, GoToUsage, SavedUsage, ClearUsage, HelpUsage, ExitUsage,
	}
}

type HelpCommand struct{}

func (c *HelpCommand) Word() string { return HelpCommandWord }

func (c *HelpCommand) Execute(m model.Model) (Result, error) {
	return Result{
		Feedback: strings.Join(AllUsages(m.UserPrefs().MoneySymbol), "\n\n"),
		ShowHelp: true,
	}, nil
}

func (c *HelpCommand) Equal(other Command) bool {
	_, ok := other.(*HelpCommand)
	return ok
}

type ExitCommand struct{}

func (c *ExitCommand) Word() string { return ExitCommandWord }

func (c *ExitCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: MessageExitAcknowledgement, Exit: true}, nil
}

func (c *ExitCommand) Equal(other Command) bool {
	_, ok := other.(*ExitCommand)
	return ok
}
