package command

import (
	"fmt"
	"strings"

	"couponstash/internal/model"
	"couponstash/internal/summary"
)

const SavedCommandWord = "saved"

var SavedUsage = SavedCommandWord + ": Shows how much has been saved by using coupons, day by day.\n" +
	"Example: " + SavedCommandWord

// SavedCommand shows the savings summary over every coupon, whether or not
// it is currently displayed.
type SavedCommand struct{}

func (c *SavedCommand) Word() string { return SavedCommandWord }

func (c *SavedCommand) Execute(m model.Model) (Result, error) {
	report := summary.Build(m.Coupons(), m.UserPrefs().MoneySymbol)

	var b strings.Builder
	if err := summary.RenderBarChart(&b, report, summary.DefaultChartWidth); err != nil {
		return Result{}, fmt.Errorf("render savings summary: %w", err)
	}
	return NewResult(strings.TrimRight(b.String(), "\n")), nil
}

func (c *SavedCommand) Equal(other Command) bool {
	_, ok := other.(*SavedCommand)
	return ok
}
