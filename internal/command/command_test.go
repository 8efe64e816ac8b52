package command

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"couponstash/internal/core"
	"couponstash/internal/model"
	"couponstash/internal/testutil"
)

func typicalModel(t *testing.T) *model.Manager {
	t.Helper()
	stash, err := model.NewCouponStash(testutil.TypicalCoupons()...)
	if err != nil {
		t.Fatalf("build stash: %v", err)
	}
	return model.NewManager(stash, model.DefaultUserPrefs())
}

// copyModel returns a model holding the same coupons as m.
func copyModel(t *testing.T, m *model.Manager) *model.Manager {
	t.Helper()
	stash, err := model.NewCouponStash(m.Coupons()...)
	if err != nil {
		t.Fatalf("copy stash: %v", err)
	}
	return model.NewManager(stash, m.UserPrefs())
}

// showCouponAtIndex filters m down to the coupon at idx by the first word of
// its name.
func showCouponAtIndex(t *testing.T, m *model.Manager, idx core.Index) {
	t.Helper()
	c, ok := m.ResolveFilteredIndex(idx)
	if !ok {
		t.Fatalf("index %d out of range", idx.OneBased())
	}
	first := strings.Fields(c.Name().String())[0]
	m.UpdateFilteredCouponList(model.NameContainsKeywords(first))
	if len(m.FilteredCoupons()) != 1 {
		t.Fatalf("expected one displayed coupon")
	}
}

func assertCommandSuccess(t *testing.T, cmd Command, m *model.Manager, wantFeedback string, want *model.Manager) {
	t.Helper()
	result, err := cmd.Execute(m)
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if result.Feedback != wantFeedback {
		t.Fatalf("Feedback = %q, want %q", result.Feedback, wantFeedback)
	}
	if !m.Stash().Equal(want.Stash()) {
		t.Fatalf("stash after command does not match expected stash")
	}
	if !slices.EqualFunc(m.FilteredCoupons(), want.FilteredCoupons(), core.Coupon.Equal) {
		t.Fatalf("displayed coupons after command do not match expected")
	}
}

// assertCommandFailure checks the message and that nothing changed.
func assertCommandFailure(t *testing.T, cmd Command, m *model.Manager, wantMessage string) {
	t.Helper()
	before := copyModel(t, m)
	filteredBefore := m.FilteredCoupons()

	_, err := cmd.Execute(m)
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("Execute() error = %v, want *Error", err)
	}
	if ce.Message != wantMessage {
		t.Fatalf("message = %q, want %q", ce.Message, wantMessage)
	}
	if !m.Stash().Equal(before.Stash()) {
		t.Fatalf("failed command changed the stash")
	}
	if !slices.EqualFunc(m.FilteredCoupons(), filteredBefore, core.Coupon.Equal) {
		t.Fatalf("failed command changed the displayed coupons")
	}
}

func TestMutates(t *testing.T) {
	mutating := []Command{
		NewAddCommand(testutil.Alice), NewEditCommand(testutil.FirstIndex, EditCouponDescriptor{}),
		NewUsedCommand(testutil.FirstIndex, nil), NewDeleteCommand(testutil.FirstIndex), &ClearCommand{},
	}
	for _, cmd := range mutating {
		if !Mutates(cmd) {
			t.Errorf("%s should mutate", cmd.Word())
		}
	}
	readOnly := []Command{
		NewFindCommand("a"), &ListCommand{}, NewGoToCommand("1-2020"), NewSortCommand(SortByName),
		&SavedCommand{}, &HelpCommand{}, &ExitCommand{},
	}
	for _, cmd := range readOnly {
		if Mutates(cmd) {
			t.Errorf("%s should not mutate", cmd.Word())
		}
	}
}

func TestIsError(t *testing.T) {
	if !IsError(&Error{Message: MessageInvalidCouponIndex}) {
		t.Fatalf("expected *Error to be recognised")
	}
	if IsError(errors.New("disk full")) {
		t.Fatalf("plain errors are not command errors")
	}
}
