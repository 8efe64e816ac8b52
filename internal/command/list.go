package command

import (
	"fmt"
	"slices"

	"couponstash/internal/core"
	"couponstash/internal/model"
	"couponstash/internal/syntax"
)

const (
	FindCommandWord  = "find"
	ListCommandWord  = "list"
	ClearCommandWord = "clear"
	SortCommandWord  = "sort"

	MessageListSuccess  = "Listed all coupons"
	MessageClearSuccess = "Coupon stash has been cleared!"
	MessageSortSuccess  = "Coupons sorted by %s"
)

var (
	FindUsage = FindCommandWord + ": Finds all coupons whose names contain any of " +
		"the specified keywords (case-insensitive) or that carry any of the specified tags, " +
		"and displays them as a list with index numbers.\n" +
		"Parameters: [KEYWORD]... [" + syntax.PrefixTag.String() + "TAG]...\n" +
		"Example: " + FindCommandWord + " pizza burger " + syntax.PrefixTag.String() + "friends"

	ListUsage = ListCommandWord + ": Lists all coupons.\n" +
		"Example: " + ListCommandWord

	ClearUsage = ClearCommandWord + ": Deletes every coupon in the coupon stash.\n" +
		"Example: " + ClearCommandWord

	SortUsage = SortCommandWord + ": Sorts the displayed coupons by name or by expiry date.\n" +
		"Parameters: " + syntax.PrefixName.String() + " or " + syntax.PrefixExpiryDate.String() + "\n" +
		"Example: " + SortCommandWord + " " + syntax.PrefixExpiryDate.String()
)

// FindCommand shows the coupons whose name contains any keyword or that
// carry any of the tags.
type FindCommand struct {
	keywords []string
	tags     core.TagSet
}

func NewFindCommand(keywords ...string) *FindCommand {
	return &FindCommand{keywords: slices.Clone(keywords)}
}

// WithTags also matches coupons tagged with any of tags.
func (c *FindCommand) WithTags(tags core.TagSet) *FindCommand {
	c.tags = tags
	return c
}

func (c *FindCommand) Word() string { return FindCommandWord }

func (c *FindCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredCouponList(model.AnyOf(
		model.NameContainsKeywords(c.keywords...),
		model.HasAnyTag(c.tags.Tags()...),
	))
	return NewResult(fmt.Sprintf(MessageCouponsListedOverview, len(m.FilteredCoupons()))), nil
}

func (c *FindCommand) Equal(other Command) bool {
	o, ok := other.(*FindCommand)
	return ok && slices.Equal(c.keywords, o.keywords) && c.tags.Equal(o.tags)
}

type ListCommand struct{}

func (c *ListCommand) Word() string { return ListCommandWord }

func (c *ListCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredCouponList(model.ShowAll)
	return NewResult(MessageListSuccess), nil
}

func (c *ListCommand) Equal(other Command) bool {
	_, ok := other.(*ListCommand)
	return ok
}

type ClearCommand struct{}

func (c *ClearCommand) Word() string { return ClearCommandWord }

func (c *ClearCommand) Execute(m model.Model) (Result, error) {
	m.ClearCoupons()
	return NewResult(MessageClearSuccess), nil
}

func (c *ClearCommand) Equal(other Command) bool {
	_, ok := other.(*ClearCommand)
	return ok
}

// SortField selects the ordering of the displayed coupons.
type SortField int

const (
	SortByName SortField = iota
	SortByExpiryDate
)

func (f SortField) String() string {
	if f == SortByExpiryDate {
		return "expiry date"
	}
	return "name"
}

type SortCommand struct {
	field SortField
}

func NewSortCommand(field SortField) *SortCommand {
	return &SortCommand{field: field}
}

func (c *SortCommand) Word() string { return SortCommandWord }

func (c *SortCommand) Execute(m model.Model) (Result, error) {
	less := model.ByName
	if c.field == SortByExpiryDate {
		less = model.ByExpiryDate
	}
	m.SortFilteredCouponList(less)
	return NewResult(fmt.Sprintf(MessageSortSuccess, c.field)), nil
}

func (c *SortCommand) Equal(other Command) bool {
	o, ok := other.(*SortCommand)
	return ok && c.field == o.field
}
