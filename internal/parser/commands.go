package parser

import (
	"strings"

	"couponstash/internal/command"
	"couponstash/internal/core"
	"couponstash/internal/syntax"
)

var couponPrefixes = []syntax.Prefix{
	syntax.PrefixName,
	syntax.PrefixPhone,
	syntax.PrefixEmail,
	syntax.PrefixExpiryDate,
	syntax.PrefixSavings,
	syntax.PrefixLimit,
	syntax.PrefixTag,
}

func parseAdd(args, moneySymbol string) (command.Command, error) {
	argMap := Tokenize(args, couponPrefixes...)
	if argMap.Preamble() != "" ||
		!argMap.HasAll(syntax.PrefixName, syntax.PrefixExpiryDate, syntax.PrefixSavings) {
		return nil, invalidFormat(command.AddUsage)
	}

	var (
		f   core.CouponFields
		err error
	)
	value := func(p syntax.Prefix) string {
		v, _ := argMap.Value(p)
		return v
	}

	if f.Name, err = ParseName(value(syntax.PrefixName)); err != nil {
		return nil, err
	}
	if argMap.Has(syntax.PrefixPhone) {
		if f.Phone, err = ParsePhone(value(syntax.PrefixPhone)); err != nil {
			return nil, err
		}
	}
	if argMap.Has(syntax.PrefixEmail) {
		if f.Email, err = ParseEmail(value(syntax.PrefixEmail)); err != nil {
			return nil, err
		}
	}
	if f.ExpiryDate, err = ParseExpiryDate(value(syntax.PrefixExpiryDate)); err != nil {
		return nil, err
	}
	if f.Savings, err = ParseSavings(argMap.AllValues(syntax.PrefixSavings), moneySymbol); err != nil {
		return nil, err
	}
	if argMap.Has(syntax.PrefixLimit) {
		if f.Limit, err = ParseLimit(value(syntax.PrefixLimit)); err != nil {
			return nil, err
		}
	}
	if f.Tags, err = ParseTags(argMap.AllValues(syntax.PrefixTag)); err != nil {
		return nil, err
	}

	return command.NewAddCommand(core.NewCoupon(f)), nil
}

func parseEdit(args, moneySymbol string) (command.Command, error) {
	argMap := Tokenize(args, couponPrefixes...)

	index, err := ParseIndex(argMap.Preamble())
	if err != nil {
		return nil, invalidFormat(command.EditUsage)
	}

	var desc command.EditCouponDescriptor
	if v, ok := argMap.Value(syntax.PrefixName); ok {
		name, err := ParseName(v)
		if err != nil {
			return nil, err
		}
		desc.Name = &name
	}
	if v, ok := argMap.Value(syntax.PrefixPhone); ok {
		phone, err := ParsePhone(v)
		if err != nil {
			return nil, err
		}
		desc.Phone = &phone
	}
	if v, ok := argMap.Value(syntax.PrefixEmail); ok {
		email, err := ParseEmail(v)
		if err != nil {
			return nil, err
		}
		desc.Email = &email
	}
	if v, ok := argMap.Value(syntax.PrefixExpiryDate); ok {
		expiry, err := ParseExpiryDate(v)
		if err != nil {
			return nil, err
		}
		desc.ExpiryDate = &expiry
	}
	if values := argMap.AllValues(syntax.PrefixSavings); len(values) > 0 {
		savings, err := ParseSavings(values, moneySymbol)
		if err != nil {
			return nil, err
		}
		desc.Savings = &savings
	}
	if v, ok := argMap.Value(syntax.PrefixLimit); ok {
		limit, err := ParseLimit(v)
		if err != nil {
			return nil, err
		}
		desc.Limit = &limit
	}
	if desc.Tags, err = parseTagsForEdit(argMap.AllValues(syntax.PrefixTag)); err != nil {
		return nil, err
	}

	if !desc.IsAnyFieldEdited() {
		return nil, &ParseError{Message: command.MessageNotEdited}
	}
	return command.NewEditCommand(index, desc), nil
}

// parseTagsForEdit returns nil when no tag was given, so the tags stay as
// they are. A single empty tag clears every tag.
func parseTagsForEdit(values []string) (*core.TagSet, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 && values[0] == "" {
		empty := core.NewTagSet()
		return &empty, nil
	}
	tags, err := ParseTags(values)
	if err != nil {
		return nil, err
	}
	return &tags, nil
}

func parseUsed(args, moneySymbol string) (command.Command, error) {
	moneyPrefix := syntax.MoneyPrefix(moneySymbol)
	argMap := Tokenize(args, moneyPrefix)

	index, err := ParseIndex(argMap.Preamble())
	if err != nil {
		return nil, invalidFormat(command.UsedUsage(moneySymbol))
	}

	v, ok := argMap.Value(moneyPrefix)
	if !ok {
		return command.NewUsedCommand(index, nil), nil
	}
	original, err := ParseMonetaryAmount(v, "")
	if err != nil {
		return nil, err
	}
	return command.NewUsedCommand(index, &original), nil
}

func parseDelete(args, _ string) (command.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(command.DeleteUsage)
	}
	return command.NewDeleteCommand(index), nil
}

func parseFind(args, _ string) (command.Command, error) {
	argMap := Tokenize(args, syntax.PrefixTag)
	keywords := strings.Fields(argMap.Preamble())
	if len(keywords) == 0 && !argMap.Has(syntax.PrefixTag) {
		return nil, invalidFormat(command.FindUsage)
	}
	tags, err := ParseTags(argMap.AllValues(syntax.PrefixTag))
	if err != nil {
		return nil, err
	}
	return command.NewFindCommand(keywords...).WithTags(tags), nil
}

func parseGoTo(args, _ string) (command.Command, error) {
	argMap := Tokenize(args, syntax.PrefixMonthYear)
	v, ok := argMap.Value(syntax.PrefixMonthYear)
	if !ok || argMap.Preamble() != "" {
		return nil, invalidFormat(command.GoToUsage)
	}
	if _, err := ParseMonthYear(v); err != nil {
		return nil, err
	}
	return command.NewGoToCommand(v), nil
}

func parseSort(args, _ string) (command.Command, error) {
	argMap := Tokenize(args, syntax.PrefixName, syntax.PrefixExpiryDate)
	byName := argMap.Has(syntax.PrefixName)
	byExpiry := argMap.Has(syntax.PrefixExpiryDate)
	if argMap.Preamble() != "" || byName == byExpiry {
		return nil, invalidFormat(command.SortUsage)
	}
	if byExpiry {
		return command.NewSortCommand(command.SortByExpiryDate), nil
	}
	return command.NewSortCommand(command.SortByName), nil
}
