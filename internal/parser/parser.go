// Package parser turns a line of user input into a command.
//
// Input has the form "<word> [preamble] [prefix value]...". The word picks a
// sub-parser, which tokenizes the rest of the line by the prefixes that
// command accepts.
package parser

import (
	"fmt"
	"strings"
	"unicode"

	"couponstash/internal/command"
)

const (
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
)

// ParseError is a parse failure whose message is shown to the user as is.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string { return e.Message }

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(err error) *ParseError {
	return &ParseError{Message: err.Error(), Err: err}
}

// invalidFormat reports input that does not match a command's usage.
func invalidFormat(usage string) *ParseError {
	return &ParseError{Message: fmt.Sprintf(MessageInvalidCommandFormat, usage)}
}

// parseFunc parses the arguments that follow a command word.
type parseFunc func(args, moneySymbol string) (command.Command, error)

// StashParser dispatches a line of input to the parser of its command word.
type StashParser struct {
	parsers map[string]parseFunc
}

func NewStashParser() *StashParser {
	return &StashParser{parsers: map[string]parseFunc{
		command.AddCommandWord:    parseAdd,
		command.EditCommandWord:   parseEdit,
		command.UsedCommandWord:   parseUsed,
		command.DeleteCommandWord: parseDelete,
		command.FindCommandWord:   parseFind,
		command.GoToCommandWord:   parseGoTo,
		command.SortCommandWord:   parseSort,
		command.ListCommandWord:   noArgs(func() command.Command { return &command.ListCommand{} }),
		command.ClearCommandWord:  noArgs(func() command.Command { return &command.ClearCommand{} }),
		command.SavedCommandWord:  noArgs(func() command.Command { return &command.SavedCommand{} }),
		command.HelpCommandWord:   noArgs(func() command.Command { return &command.HelpCommand{} }),
		command.ExitCommandWord:   noArgs(func() command.Command { return &command.ExitCommand{} }),
	}}
}

// Parse reads one line of input. moneySymbol is the user's configured
// symbol, which marks monetary amounts.
func (p *StashParser) Parse(text, moneySymbol string) (command.Command, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalidFormat(command.HelpUsage)
	}

	word, args := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		word, args = text[:i], text[i:]
	}

	parse, ok := p.parsers[word]
	if !ok {
		return nil, &ParseError{Message: MessageUnknownCommand}
	}
	return parse(args, moneySymbol)
}

// noArgs builds a parser for commands that ignore their arguments.
func noArgs(build func() command.Command) parseFunc {
	return func(string, string) (command.Command, error) {
		return build(), nil
	}
}
