package parser

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"couponstash/internal/syntax"
)

// ArgumentMultimap holds the values given for each prefix, in input order,
// and the preamble that appears before the first prefix.
type ArgumentMultimap struct {
	preamble string
	values   map[syntax.Prefix][]string
}

type prefixPosition struct {
	prefix syntax.Prefix
	start  int
}

// Tokenize splits args into prefixed values. A prefix only counts when it
// starts the string or follows whitespace. Values are trimmed.
func Tokenize(args string, prefixes ...syntax.Prefix) ArgumentMultimap {
	positions := findPrefixPositions(args, prefixes)
	m := ArgumentMultimap{values: make(map[syntax.Prefix][]string)}

	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : valueEnd])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

// findPrefixPositions returns every prefix occurrence ordered by position.
// When prefixes overlap at the same position the longest wins.
func findPrefixPositions(args string, prefixes []syntax.Prefix) []prefixPosition {
	ordered := slices.Clone(prefixes)
	slices.SortStableFunc(ordered, func(a, b syntax.Prefix) int { return len(b) - len(a) })

	var positions []prefixPosition
	for i := 0; i < len(args); {
		if i > 0 {
			prev, _ := utf8.DecodeLastRuneInString(args[:i])
			if !unicode.IsSpace(prev) {
				i++
				continue
			}
		}
		matched := false
		for _, p := range ordered {
			if p != "" && strings.HasPrefix(args[i:], string(p)) {
				positions = append(positions, prefixPosition{prefix: p, start: i})
				i += len(p)
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return positions
}

func (m ArgumentMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m ArgumentMultimap) Value(p syntax.Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p, in input order.
func (m ArgumentMultimap) AllValues(p syntax.Prefix) []string {
	return slices.Clone(m.values[p])
}

func (m ArgumentMultimap) Has(p syntax.Prefix) bool {
	return len(m.values[p]) > 0
}

// HasAll reports whether every prefix was given at least once.
func (m ArgumentMultimap) HasAll(prefixes ...syntax.Prefix) bool {
	for _, p := range prefixes {
		if !m.Has(p) {
			return false
		}
	}
	return true
}
