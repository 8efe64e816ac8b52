package core

import (
	"maps"
	"slices"
)

// DateSavingsSumMap accumulates savings per calendar day. Entries for the
// same day merge with PureMonetarySavings.Add. The zero value is empty and
// ready to use.
type DateSavingsSumMap struct {
	entries map[Date]PureMonetarySavings
}

func NewDateSavingsSumMap() DateSavingsSumMap {
	return DateSavingsSumMap{entries: make(map[Date]PureMonetarySavings)}
}

// Add merges s into the entry for day.
func (m *DateSavingsSumMap) Add(day Date, s PureMonetarySavings) {
	if m.entries == nil {
		m.entries = make(map[Date]PureMonetarySavings)
	}
	day = DateOf(day.Time)
	if existing, ok := m.entries[day]; ok {
		s = existing.Add(s)
	}
	m.entries[day] = s
}

// AddAll merges every entry of other into m.
func (m *DateSavingsSumMap) AddAll(other DateSavingsSumMap) {
	for _, day := range other.Dates() {
		m.Add(day, other.entries[day])
	}
}

func (m DateSavingsSumMap) Get(day Date) (PureMonetarySavings, bool) {
	s, ok := m.entries[DateOf(day.Time)]
	return s, ok
}

func (m DateSavingsSumMap) Len() int { return len(m.entries) }

// Dates returns every day with savings, earliest first.
func (m DateSavingsSumMap) Dates() []Date {
	days := slices.Collect(maps.Keys(m.entries))
	slices.SortFunc(days, func(a, b Date) int { return a.Compare(b.Time) })
	return days
}

// Total folds every entry, earliest first, starting from zero savings.
func (m DateSavingsSumMap) Total() PureMonetarySavings {
	var total PureMonetarySavings
	for _, day := range m.Dates() {
		total = total.Add(m.entries[day])
	}
	return total
}

// Clone returns a map that shares no state with m.
func (m DateSavingsSumMap) Clone() DateSavingsSumMap {
	c := NewDateSavingsSumMap()
	for day, s := range m.entries {
		c.entries[day] = s
	}
	return c
}

func (m DateSavingsSumMap) Equal(other DateSavingsSumMap) bool {
	if len(m.entries) != len(other.entries) {
		return false
	}
	for day, s := range m.entries {
		o, ok := other.entries[day]
		if !ok || !s.Equal(o) {
			return false
		}
	}
	return true
}
