// Package model holds the in-memory coupon stash, the filtered view shown to
// the user and the user's preferences.
package model

import (
	"fmt"
	"slices"
	"time"

	"couponstash/internal/core"
)

// Model is what commands need from the application state.
type Model interface {
	// Coupons returns every coupon in stash order.
	Coupons() []core.Coupon
	// FilteredCoupons returns the coupons currently displayed.
	FilteredCoupons() []core.Coupon
	// ResolveFilteredIndex maps a displayed index to its coupon.
	ResolveFilteredIndex(idx core.Index) (core.Coupon, bool)
	HasCoupon(c core.Coupon) bool
	AddCoupon(c core.Coupon) error
	SetCoupon(target, edited core.Coupon) error
	DeleteCoupon(c core.Coupon) error
	ClearCoupons()
	UpdateFilteredCouponList(p Predicate)
	SortFilteredCouponList(less Less)
	UpdateMonthView(value string) error
	MonthView() core.MonthYear
	UserPrefs() UserPrefs
	Stash() *CouponStash
	SetStash(s *CouponStash)
}

// Manager is the Model used by the app. The filtered view is a derived
// slice rebuilt from the stash, predicate and ordering after every change.
type Manager struct {
	stash     *CouponStash
	prefs     UserPrefs
	predicate Predicate
	less      Less
	filtered  []core.Coupon
	monthView core.MonthYear
}

var _ Model = (*Manager)(nil)

// NewManager starts with every coupon shown and the calendar on the
// current month.
func NewManager(stash *CouponStash, prefs UserPrefs) *Manager {
	if stash == nil {
		stash = &CouponStash{}
	}
	if prefs.MoneySymbol == "" {
		prefs.MoneySymbol = DefaultMoneySymbol
	}
	m := &Manager{
		stash:     stash,
		prefs:     prefs,
		predicate: ShowAll,
		monthView: core.MonthYearOf(time.Now()),
	}
	m.refresh()
	return m
}

func (m *Manager) Stash() *CouponStash { return m.stash }

func (m *Manager) Coupons() []core.Coupon { return m.stash.Coupons() }

func (m *Manager) FilteredCoupons() []core.Coupon {
	return slices.Clone(m.filtered)
}

func (m *Manager) ResolveFilteredIndex(idx core.Index) (core.Coupon, bool) {
	i := idx.ZeroBased()
	if i < 0 || i >= len(m.filtered) {
		return core.Coupon{}, false
	}
	return m.filtered[i], true
}

func (m *Manager) HasCoupon(c core.Coupon) bool { return m.stash.Has(c) }

// AddCoupon adds c and shows every coupon again so the new one is visible.
func (m *Manager) AddCoupon(c core.Coupon) error {
	if err := m.stash.Add(c); err != nil {
		return fmt.Errorf("add coupon %s: %w", c.Name(), err)
	}
	m.predicate = ShowAll
	m.refresh()
	return nil
}

func (m *Manager) SetCoupon(target, edited core.Coupon) error {
	if err := m.stash.Set(target, edited); err != nil {
		return fmt.Errorf("set coupon %s: %w", target.Name(), err)
	}
	m.refresh()
	return nil
}

func (m *Manager) DeleteCoupon(c core.Coupon) error {
	if err := m.stash.Remove(c); err != nil {
		return fmt.Errorf("delete coupon %s: %w", c.Name(), err)
	}
	m.refresh()
	return nil
}

func (m *Manager) ClearCoupons() {
	m.stash.Clear()
	m.refresh()
}

// SetStash swaps in a freshly loaded stash.
func (m *Manager) SetStash(s *CouponStash) {
	m.stash = s
	m.refresh()
}

func (m *Manager) UpdateFilteredCouponList(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	m.predicate = p
	m.refresh()
}

func (m *Manager) SortFilteredCouponList(less Less) {
	m.less = less
	m.refresh()
}

func (m *Manager) UpdateMonthView(value string) error {
	my, err := core.ParseMonthYear(value)
	if err != nil {
		return err
	}
	m.monthView = my
	return nil
}

func (m *Manager) MonthView() core.MonthYear { return m.monthView }

func (m *Manager) UserPrefs() UserPrefs { return m.prefs }

func (m *Manager) refresh() {
	filtered := make([]core.Coupon, 0, m.stash.Len())
	for _, c := range m.stash.coupons {
		if m.predicate(c) {
			filtered = append(filtered, c)
		}
	}
	if m.less != nil {
		slices.SortStableFunc(filtered, func(a, b core.Coupon) int {
			switch {
			case m.less(a, b):
				return -1
			case m.less(b, a):
				return 1
			default:
				return 0
			}
		})
	}
	m.filtered = filtered
}
