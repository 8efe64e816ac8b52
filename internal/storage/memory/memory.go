// Package memory keeps the coupon stash in process memory only. Nothing
// survives a restart.
package memory

import (
	"context"
	"sync"

	"couponstash/internal/core"
	"couponstash/internal/model"
)

type Store struct {
	mu      sync.Mutex
	coupons []core.Coupon
	saves   int
}

// New seeds the store with coupons.
func New(coupons ...core.Coupon) *Store {
	return &Store{coupons: append([]core.Coupon(nil), coupons...)}
}

// LoadStash returns a stash that shares no state with the store.
func (s *Store) LoadStash(_ context.Context) (*model.CouponStash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.NewCouponStash(s.coupons...)
}

// SaveStash keeps a snapshot of stash.
func (s *Store) SaveStash(_ context.Context, stash *model.CouponStash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons = stash.Coupons()
	s.saves++
	return nil
}

// Saves reports how many times the stash has been saved.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
