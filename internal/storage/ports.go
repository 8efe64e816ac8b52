package storage

import (
	"context"

	"couponstash/internal/model"
)

// Ports for persistence adapters.
type (
	// StashStorage loads and saves the whole coupon stash.
	StashStorage interface {
		LoadStash(ctx context.Context) (*model.CouponStash, error)
		SaveStash(ctx context.Context, stash *model.CouponStash) error
	}

	// PrefsStorage loads and saves the user's preferences.
	PrefsStorage interface {
		LoadPrefs() (model.UserPrefs, error)
		SavePrefs(prefs model.UserPrefs) error
	}
)
