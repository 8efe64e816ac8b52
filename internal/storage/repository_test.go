package storage

import (
	"context"
	"path/filepath"
	"testing"

	"couponstash/internal/core"
	"couponstash/internal/model"
	"couponstash/internal/testutil"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "data", "couponstash.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository() error = %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	history := testutil.CouponBuilderFrom(testutil.Daniel).
		WithSavingsRecorded(core.NewDate(2020, 3, 15), core.NewPureMonetarySavings(testutil.Money("2.50"), testutil.Saveable("free drink"))).
		WithSavingsRecorded(core.NewDate(2020, 4, 1), core.NewPureMonetarySavings(testutil.Money("0"))).Build()
	noContact := core.NewCoupon(core.CouponFields{
		Name:       testutil.Carl.Name(),
		ExpiryDate: testutil.Carl.ExpiryDate(),
		Savings:    core.PercentageSavings(testutil.Percent("12.5")),
	})

	coupons := append(testutil.TypicalCoupons(), history, noContact)
	want, err := model.NewCouponStash(coupons...)
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.SaveStash(ctx, want); err != nil {
		t.Fatalf("SaveStash() error = %v", err)
	}
	got, err := repo.LoadStash(ctx)
	if err != nil {
		t.Fatalf("LoadStash() error = %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("loaded stash differs from saved stash:\n got  %v\n want %v", got.Coupons(), want.Coupons())
	}

	count, err := repo.CountCoupons(ctx)
	if err != nil || count != int64(len(coupons)) {
		t.Fatalf("CountCoupons() = %d, %v; want %d", count, err, len(coupons))
	}
}

func TestSQLiteRepositorySaveReplacesPreviousStash(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, _ := model.NewCouponStash(testutil.TypicalCoupons()...)
	if err := repo.SaveStash(ctx, first); err != nil {
		t.Fatal(err)
	}
	second, _ := model.NewCouponStash(testutil.Elle, testutil.Alice)
	if err := repo.SaveStash(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := repo.LoadStash(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(second) {
		t.Fatalf("expected only the second stash, in order")
	}
}

func TestSQLiteRepositoryEmpty(t *testing.T) {
	repo := newTestRepository(t)
	got, err := repo.LoadStash(context.Background())
	if err != nil {
		t.Fatalf("LoadStash() error = %v", err)
	}
	if got.Len() != 0 {
		t.Fatalf("expected an empty stash, got %d coupons", got.Len())
	}
}

func TestSQLiteRepositoryReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "couponstash.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatal(err)
	}
	stash, _ := model.NewCouponStash(testutil.Benson)
	if err := repo.SaveStash(ctx, stash); err != nil {
		t.Fatal(err)
	}
	repo.Close()

	reopened, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.LoadStash(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(stash) {
		t.Fatalf("stash not persisted across reopen")
	}
}

func TestCouponRecordRejectsCorruptRow(t *testing.T) {
	rec, err := toRecord(testutil.Alice)
	if err != nil {
		t.Fatal(err)
	}
	rec.Savings = `{"monetary_amount":"5.00","percentage_amount":"10"}`
	if _, err := rec.toCoupon(); err == nil {
		t.Fatalf("expected an error for savings with both amounts")
	}
}
