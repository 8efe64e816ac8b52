package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"couponstash/internal/core"
	"couponstash/internal/model"

	_ "modernc.org/sqlite"
)

const (
	selectCoupons = `SELECT name, phone, email, expiry_date, usage_count, usage_limit, savings, tags, savings_map
FROM coupons ORDER BY position`

	insertCoupon = `INSERT INTO coupons
(position, name, phone, email, expiry_date, usage_count, usage_limit, savings, tags, savings_map)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// LoadStash implements StashStorage. Coupons come back in stash order.
func (r *SQLiteRepository) LoadStash(ctx context.Context) (*model.CouponStash, error) {
	rows, err := r.db.QueryContext(ctx, selectCoupons)
	if err != nil {
		return nil, fmt.Errorf("query coupons: %w", err)
	}
	defer rows.Close()

	var coupons []core.Coupon
	for rows.Next() {
		var rec couponRecord
		if err := rows.Scan(&rec.Name, &rec.Phone, &rec.Email, &rec.ExpiryDate,
			&rec.Usage, &rec.Limit, &rec.Savings, &rec.Tags, &rec.SavingsMap); err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		c, err := rec.toCoupon()
		if err != nil {
			return nil, fmt.Errorf("load coupon %q: %w", rec.Name, err)
		}
		coupons = append(coupons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coupons: %w", err)
	}

	stash, err := model.NewCouponStash(coupons...)
	if err != nil {
		return nil, fmt.Errorf("build stash: %w", err)
	}
	return stash, nil
}

// SaveStash implements StashStorage. The table is replaced in a single
// transaction so a failed save leaves the previous stash intact.
func (r *SQLiteRepository) SaveStash(ctx context.Context, stash *model.CouponStash) error {
	coupons := stash.Coupons()
	records := make([]couponRecord, len(coupons))
	for i, c := range coupons {
		rec, err := toRecord(c)
		if err != nil {
			return fmt.Errorf("encode coupon %q: %w", c.Name(), err)
		}
		records[i] = rec
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM coupons`); err != nil {
		return fmt.Errorf("clear coupons: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertCoupon)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx, i, rec.Name, rec.Phone, rec.Email, rec.ExpiryDate,
			rec.Usage, rec.Limit, rec.Savings, rec.Tags, rec.SavingsMap); err != nil {
			return fmt.Errorf("insert coupon %q: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.DebugContext(ctx, "Coupon stash saved to SQLite", "coupons", len(records))
	return nil
}

// CountCoupons returns how many coupons are stored.
func (r *SQLiteRepository) CountCoupons(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM coupons`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count coupons: %w", err)
	}
	return count, nil
}
