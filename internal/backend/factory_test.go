package backend

import (
	"context"
	"path/filepath"
	"testing"

	"couponstash/internal/config"
	"couponstash/internal/model"
	"couponstash/internal/storage"
	"couponstash/internal/storage/memory"
	"couponstash/internal/testutil"
)

func TestFromAppConfig(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		if _, err := FromAppConfig(nil); err == nil {
			t.Error("FromAppConfig(nil) should fail")
		}
	})

	t.Run("invalid backend", func(t *testing.T) {
		if _, err := FromAppConfig(&config.Config{DataBackend: "sheets"}); err == nil {
			t.Error("FromAppConfig() should reject the sheets backend")
		}
	})

	t.Run("sqlite backend", func(t *testing.T) {
		cfg, err := FromAppConfig(&config.Config{
			DataBackend:  "sqlite",
			DBPath:       "./data/couponstash.db",
			AMQPExchange: "couponstash",
			AMQPQueue:    "coupon_events",
		})
		if err != nil {
			t.Fatalf("FromAppConfig() error = %v", err)
		}
		if cfg.Type != SQLiteBackend || cfg.SQLiteDBPath != "./data/couponstash.db" || cfg.AMQPQueue != "coupon_events" {
			t.Errorf("FromAppConfig() = %+v", cfg)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"memory", Config{Type: MemoryBackend}, false},
		{"sqlite with path", Config{Type: SQLiteBackend, SQLiteDBPath: "x.db"}, false},
		{"sqlite without path", Config{Type: SQLiteBackend}, true},
		{"unknown type", Config{Type: "sheets"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetBackendTypeStrings(t *testing.T) {
	got := GetBackendTypeStrings()
	if len(got) != 2 || got[0] != "sqlite" || got[1] != "memory" {
		t.Errorf("GetBackendTypeStrings() = %v", got)
	}
}

func TestCreateBackend(t *testing.T) {
	factory := NewFactory(nil)
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		result, err := factory.CreateBackend(ctx, Config{Type: MemoryBackend})
		if err != nil {
			t.Fatalf("CreateBackend() error = %v", err)
		}
		if _, ok := result.Storage.(*memory.Store); !ok {
			t.Errorf("Storage = %T, want *memory.Store", result.Storage)
		}
		if result.Events != nil || result.Cleanup != nil {
			t.Errorf("memory backend should have no events and no cleanup")
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "couponstash.db")
		result, err := factory.CreateBackend(ctx, Config{Type: SQLiteBackend, SQLiteDBPath: path})
		if err != nil {
			t.Fatalf("CreateBackend() error = %v", err)
		}
		defer result.Cleanup()

		if _, ok := result.Storage.(*storage.SQLiteRepository); !ok {
			t.Fatalf("Storage = %T, want *storage.SQLiteRepository", result.Storage)
		}
		stash, _ := model.NewCouponStash(testutil.TypicalCoupons()...)
		if err := result.Storage.SaveStash(ctx, stash); err != nil {
			t.Fatalf("SaveStash() error = %v", err)
		}
		got, err := result.Storage.LoadStash(ctx)
		if err != nil || !got.Equal(stash) {
			t.Fatalf("LoadStash() = %v, %v", got, err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		if _, err := factory.CreateBackend(ctx, Config{Type: SQLiteBackend}); err == nil {
			t.Error("CreateBackend() should fail without a database path")
		}
	})
}
