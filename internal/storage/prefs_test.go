package storage

import (
	"os"
	"path/filepath"
	"testing"

	"couponstash/internal/model"
)

func TestPrefsFileMissingReturnsDefaults(t *testing.T) {
	p := NewPrefsFile(filepath.Join(t.TempDir(), "preferences.yaml"))
	got, err := p.LoadPrefs()
	if err != nil {
		t.Fatalf("LoadPrefs() error = %v", err)
	}
	if got != model.DefaultUserPrefs() {
		t.Fatalf("LoadPrefs() = %+v, want defaults", got)
	}
}

func TestPrefsFileRoundTrip(t *testing.T) {
	p := NewPrefsFile(filepath.Join(t.TempDir(), "nested", "preferences.yaml"))
	want := model.UserPrefs{
		MoneySymbol: "€",
		Window:      model.WindowSettings{Width: 1024, Height: 768, X: 10, Y: 20},
	}
	if err := p.SavePrefs(want); err != nil {
		t.Fatalf("SavePrefs() error = %v", err)
	}
	got, err := p.LoadPrefs()
	if err != nil {
		t.Fatalf("LoadPrefs() error = %v", err)
	}
	if got != want {
		t.Fatalf("LoadPrefs() = %+v, want %+v", got, want)
	}
}

func TestPrefsFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	if err := os.WriteFile(path, []byte("money_symbol: £\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := NewPrefsFile(path).LoadPrefs()
	if err != nil {
		t.Fatalf("LoadPrefs() error = %v", err)
	}
	if got.MoneySymbol != "£" || got.Window != model.DefaultUserPrefs().Window {
		t.Fatalf("LoadPrefs() = %+v", got)
	}
}

func TestPrefsFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	if err := os.WriteFile(path, []byte("window: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewPrefsFile(path).LoadPrefs(); err == nil {
		t.Fatalf("expected an error for invalid YAML")
	}
}
