package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"couponstash/internal/model"
)

// PrefsFile keeps user preferences in a YAML file.
type PrefsFile struct {
	path string
}

var _ PrefsStorage = (*PrefsFile)(nil)

func NewPrefsFile(path string) *PrefsFile {
	return &PrefsFile{path: path}
}

func (p *PrefsFile) Path() string { return p.path }

// LoadPrefs returns the defaults when the file does not exist yet. Keys
// missing from the file keep their default values.
func (p *PrefsFile) LoadPrefs() (model.UserPrefs, error) {
	prefs := model.DefaultUserPrefs()

	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("read preferences: %w", err)
	}

	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return model.DefaultUserPrefs(), fmt.Errorf("parse preferences %s: %w", p.path, err)
	}
	if prefs.MoneySymbol == "" {
		prefs.MoneySymbol = model.DefaultMoneySymbol
	}
	return prefs, nil
}

func (p *PrefsFile) SavePrefs(prefs model.UserPrefs) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}

	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
