package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/trackpad/internal/domain"
)

// PrefsFile stores domain.UserPrefs as YAML.
type PrefsFile struct {
	path string
}

// NewPrefsFile returns a store backed by the YAML file at path.
func NewPrefsFile(path string) *PrefsFile {
	return &PrefsFile{path: path}
}

// Load reads the preferences. A missing file yields domain.DefaultUserPrefs;
// fields absent from the file keep their default values.
func (p *PrefsFile) Load() (domain.UserPrefs, error) {
	prefs := domain.DefaultUserPrefs()
	b, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("repo.PrefsFile.Load: %w: %w", domain.ErrPersistence, err)
	}
	if err := yaml.Unmarshal(b, &prefs); err != nil {
		return domain.DefaultUserPrefs(), fmt.Errorf("repo.PrefsFile.Load: %w: %w", domain.ErrPersistence, err)
	}
	return prefs, nil
}

// Save writes prefs, creating the parent directory if needed.
func (p *PrefsFile) Save(prefs domain.UserPrefs) error {
	b, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("repo.PrefsFile.Save: %w: %w", domain.ErrPersistence, err)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("repo.PrefsFile.Save: %w: %w", domain.ErrPersistence, err)
	}
	if err := os.WriteFile(p.path, b, 0o644); err != nil {
		return fmt.Errorf("repo.PrefsFile.Save: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}
