package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// storeFile is the on-disk shape of the preference file
type storeFile struct {
	Theme string `yaml:"theme"`
}

// Store persists the theme preference in a small YAML file
type Store struct {
	path string
}

// NewStore creates a store backed by path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user preference file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "backdrop", "theme.yaml"), nil
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored preference. A missing file yields fallback without error.
func (s *Store) Load(fallback Theme) (Theme, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return fallback, nil
	}
	if err != nil {
		return fallback, fmt.Errorf("failed to read theme file: %w", err)
	}

	var f storeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fallback, fmt.Errorf("failed to parse theme file %s: %w", s.path, err)
	}
	if f.Theme == "" {
		return fallback, nil
	}
	return Parse(f.Theme)
}

// Save writes the preference, creating parent directories as needed. The file
// is replaced atomically so watchers never observe a partial write.
func (s *Store) Save(t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}

	data, err := yaml.Marshal(storeFile{Theme: t.String()})
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create theme dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".theme-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close theme file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace theme file: %w", err)
	}
	return nil
}
