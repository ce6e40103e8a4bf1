// Package settings persists user defaults for the massing CLI.
//
// The original massing tool remembered the module size and floor height
// between runs; this package keeps that behavior with a small TOML file in
// the user config directory. Explicit command-line flags always win over
// persisted values, and the file is optional - a missing file yields the
// built-in defaults.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/gduarte/massing/pkg/errors"
)

// Settings are the persisted run defaults.
type Settings struct {
	ModuleCM      float64 `toml:"module_cm"`
	HeightCM      float64 `toml:"height_cm"`
	AreaTolerance float64 `toml:"area_tolerance"`
	Passes        int     `toml:"passes"`
}

// Default returns the built-in defaults: a 150cm module, 300cm floor height,
// 5% area tolerance and three optimization passes.
func Default() Settings {
	return Settings{
		ModuleCM:      150,
		HeightCM:      300,
		AreaTolerance: 0.05,
		Passes:        3,
	}
}

// Keys lists the settable keys in display order.
var Keys = []string{"module", "height", "tolerance", "passes"}

// Get returns the value of a key as a display string.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "module":
		return strconv.FormatFloat(s.ModuleCM, 'f', -1, 64), nil
	case "height":
		return strconv.FormatFloat(s.HeightCM, 'f', -1, 64), nil
	case "tolerance":
		return strconv.FormatFloat(s.AreaTolerance, 'f', -1, 64), nil
	case "passes":
		return strconv.Itoa(s.Passes), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown setting %q (known: module, height, tolerance, passes)", key)
	}
}

// Set parses and validates a value for a key.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "module":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "module %q is not a number", value)
		}
		if err := errors.ValidateModule(v); err != nil {
			return err
		}
		s.ModuleCM = v
	case "height":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "height %q is not a number", value)
		}
		if err := errors.ValidateHeight(v); err != nil {
			return err
		}
		s.HeightCM = v
	case "tolerance":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "tolerance %q is not a number", value)
		}
		if err := errors.ValidateTolerance(v); err != nil {
			return err
		}
		s.AreaTolerance = v
	case "passes":
		v, err := strconv.Atoi(value)
		if err != nil || v < 1 || v > 10 {
			return errors.New(errors.ErrCodeInvalidInput, "passes %q must be an integer in 1-10", value)
		}
		s.Passes = v
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown setting %q (known: module, height, tolerance, passes)", key)
	}
	return nil
}

// Store reads and writes the settings file.
type Store struct {
	path string
}

// NewStore creates a settings store at path.
// If path is empty, defaults to ~/.config/massing/settings.toml.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		path = filepath.Join(home, ".config", "massing", "settings.toml")
	}
	return &Store{path: path}, nil
}

// Load reads the settings file, returning defaults if it does not exist.
// Unset fields in the file fall back to their defaults.
func (s *Store) Load() (Settings, error) {
	out := Default()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, &out); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", s.path, err)
	}
	return out, nil
}

// Save writes the settings file, creating the directory if needed.
func (s *Store) Save(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(settings)
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}
