package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

const (
	configFileName = "config.toml"
	appDirName     = "odoorest"
)

// DefaultHome returns the configuration directory used when none is given.
func DefaultHome() string {
	return filepath.Join(xdg.ConfigHome, appDirName)
}

// Loader reads and writes the configuration file of a home directory.
type Loader struct {
	home string
	path string
}

func NewLoader(home string) *Loader {
	if home == "" {
		home = DefaultHome()
	}
	return &Loader{
		home: home,
		path: filepath.Join(home, configFileName),
	}
}

func (l *Loader) ConfigFilePath() string {
	return l.path
}

func (l *Loader) ConfigExists() (bool, error) {
	_, err := os.Stat(l.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Save writes the configuration, creating the home directory if needed.
func (l *Loader) Save(cfg *Config) error {
	if err := os.MkdirAll(l.home, 0o700); err != nil {
		return fmt.Errorf("couldn't create configuration directory %s: %w", l.home, err)
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Load decodes the file over cfg so that keys missing from the file keep
// the values already set.
func (l *Loader) Load(cfg *Config) error {
	if _, err := toml.DecodeFile(l.path, cfg); err != nil {
		return fmt.Errorf("couldn't read configuration file %s: %w", l.path, err)
	}
	return nil
}

// Get returns the defaults overridden by the file.
func (l *Loader) Get() (*Config, error) {
	cfg := NewDefaultConfig()
	if err := l.Load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) Remove() error {
	return os.Remove(l.path)
}
