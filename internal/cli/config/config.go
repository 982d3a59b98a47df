package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the CLI defaults read from the config file. Flags override
// whatever is set here.
type Settings struct {
	Format string `toml:"format"` // "text" or "json"
	Color  bool   `toml:"color"`
	Kind   string `toml:"kind"` // default document kind: "request" or "response"
}

// Default returns the standard settings used when no config file exists.
func Default() Settings {
	return Settings{
		Format: "text",
		Color:  true,
		Kind:   "request",
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rpcwire", "config.toml"), nil
}

// Load reads settings from path. A missing file is not an error; defaults
// are returned.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, err
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return Default(), err
	}
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	if err := s.validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (s Settings) validate() error {
	switch s.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q, want text or json", s.Format)
	}
	switch s.Kind {
	case "request", "response":
	default:
		return fmt.Errorf("invalid kind %q, want request or response", s.Kind)
	}
	return nil
}
