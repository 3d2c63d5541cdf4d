package hover

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCursor is the cursor shown over a focused entity without its own cursor.
	DefaultCursor = "pointer"
	// CursorAuto restores the platform default cursor.
	CursorAuto = "auto"
)

// Config holds tracker options.
type Config struct {
	Cursor      string `yaml:"cursor"`
	ShowTooltip bool   `yaml:"show_tooltip"`
	Debug       bool   `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{Cursor: DefaultCursor}
}

// ParseConfig overlays YAML data on DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("hover: unmarshal config: %w", err)
	}
	if cfg.Cursor == "" {
		cfg.Cursor = DefaultCursor
	}
	return cfg, nil
}

func LoadConfig(fsys fs.FS, name string) (Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("hover: load config %s: %w", name, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("hover: load config %s: %w", name, err)
	}
	return cfg, nil
}
