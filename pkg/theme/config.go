package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-loom/loom/pkg/graphics"
)

// Config represents the optional theme.yaml configuration. Fields left
// unset fall back to the built-in defaults, so a partial file overrides
// only what it names.
type Config struct {
	Button StyleConfig `yaml:"button"`
}

// StyleConfig contains the overridable fields of one widget style.
type StyleConfig struct {
	MinHeight    *float64      `yaml:"min_height,omitempty"`
	BorderWidth  *float64      `yaml:"border_width,omitempty"`
	BorderRadius *float64      `yaml:"border_radius,omitempty"`
	BorderColor  string        `yaml:"border_color,omitempty"`
	Background   string        `yaml:"background,omitempty"`
	TextColor    string        `yaml:"text_color,omitempty"`
	ShadowOffset *OffsetConfig `yaml:"shadow_offset,omitempty"`
}

// OffsetConfig is a 2D offset in configuration files.
type OffsetConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Load reads a theme configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

// LoadOptional reads theme.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, "theme.yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// ButtonSheet resolves the configured button style over the defaults.
func (c *Config) ButtonSheet() (StyleSheet, error) {
	base, err := c.Button.apply(defaultStyle)
	if err != nil {
		return nil, fmt.Errorf("button style: %w", err)
	}
	return FixedSheet{Base: base}, nil
}

func (sc StyleConfig) apply(base Style) (Style, error) {
	if sc.MinHeight != nil {
		base.MinHeight = *sc.MinHeight
	}
	if sc.BorderWidth != nil {
		base.BorderWidth = *sc.BorderWidth
	}
	if sc.BorderRadius != nil {
		base.BorderRadius = *sc.BorderRadius
	}
	if sc.ShadowOffset != nil {
		base.ShadowOffset = graphics.Offset{X: sc.ShadowOffset.X, Y: sc.ShadowOffset.Y}
	}
	for _, f := range []struct {
		value string
		dst   *graphics.Color
	}{
		{sc.BorderColor, &base.BorderColor},
		{sc.Background, &base.Background},
		{sc.TextColor, &base.TextColor},
	} {
		if f.value == "" {
			continue
		}
		color, err := ParseColor(f.value)
		if err != nil {
			return Style{}, err
		}
		*f.dst = color
	}
	return base, nil
}

// ParseColor parses a hex color string: #RGB, #RRGGBB, or #AARRGGBB.
// Colors without an alpha component are opaque.
func ParseColor(s string) (graphics.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
		fallthrough
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return graphics.Color(v) | 0xFF000000, nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return graphics.Color(v), nil
	default:
		return 0, fmt.Errorf("invalid color %q: want #RGB, #RRGGBB or #AARRGGBB", s)
	}
}
