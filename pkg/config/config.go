// Package config loads the optional canopy.yaml file and resolves toolkit
// defaults from it.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/canopy/pkg/graphics"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "canopy.yaml"

// Config represents the optional canopy.yaml configuration. Zero values mean
// "use the default".
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Log      LogConfig      `yaml:"log"`
	Debug    bool           `yaml:"debug,omitempty"`
}

// WindowConfig describes the root window.
type WindowConfig struct {
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Fullscreen bool   `yaml:"fullscreen,omitempty"`
	Title      string `yaml:"title,omitempty"`
}

// DefaultsConfig overrides the built-in widget defaults.
type DefaultsConfig struct {
	Background          *Color `yaml:"background,omitempty"`
	TextColor           *Color `yaml:"text_color,omitempty"`
	ButtonBorderWidth   *int   `yaml:"button_border_width,omitempty"`
	ButtonCornerRadius  *int   `yaml:"button_corner_radius,omitempty"`
	ToplevelBorderWidth *int   `yaml:"toplevel_border_width,omitempty"`
	TopbarHeight        *int   `yaml:"topbar_height,omitempty"`
	ToplevelSize        []int  `yaml:"toplevel_size,omitempty"`
	ToplevelMinSize     []int  `yaml:"toplevel_min_size,omitempty"`
	DamageMargin        *int   `yaml:"damage_margin,omitempty"`
}

// LogConfig selects the log level and verbosity.
type LogConfig struct {
	Level   string `yaml:"level,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// Color is a graphics.Color written as "#rrggbb" or "#rrggbbaa" in YAML.
type Color graphics.Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := graphics.ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = Color(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return graphics.Color(c).String(), nil
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Width      int
	Height     int
	Fullscreen bool
	Title      string

	Background          graphics.Color
	TextColor           graphics.Color
	ButtonBorderWidth   int
	ButtonCornerRadius  int
	ToplevelBorderWidth int
	TopbarHeight        int
	ToplevelSize        graphics.Size
	ToplevelMinSize     graphics.Size
	DamageMargin        int

	LogLevel   slog.Level
	LogVerbose bool
	Debug      bool
}

// Default returns the built-in configuration.
func Default() *Resolved {
	return &Resolved{
		Width:               800,
		Height:              600,
		Title:               "canopy",
		Background:          graphics.ColorGray,
		TextColor:           graphics.ColorBlack,
		ButtonBorderWidth:   4,
		ButtonCornerRadius:  10,
		ToplevelBorderWidth: 4,
		TopbarHeight:        30,
		ToplevelSize:        graphics.Sz(320, 240),
		ToplevelMinSize:     graphics.Sz(160, 120),
		DamageMargin:        2,
		LogLevel:            slog.LevelInfo,
	}
}

// Parse decodes canopy.yaml contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// LoadOptional reads canopy.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Resolve loads canopy.yaml (if present) from dir and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve applies cfg over the built-in defaults and validates the result.
func (cfg *Config) Resolve() (*Resolved, error) {
	r := Default()

	if cfg.Window.Width != 0 {
		r.Width = cfg.Window.Width
	}
	if cfg.Window.Height != 0 {
		r.Height = cfg.Window.Height
	}
	r.Fullscreen = cfg.Window.Fullscreen
	if title := strings.TrimSpace(cfg.Window.Title); title != "" {
		r.Title = title
	}

	d := cfg.Defaults
	if d.Background != nil {
		r.Background = graphics.Color(*d.Background)
	}
	if d.TextColor != nil {
		r.TextColor = graphics.Color(*d.TextColor)
	}
	setInt(&r.ButtonBorderWidth, d.ButtonBorderWidth)
	setInt(&r.ButtonCornerRadius, d.ButtonCornerRadius)
	setInt(&r.ToplevelBorderWidth, d.ToplevelBorderWidth)
	setInt(&r.TopbarHeight, d.TopbarHeight)
	setInt(&r.DamageMargin, d.DamageMargin)

	var err error
	if r.ToplevelSize, err = sizeOr(d.ToplevelSize, r.ToplevelSize, "toplevel_size"); err != nil {
		return nil, err
	}
	if r.ToplevelMinSize, err = sizeOr(d.ToplevelMinSize, r.ToplevelMinSize, "toplevel_min_size"); err != nil {
		return nil, err
	}

	if cfg.Log.Level != "" {
		if err := r.LogLevel.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q", cfg.Log.Level)
		}
	}
	r.LogVerbose = cfg.Log.Verbose
	r.Debug = cfg.Debug

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func sizeOr(v []int, def graphics.Size, field string) (graphics.Size, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 2:
		return graphics.Sz(v[0], v[1]), nil
	default:
		return graphics.Size{}, fmt.Errorf("%s must be [width, height], got %v", field, v)
	}
}

func (r *Resolved) validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", r.Width, r.Height)
	}
	for name, v := range map[string]int{
		"button_border_width":   r.ButtonBorderWidth,
		"button_corner_radius":  r.ButtonCornerRadius,
		"toplevel_border_width": r.ToplevelBorderWidth,
		"topbar_height":         r.TopbarHeight,
		"damage_margin":         r.DamageMargin,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, v)
		}
	}
	if r.ToplevelMinSize.Width < 0 || r.ToplevelMinSize.Height < 0 {
		return fmt.Errorf("toplevel_min_size must not be negative, got %v", r.ToplevelMinSize)
	}
	return nil
}

// WindowSize returns the configured root window size.
func (r *Resolved) WindowSize() graphics.Size {
	return graphics.Sz(r.Width, r.Height)
}
