// Package config loads and saves the menu configuration file.
//
// The file is TOML. Keys that are absent keep their default value, so an
// empty or missing file is a valid configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/BrandonKowalski/glui/pkg/glui/theme"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the menu configuration.
type Config struct {
	ColorTheme    string  `toml:"color_theme"`
	ThemeFile     string  `toml:"theme_file"`
	HeaderOpacity float32 `toml:"header_opacity"`
	FooterOpacity float32 `toml:"footer_opacity"`
	Wallpaper     string  `toml:"wallpaper"`

	PointerEnable bool   `toml:"pointer_enable"`
	MouseEnable   bool   `toml:"mouse_enable"`
	TouchDevice   string `toml:"touch_device"`

	DPIOverride  float32 `toml:"dpi_override"`
	WindowWidth  int32   `toml:"window_width"`
	WindowHeight int32   `toml:"window_height"`

	Language string `toml:"language"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	FontPath string `toml:"font_path"`
	IconDir  string `toml:"icon_dir"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ColorTheme:    theme.Blue,
		HeaderOpacity: 1,
		FooterOpacity: 1,
		PointerEnable: true,
		MouseEnable:   true,
		Language:      "en",
		LogLevel:      "info",
		IconDir:       "assets/icons",
	}
}

// Load reads the configuration at path. A missing file yields the defaults.
// Unknown keys are reported as an error so typos do not go unnoticed.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	var errs []error

	if c.ThemeFile == "" {
		if _, ok := theme.ByName(c.ColorTheme); !ok {
			errs = append(errs, fmt.Errorf("%w: color_theme %q is not one of %s",
				ErrInvalid, c.ColorTheme, strings.Join(theme.Names(), ", ")))
		}
	}
	if c.HeaderOpacity < 0 || c.HeaderOpacity > 1 {
		errs = append(errs, fmt.Errorf("%w: header_opacity %v outside [0, 1]", ErrInvalid, c.HeaderOpacity))
	}
	if c.FooterOpacity < 0 || c.FooterOpacity > 1 {
		errs = append(errs, fmt.Errorf("%w: footer_opacity %v outside [0, 1]", ErrInvalid, c.FooterOpacity))
	}
	if c.DPIOverride < 0 {
		errs = append(errs, fmt.Errorf("%w: dpi_override %v is negative", ErrInvalid, c.DPIOverride))
	}
	if c.WindowWidth < 0 || c.WindowHeight < 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d is negative", ErrInvalid, c.WindowWidth, c.WindowHeight))
	}
	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			errs = append(errs, fmt.Errorf("%w: language %q: %v", ErrInvalid, c.Language, err))
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel))
	}

	return errors.Join(errs...)
}

// Theme resolves the configured theme and applies the opacity settings.
func (c *Config) Theme() (theme.Theme, error) {
	var (
		t   theme.Theme
		err error
	)

	if c.ThemeFile != "" {
		t, err = theme.LoadFile(c.ThemeFile)
		if err != nil {
			return theme.Theme{}, err
		}
	} else {
		var ok bool
		t, ok = theme.ByName(c.ColorTheme)
		if !ok {
			return theme.Theme{}, fmt.Errorf("%w: color_theme %q", ErrInvalid, c.ColorTheme)
		}
	}

	return t.WithOpacity(c.HeaderOpacity, c.FooterOpacity), nil
}

// ApplyEnv overrides the display settings from the environment, which is how
// development builds size their window.
func (c *Config) ApplyEnv() {
	if v, err := strconv.ParseFloat(os.Getenv(constants.DPIEnvVar), 32); err == nil && v > 0 {
		c.DPIOverride = float32(v)
	}
	if v, err := strconv.ParseInt(os.Getenv(constants.WindowWidthEnvVar), 10, 32); err == nil && v > 0 {
		c.WindowWidth = int32(v)
	}
	if v, err := strconv.ParseInt(os.Getenv(constants.WindowHeightEnvVar), 10, 32); err == nil && v > 0 {
		c.WindowHeight = int32(v)
	}
}

// Save writes the configuration atomically: it is encoded to a temporary
// file next to path which is then renamed over it.
func Save(path string, c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Path returns the configuration path from the environment, or fallback.
func Path(fallback string) string {
	if p := os.Getenv(constants.ConfigPathEnvVar); p != "" {
		return p
	}
	return fallback
}
