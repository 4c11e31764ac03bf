package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/riverraid-go/riverraid/pkg/game/constants"
	"github.com/riverraid-go/riverraid/pkg/log"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Boot    BootConfig    `toml:"boot"`
	Logging LoggingConfig `toml:"logging"`
	Debug   bool          `toml:"debug"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	MinWidth   int    `toml:"min_width"`
	MinHeight  int    `toml:"min_height"`
	MaxWidth   int    `toml:"max_width"`
	MaxHeight  int    `toml:"max_height"`
	Background string `toml:"background"` // "#rrggbb"
}

type BootConfig struct {
	// Timeout accepts duration strings such as "3s" or "1500ms".
	Timeout time.Duration `toml:"timeout"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

// Load reads the TOML file at path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data, cfg)
}

// Parse decodes data over base and validates the result.
func Parse(data []byte, base *Config) (*Config, error) {
	md, err := toml.Decode(string(data), base)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	for _, key := range md.Undecoded() {
		log.Warn("Ignoring unknown config key %s", key)
	}
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return base, nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      constants.GameTitle,
			Width:      constants.GameWidth,
			Height:     constants.GameHeight,
			MinWidth:   400,
			MinHeight:  300,
			MaxWidth:   1200,
			MaxHeight:  900,
			Background: "#2c3e50",
		},
		Boot: BootConfig{
			Timeout: constants.BootTimeout,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func (c *Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.MinWidth > w.MaxWidth || w.MinHeight > w.MaxHeight {
		return fmt.Errorf("window minimum %dx%d exceeds maximum %dx%d", w.MinWidth, w.MinHeight, w.MaxWidth, w.MaxHeight)
	}
	if _, err := ParseHexColor(w.Background); err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	if c.Boot.Timeout <= 0 {
		return fmt.Errorf("boot timeout must be positive, got %s", c.Boot.Timeout)
	}
	if _, err := log.ParseLogLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed window background.
func (c *Config) BackgroundColor() color.Color {
	clr, err := ParseHexColor(c.Window.Background)
	if err != nil {
		return color.Black
	}
	return clr
}

// ParseHexColor parses colors of the form "#rrggbb".
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("color must look like #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
