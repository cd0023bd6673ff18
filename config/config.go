// Package config loads the front end's settings from a TOML file in the
// user's configuration directory. Every field has a default; the file is
// optional.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Render configures PNG export.
type Render struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Margin     float64 `toml:"margin"`
	Background string  `toml:"background"`
}

// Viewer configures the interactive window.
type Viewer struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	Antialias  bool   `toml:"antialias"`
}

type Config struct {
	Render Render `toml:"render"`
	Viewer Viewer `toml:"viewer"`
}

// Default returns the built-in configuration: print-friendly PNG export and
// a dark viewer window.
func Default() Config {
	return Config{
		Render: Render{Width: 1024, Height: 768, Margin: 16, Background: "#ffffff"},
		Viewer: Viewer{Width: 1067, Height: 800, Background: "#202020", Antialias: true},
	}
}

// Path returns the location of the user configuration file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "kame", "config.toml")
}

// Load reads the user configuration, falling back to the defaults when the
// file does not exist.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile reads a configuration file over the defaults, so keys the file
// omits keep their built-in values.
func LoadFile(path string) (Config, error) {
	config := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, &config); err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}

	return config, nil
}

// ParseColor parses #rgb or #rrggbb hex notation.
func ParseColor(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
	}

	value, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(s) == 4 {
		r := uint8(value >> 8 & 0xf)
		g := uint8(value >> 4 & 0xf)
		b := uint8(value & 0xf)

		return color.RGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, nil
	}

	return color.RGBA{R: uint8(value >> 16), G: uint8(value >> 8), B: uint8(value), A: 0xff}, nil
}
