package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// ColorPair is a foreground/background pair of tcell colour names.
type ColorPair struct {
	FG string `toml:"fg"`
	BG string `toml:"bg"`
}

func (c ColorPair) style() tcell.Style {
	style := tcell.StyleDefault
	if c.FG != "" {
		style = style.Foreground(tcell.GetColor(c.FG))
	}
	if c.BG != "" {
		style = style.Background(tcell.GetColor(c.BG))
	}
	return style
}

// duration decodes TOML strings such as "20ms".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type Config struct {
	TabWidth      int      `toml:"tab_width"`
	Throttle      bool     `toml:"throttle"`
	FrameInterval duration `toml:"frame_interval"`
	LineNumbers   bool     `toml:"line_numbers"`
	Colors        struct {
		Text     ColorPair `toml:"text"`
		Status   ColorPair `toml:"status"`
		Message  ColorPair `toml:"message"`
		Dialog   ColorPair `toml:"dialog"`
		Selected ColorPair `toml:"selected"`
		Gutter   ColorPair `toml:"gutter"`
	} `toml:"colors"`
	Log LogConfig `toml:"log"`
}

func defaultConfig() Config {
	var c Config
	c.TabWidth = defaultTabWidth
	c.Throttle = true
	c.FrameInterval = duration{defaultFrameInterval}
	c.Colors.Text = ColorPair{FG: "white"}
	c.Colors.Status = ColorPair{FG: "black", BG: "yellow"}
	c.Colors.Message = ColorPair{FG: "black", BG: "yellow"}
	c.Colors.Dialog = ColorPair{FG: "black", BG: "white"}
	c.Colors.Selected = ColorPair{FG: "black", BG: "yellow"}
	c.Colors.Gutter = ColorPair{FG: "gray"}
	c.Log.Level = "info"
	return c
}

// defaultConfigPath is <user config dir>/cedit/config.toml, or "" if the
// platform has no config dir.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cedit", "config.toml")
}

// loadConfig layers the file at path over the defaults. A missing file is
// not an error. Unknown keys are returned so the caller can warn about them.
func loadConfig(path string) (Config, []string, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil, nil
	}
	if err != nil {
		return cfg, nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, nil, fmt.Errorf("config %s: %w", path, err)
	}
	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return cfg, unknown, nil
}

func (c Config) validate() error {
	if c.TabWidth < 1 {
		return fmt.Errorf("tab_width must be at least 1, got %d", c.TabWidth)
	}
	if c.FrameInterval.Duration < 0 {
		return fmt.Errorf("frame_interval must not be negative, got %s", c.FrameInterval.Duration)
	}
	return nil
}

// styles are the resolved cell styles used when drawing.
type styles struct {
	text     tcell.Style
	status   tcell.Style
	message  tcell.Style
	dialog   tcell.Style
	selected tcell.Style
	gutter   tcell.Style
}

func (c Config) styles() styles {
	return styles{
		text:     c.Colors.Text.style(),
		status:   c.Colors.Status.style(),
		message:  c.Colors.Message.style(),
		dialog:   c.Colors.Dialog.style(),
		selected: c.Colors.Selected.style(),
		gutter:   c.Colors.Gutter.style(),
	}
}
