package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"coasterpaint/internal/ride"
)

// Config holds all configuration values of the viewer and the dump tool
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Paint   PaintConfig   `yaml:"paint"`
	Dump    DumpConfig    `yaml:"dump"`
	Golden  GoldenConfig  `yaml:"golden"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type ViewerConfig struct {
	// Ride is the registered style the demo layout is painted with
	Ride      string  `yaml:"ride"`
	TileWidth int     `yaml:"tile_width"`
	Zoom      float64 `yaml:"zoom"`
	Workers   int     `yaml:"workers"`
	// CacheSize is the number of painted tiles kept between frames
	CacheSize  int          `yaml:"cache_size"`
	ShowLabels bool         `yaml:"show_labels"`
	Layout     []LayoutTile `yaml:"layout"`
}

// LayoutTile places one piece of the demo layout on the map
type LayoutTile struct {
	Type   string `yaml:"type"`
	Seq    uint8  `yaml:"seq"`
	X      int32  `yaml:"x"`
	Y      int32  `yaml:"y"`
	Dir    uint8  `yaml:"dir"`
	Height int32  `yaml:"height"`
	Chain  bool   `yaml:"chain"`
}

type PaintConfig struct {
	Height  int32            `yaml:"height"`
	Colours ride.TrackColour `yaml:"colours"`
	// LogLevel enables library logging when set (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

type DumpConfig struct {
	Path string `yaml:"path"`
}

type GoldenConfig struct {
	Path    string `yaml:"path"`
	Workers int    `yaml:"workers"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	config.applyDefaults()
	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Default returns the configuration used when no file is given
func Default() *Config {
	var config Config
	config.applyDefaults()
	return &config
}

func (c *Config) applyDefaults() {
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = 1280
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = 720
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "Track Paint Viewer"
	}
	if c.Viewer.Ride == "" {
		c.Viewer.Ride = "twister"
	}
	if c.Viewer.TileWidth == 0 {
		c.Viewer.TileWidth = 64
	}
	if c.Viewer.Zoom == 0 {
		c.Viewer.Zoom = 1
	}
	if c.Viewer.CacheSize == 0 {
		c.Viewer.CacheSize = 512
	}
	if c.Paint.Height == 0 {
		c.Paint.Height = 64
	}
	if c.Paint.Colours == (ride.TrackColour{}) {
		c.Paint.Colours = ride.TrackColour{Main: 1, Additional: 2, Supports: 3}
	}
	if c.Dump.Path == "" {
		c.Dump.Path = "out/calls.jsonl.zst"
	}
	if c.Golden.Path == "" {
		c.Golden.Path = "out/golden.db"
	}
}

func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTileWidth() float64 {
	return float64(c.Viewer.TileWidth) * c.Viewer.Zoom
}

// GetTileHeight is half the tile width, the isometric ratio of the map
func (c *Config) GetTileHeight() float64 {
	return c.GetTileWidth() / 2
}

// GetHeightScale converts paint height units to screen pixels
func (c *Config) GetHeightScale() float64 {
	return c.GetTileWidth() / 64
}

func (c *Config) GetPaintHeight() int32 {
	return c.Paint.Height
}

// NewLogger returns a text logger writing to w at the configured level, or
// nil when no level is configured.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	if c.Paint.LogLevel == "" {
		return nil, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Paint.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
