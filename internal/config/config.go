package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"Viewer3D/internal/selection"

	"go.uber.org/zap/zapcore"
)

const DefaultPath = "viewer_config.json"

type WindowConfig struct {
	Width  int32  `json:"width"`
	Height int32  `json:"height"`
	Title  string `json:"title"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// Config is the viewer configuration stored as JSON.
type Config struct {
	Window     WindowConfig `json:"window"`
	ClearColor [3]float32   `json:"clear_color"`

	DefaultTool string `json:"default_tool"`
	// DefaultEntity names the mesh picked after a reset. The selection
	// always starts empty; an empty name means resets clear to nothing.
	DefaultEntity string `json:"default_entity,omitempty"`
	// RotationSync makes rotation handles follow the attached mesh.
	RotationSync    bool    `json:"rotation_sync"`
	DragSensitivity float32 `json:"drag_sensitivity"`
	EventQueueSize  int     `json:"event_queue_size"`

	LogLevel string `json:"log_level"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "Viewer3D",
			X:      100,
			Y:      100,
		},
		ClearColor:      [3]float32{0.2, 0.2, 0.3},
		DefaultTool:     selection.ToolCursor.String(),
		DragSensitivity: 0.05,
		EventQueueSize:  256,
		LogLevel:        "info",
	}
}

// Load reads the configuration at path on top of the defaults. A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if _, ok := selection.ParseTool(c.DefaultTool); !ok {
		return fmt.Errorf("unknown default tool %q", c.DefaultTool)
	}
	if c.DragSensitivity <= 0 {
		return fmt.Errorf("drag sensitivity %f must be positive", c.DragSensitivity)
	}
	if c.EventQueueSize <= 0 {
		return fmt.Errorf("event queue size %d must be positive", c.EventQueueSize)
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Tool returns the configured default tool.
func (c Config) Tool() selection.Tool {
	t, _ := selection.ParseTool(c.DefaultTool)
	return t
}
