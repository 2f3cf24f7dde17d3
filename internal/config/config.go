package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// WindowSettings describes the host window
type WindowSettings struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
}

// AnimationSettings holds the transform lesson's animation parameters
type AnimationSettings struct {
	RotationSpeed float32 `yaml:"rotation_speed"` // degrees per second
	ScaleMin      float32 `yaml:"scale_min"`
	ScaleMax      float32 `yaml:"scale_max"`
	ScaleSpeed    float32 `yaml:"scale_speed"` // scale units per second
}

// Settings is the full program configuration
type Settings struct {
	Window     WindowSettings    `yaml:"window"`
	FPSLimit   int               `yaml:"fps_limit"`
	ClearColor [4]float32        `yaml:"clear_color"`
	Lesson     string            `yaml:"lesson"`
	Texture    string            `yaml:"texture"`
	ShaderDir  string            `yaml:"shader_dir"`
	LogLevel   string            `yaml:"log_level"`
	Animation  AnimationSettings `yaml:"animation"`
}

const (
	minWindowSize = 64
	minFPSLimit   = 10
	maxFPSLimit   = 1000
)

// Default returns the settings used when no config file is present
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  800,
			Height: 600,
			Title:  "gltutor",
			VSync:  true,
		},
		FPSLimit:   0,
		ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
		Lesson:     "triangle",
		LogLevel:   "info",
		Animation: AnimationSettings{
			RotationSpeed: 90,
			ScaleMin:      0.5,
			ScaleMax:      1.5,
			ScaleSpeed:    0.5,
		},
	}
}

// Load reads a YAML config file on top of the defaults.
// A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	s.Normalize()
	return s, nil
}

// Normalize clamps settings into usable ranges
func (s *Settings) Normalize() {
	if s.Window.Width < minWindowSize {
		s.Window.Width = minWindowSize
	}
	if s.Window.Height < minWindowSize {
		s.Window.Height = minWindowSize
	}
	if s.Window.Title == "" {
		s.Window.Title = "gltutor"
	}
	s.FPSLimit = clampFPSLimit(s.FPSLimit)

	for i := range s.ClearColor {
		s.ClearColor[i] = clamp01(s.ClearColor[i])
	}

	a := &s.Animation
	if a.ScaleMin <= 0 {
		a.ScaleMin = 0.1
	}
	if a.ScaleMax < a.ScaleMin {
		a.ScaleMax = a.ScaleMin
	}
	if a.ScaleSpeed < 0 {
		a.ScaleSpeed = -a.ScaleSpeed
	}
}

func clampFPSLimit(limit int) int {
	// 0 or negative means unlimited
	if limit <= 0 {
		return 0
	}
	if limit < minFPSLimit {
		return minFPSLimit
	}
	if limit > maxFPSLimit {
		return maxFPSLimit
	}
	return limit
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// frameSettings holds values read by the frame loop every tick
type frameSettings struct {
	mu       sync.RWMutex
	fpsLimit int
}

var globalFrameSettings = &frameSettings{}

// GetFPSLimit returns the current frame cap, 0 when unlimited
func GetFPSLimit() int {
	globalFrameSettings.mu.RLock()
	defer globalFrameSettings.mu.RUnlock()
	return globalFrameSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalFrameSettings.mu.Lock()
	defer globalFrameSettings.mu.Unlock()
	globalFrameSettings.fpsLimit = clampFPSLimit(limit)
}
