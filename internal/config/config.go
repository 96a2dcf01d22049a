// Package config loads runtime settings for the abhaya safety monitor.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds camera, pipeline and alarm settings.
type Config struct {
	// CameraID is the capture device index passed to OpenCV.
	CameraID int `yaml:"camera_id"`
	// FrameWidth and FrameHeight are the requested capture resolution.
	FrameWidth  int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`
	// IdleFPS is the sampling rate while the scene is still.
	IdleFPS int `yaml:"idle_fps"`
	// ActiveFPS is the sampling rate once motion is seen.
	ActiveFPS int `yaml:"active_fps"`
	// MotionThreshold is the percentage of changed pixels that counts as
	// motion.
	MotionThreshold float64 `yaml:"motion_threshold"`
	// HoldThreshold is how long an open palm must be held to raise SOS.
	HoldThreshold time.Duration `yaml:"hold_threshold"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default values applied by Validate when a setting is unset.
const (
	DefaultConfigFilename  = "abhaya-settings.yaml"
	DefaultFrameWidth      = 640
	DefaultFrameHeight     = 480
	DefaultIdleFPS         = 5
	DefaultActiveFPS       = 30
	DefaultMotionThreshold = 1.0 // 1% pixel change
	DefaultHoldThreshold   = 3 * time.Second
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeCamera is returned for camera indices below zero.
	errNegativeCamera = errors.New("camera_id must not be negative")
)

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		CameraID:        0,
		FrameWidth:      DefaultFrameWidth,
		FrameHeight:     DefaultFrameHeight,
		IdleFPS:         DefaultIdleFPS,
		ActiveFPS:       DefaultActiveFPS,
		MotionThreshold: DefaultMotionThreshold,
		HoldThreshold:   DefaultHoldThreshold,
		LogLevel:        "info",
	}
}

// Load reads settings from the provided path. An empty path skips the file
// and returns defaults, so the monitor runs without any configuration.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the provided settings and fills unset values with
// defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.CameraID < 0 {
		return errNegativeCamera
	}

	if cfg.FrameWidth <= 0 {
		cfg.FrameWidth = DefaultFrameWidth
	}

	if cfg.FrameHeight <= 0 {
		cfg.FrameHeight = DefaultFrameHeight
	}

	if cfg.IdleFPS <= 0 {
		cfg.IdleFPS = DefaultIdleFPS
	}

	if cfg.ActiveFPS <= 0 {
		cfg.ActiveFPS = DefaultActiveFPS
	}

	if cfg.ActiveFPS < cfg.IdleFPS {
		return fmt.Errorf("active_fps %d is below idle_fps %d", cfg.ActiveFPS, cfg.IdleFPS)
	}

	if cfg.MotionThreshold <= 0 {
		cfg.MotionThreshold = DefaultMotionThreshold
	}

	if cfg.HoldThreshold <= 0 {
		cfg.HoldThreshold = DefaultHoldThreshold
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return nil
}
