package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HoldThreshold != DefaultHoldThreshold {
		t.Errorf("HoldThreshold = %v, want %v", cfg.HoldThreshold, DefaultHoldThreshold)
	}
	if cfg.FrameWidth != DefaultFrameWidth || cfg.FrameHeight != DefaultFrameHeight {
		t.Errorf("resolution = %dx%d, want %dx%d",
			cfg.FrameWidth, cfg.FrameHeight, DefaultFrameWidth, DefaultFrameHeight)
	}
	if cfg.IdleFPS != DefaultIdleFPS || cfg.ActiveFPS != DefaultActiveFPS {
		t.Errorf("fps = %d/%d, want %d/%d",
			cfg.IdleFPS, cfg.ActiveFPS, DefaultIdleFPS, DefaultActiveFPS)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing settings file")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "camera_id: 2\nidle_fps: 10\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CameraID != 2 {
		t.Errorf("CameraID = %d, want 2", cfg.CameraID)
	}
	if cfg.IdleFPS != 10 {
		t.Errorf("IdleFPS = %d, want 10", cfg.IdleFPS)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	// Unset fields still get defaults.
	if cfg.HoldThreshold != DefaultHoldThreshold {
		t.Errorf("HoldThreshold = %v, want %v", cfg.HoldThreshold, DefaultHoldThreshold)
	}
}

func TestValidate(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		if err := Validate(nil); err == nil {
			t.Error("expected error for nil config")
		}
	})

	t.Run("negative camera id", func(t *testing.T) {
		cfg := Default()
		cfg.CameraID = -1
		if err := Validate(cfg); err == nil {
			t.Error("expected error for negative camera id")
		}
	})

	t.Run("active below idle", func(t *testing.T) {
		cfg := Default()
		cfg.IdleFPS = 20
		cfg.ActiveFPS = 10
		if err := Validate(cfg); err == nil {
			t.Error("expected error when active_fps is below idle_fps")
		}
	})

	t.Run("zero values get defaults", func(t *testing.T) {
		cfg := &Config{}
		if err := Validate(cfg); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if cfg.HoldThreshold != 3*time.Second {
			t.Errorf("HoldThreshold = %v, want 3s", cfg.HoldThreshold)
		}
		if cfg.MotionThreshold != DefaultMotionThreshold {
			t.Errorf("MotionThreshold = %v, want %v", cfg.MotionThreshold, DefaultMotionThreshold)
		}
	})
}
