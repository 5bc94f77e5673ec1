// Package config loads runtime settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SavePath string `yaml:"save_path"`

	Backup BackupConfig `yaml:"backup"`
	Window WindowConfig `yaml:"window"`

	// FPSLimit caps the frame rate when > 0. With vsync on it is usually left
	// at 0.
	FPSLimit int `yaml:"fps_limit"`

	// FixedStepMs switches the simulation from one step per frame with the
	// measured delta to a fixed-step accumulator. MaxStepsPerFrame bounds the
	// catch-up after a stall.
	FixedStepMs      float64 `yaml:"fixed_step_ms"`
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"`

	SlowFrameMs float64 `yaml:"slow_frame_ms"`
	ShadersDir  string  `yaml:"shaders_dir"`
}

type BackupConfig struct {
	Dir  string `yaml:"dir"`
	Keep int    `yaml:"keep"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

func Default() Config {
	return Config{
		SavePath: "data/game.sav",
		Backup: BackupConfig{
			Dir:  "data/backups",
			Keep: 5,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "ZeeCraft",
			VSync:  true,
		},
		MaxStepsPerFrame: 5,
		SlowFrameMs:      16,
		ShadersDir:       "assets/shaders",
	}
}

// Load reads path over Default. An empty path or a missing file yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.SavePath == "" {
		errs = append(errs, errors.New("save_path is empty"))
	}
	if c.Backup.Keep < 0 {
		errs = append(errs, fmt.Errorf("backup.keep %d < 0", c.Backup.Keep))
	}
	if c.Backup.Keep > 0 && c.Backup.Dir == "" {
		errs = append(errs, errors.New("backup.dir is empty"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("fps_limit %d < 0", c.FPSLimit))
	}
	if c.FixedStepMs < 0 {
		errs = append(errs, fmt.Errorf("fixed_step_ms %v < 0", c.FixedStepMs))
	}
	if c.FixedStepMs > 0 && c.MaxStepsPerFrame <= 0 {
		errs = append(errs, fmt.Errorf("max_steps_per_frame %d <= 0", c.MaxStepsPerFrame))
	}
	if c.SlowFrameMs < 0 {
		errs = append(errs, fmt.Errorf("slow_frame_ms %v < 0", c.SlowFrameMs))
	}
	return errors.Join(errs...)
}
