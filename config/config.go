package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-colony/constant"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration, loadable from YAML
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Workers WorkersConfig `yaml:"workers"`
	Tick    TickConfig    `yaml:"tick"`
	Log     LogConfig     `yaml:"log"`
	Audio   AudioConfig   `yaml:"audio"`
}

type MapConfig struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Seed      int64   `yaml:"seed"` // 0 = random
	WallLevel float64 `yaml:"wall_level"`
	GoldCount int     `yaml:"gold_count"`
	GoldSize  int     `yaml:"gold_size"`
}

type WorkersConfig struct {
	Count int `yaml:"count"`
	Speed int `yaml:"speed"` // actions per second
}

type TickConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Map: MapConfig{
			Rows:      constant.DefaultMapRows,
			Cols:      constant.DefaultMapCols,
			WallLevel: constant.DefaultWallLevel,
			GoldCount: constant.DefaultGoldCount,
			GoldSize:  constant.DefaultGoldSize,
		},
		Workers: WorkersConfig{
			Count: constant.DefaultWorkerCount,
			Speed: constant.DefaultWorkerSpeed,
		},
		Tick: TickConfig{
			Interval: constant.DefaultTickInterval,
		},
		Log: LogConfig{
			Dir: "logs",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// Load reads path over the defaults; a missing file yields the defaults unchanged
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ranges; errors wrap ErrInvalid
func (c Config) Validate() error {
	switch {
	case c.Map.Rows <= 0 || c.Map.Cols <= 0:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalid, c.Map.Rows, c.Map.Cols)
	case c.Map.GoldCount < 0 || c.Map.GoldSize < 0:
		return fmt.Errorf("%w: negative gold settings", ErrInvalid)
	case c.Workers.Count < 0:
		return fmt.Errorf("%w: worker count %d", ErrInvalid, c.Workers.Count)
	case c.Workers.Speed < 1:
		return fmt.Errorf("%w: worker speed %d, need at least 1 action per second", ErrInvalid, c.Workers.Speed)
	case c.Tick.Interval <= 0:
		return fmt.Errorf("%w: tick interval %s", ErrInvalid, c.Tick.Interval)
	case c.Log.Debug && c.Log.Dir == "":
		return fmt.Errorf("%w: debug logging needs log.dir", ErrInvalid)
	}
	return nil
}
