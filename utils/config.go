package utils

import (
	"encoding/json"
	"flag"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"
)

// PatternNames lists the accepted values of Config.Pattern
var PatternNames = []string{"none", "random", "glider", "lwss", "pulsar", "glider-gun", "r-pentomino", "acorn"}

// Config holds the configuration for the simulation and its hosts
type Config struct {
	TickInterval        time.Duration `json:"tick_interval"`
	MinTickInterval     time.Duration `json:"min_tick_interval"`
	MaxTickInterval     time.Duration `json:"max_tick_interval"`
	TickIntervalStep    time.Duration `json:"tick_interval_step"`
	MaxGenerations      int           `json:"max_generations"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	AutoReset           bool          `json:"auto_reset"`

	UseParallel       bool `json:"use_parallel"`
	ParallelThreshold int  `json:"parallel_threshold"`
	Workers           int  `json:"workers"`
	UseMemoryPool     bool `json:"use_memory_pool"`

	CameraScale     float32 `json:"camera_scale"`
	MinCameraScale  float32 `json:"min_camera_scale"`
	MaxCameraScale  float32 `json:"max_camera_scale"`
	CameraScaleStep float32 `json:"camera_scale_step"`
	CameraPanSpeed  float32 `json:"camera_pan_speed"`
	ViewportWidth   int     `json:"viewport_width"`
	ViewportHeight  int     `json:"viewport_height"`

	Pattern       string  `json:"pattern"`
	PatternX      int     `json:"pattern_x"`
	PatternY      int     `json:"pattern_y"`
	RandomSize    int     `json:"random_size"`
	RandomDensity float64 `json:"random_density"`
	Seed          int64   `json:"seed"`

	LogLevel    string `json:"log_level"`
	Interactive bool   `json:"interactive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		TickInterval:        200 * time.Millisecond,
		MinTickInterval:     100 * time.Millisecond,
		MaxTickInterval:     5 * time.Second,
		TickIntervalStep:    100 * time.Millisecond,
		MaxGenerations:      0,
		StagnationThreshold: 5,
		AutoReset:           false,
		UseParallel:         true,
		ParallelThreshold:   2048,
		Workers:             0, // runtime.NumCPU
		UseMemoryPool:       true,
		CameraScale:         0.5,
		MinCameraScale:      0.1,
		MaxCameraScale:      1.0,
		CameraScaleStep:     0.1,
		CameraPanSpeed:      10,
		ViewportWidth:       60,
		ViewportHeight:      30,
		Pattern:             "glider-gun",
		PatternX:            -18,
		PatternY:            -4,
		RandomSize:          48,
		RandomDensity:       0.15,
		Seed:                42,
		LogLevel:            "info",
		Interactive:         false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the configuration for inconsistent values
func (c Config) Validate() error {
	switch {
	case c.MinTickInterval <= 0 || c.MaxTickInterval <= 0 || c.TickIntervalStep <= 0:
		return errors.New("[Validate] tick intervals must be positive")
	case c.MinTickInterval > c.MaxTickInterval:
		return errors.Errorf("[Validate] min_tick_interval %v exceeds max_tick_interval %v", c.MinTickInterval, c.MaxTickInterval)
	case c.TickInterval < c.MinTickInterval || c.TickInterval > c.MaxTickInterval:
		return errors.Errorf("[Validate] tick_interval %v outside [%v, %v]", c.TickInterval, c.MinTickInterval, c.MaxTickInterval)
	case c.MinCameraScale <= 0 || c.CameraScaleStep <= 0:
		return errors.New("[Validate] camera scale bounds and step must be positive")
	case c.MinCameraScale > c.MaxCameraScale:
		return errors.Errorf("[Validate] min_camera_scale %v exceeds max_camera_scale %v", c.MinCameraScale, c.MaxCameraScale)
	case c.CameraScale < c.MinCameraScale || c.CameraScale > c.MaxCameraScale:
		return errors.Errorf("[Validate] camera_scale %v outside [%v, %v]", c.CameraScale, c.MinCameraScale, c.MaxCameraScale)
	case c.ViewportWidth <= 0 || c.ViewportHeight <= 0:
		return errors.Errorf("[Validate] viewport %dx%d must be positive", c.ViewportWidth, c.ViewportHeight)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density %v outside [0, 1]", c.RandomDensity)
	case c.Workers < 0 || c.ParallelThreshold < 0 || c.MaxGenerations < 0 || c.RandomSize < 0:
		return errors.New("[Validate] workers, parallel_threshold, max_generations and random_size must not be negative")
	case !slices.Contains(PatternNames, c.Pattern):
		return errors.Errorf("[Validate] unknown pattern: %q", c.Pattern)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "[Validate] bad log_level")
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "interval between generations")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = unbounded)")
	fs.BoolVar(&c.AutoReset, "auto-reset", c.AutoReset, "restore the initial pattern when the world stagnates")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "count candidates on multiple workers")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel workers (0 = one per CPU)")
	fs.IntVar(&c.ViewportWidth, "width", c.ViewportWidth, "viewport width")
	fs.IntVar(&c.ViewportHeight, "height", c.ViewportHeight, "viewport height")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern")
	fs.IntVar(&c.PatternX, "x", c.PatternX, "pattern origin x")
	fs.IntVar(&c.PatternY, "y", c.PatternY, "pattern origin y")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "start the GUI paused for editing")
}
