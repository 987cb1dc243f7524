package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/1broseidon/platwin/internal/platform"
)

const (
	DefaultTitle         = "platwin"
	DefaultWidth         = 1280
	DefaultHeight        = 720
	DefaultLogLevel      = "info"
	DefaultFrameInterval = 16 * time.Millisecond

	// X11 window dimensions are 16-bit on the wire.
	maxDimension = 1<<16 - 1
)

// Duration is a time.Duration that prints as "16ms" rather than nanoseconds.
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Config holds the application configuration.
type Config struct {
	Platform      string   `yaml:"platform,omitempty"`
	Display       string   `yaml:"display,omitempty"`
	Title         string   `yaml:"title"`
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	Fullscreen    bool     `yaml:"fullscreen"`
	LogLevel      string   `yaml:"log_level"`
	FrameInterval Duration `yaml:"frame_interval"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:         DefaultTitle,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		LogLevel:      DefaultLogLevel,
		FrameInterval: Duration(DefaultFrameInterval),
	}
}

// WindowOptions converts the config into backend options. Logger and event
// callback are left for the caller.
func (c *Config) WindowOptions() platform.Options {
	return platform.Options{
		Width:      c.Width,
		Height:     c.Height,
		Title:      c.Title,
		Fullscreen: c.Fullscreen,
		Display:    c.Display,
	}
}

// CheckPlatform reports whether the configured platform, if any, is the one
// compiled into the running binary.
func (c *Config) CheckPlatform(compiled platform.Platform) error {
	if strings.TrimSpace(c.Platform) == "" {
		return nil
	}
	p, err := platform.ParsePlatform(c.Platform)
	if err != nil {
		return &ValidationError{Path: "platform", Err: err}
	}
	if p != compiled {
		return &ValidationError{
			Path: "platform",
			Err:  fmt.Errorf("%w: configured %q but this binary was built for %q", platform.ErrUnsupportedPlatform, p, compiled),
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Platform) != "" {
		if _, err := platform.ParsePlatform(c.Platform); err != nil {
			return &ValidationError{Path: "platform", Err: err}
		}
	}
	if c.Width <= 0 || c.Width > maxDimension {
		return &ValidationError{Path: "width", Err: fmt.Errorf("width must be between 1 and %d", maxDimension)}
	}
	if c.Height <= 0 || c.Height > maxDimension {
		return &ValidationError{Path: "height", Err: fmt.Errorf("height must be between 1 and %d", maxDimension)}
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	if c.FrameInterval <= 0 {
		return &ValidationError{Path: "frame_interval", Err: fmt.Errorf("frame_interval must be > 0")}
	}
	return nil
}
