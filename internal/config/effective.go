package config

import (
	"fmt"
	"strings"
	"time"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig overlays raw onto DefaultConfig. It does not validate
// ranges; call Validate on the result.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.Platform != nil {
		cfg.Platform = strings.TrimSpace(*raw.Platform)
	}
	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if raw.Title != nil {
		cfg.Title = *raw.Title
	}
	if raw.Width != nil {
		cfg.Width = *raw.Width
	}
	if raw.Height != nil {
		cfg.Height = *raw.Height
	}
	if raw.Fullscreen != nil {
		cfg.Fullscreen = *raw.Fullscreen
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.FrameInterval != nil {
		d, err := time.ParseDuration(strings.TrimSpace(*raw.FrameInterval))
		if err != nil {
			return nil, &ValidationError{Path: "frame_interval", Err: fmt.Errorf("invalid duration %q (want e.g. \"16ms\")", *raw.FrameInterval)}
		}
		cfg.FrameInterval = Duration(d)
	}

	return cfg, nil
}
