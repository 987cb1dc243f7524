package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Include is one include entry and where it was written.
type Include struct {
	Path   string
	Line   int
	Column int
}

// IncludeList accepts a single path or a list of paths. Each path is a file
// or a directory of *.yaml files:
//
//	include: conf.d
//
//	include:
//	  - base.yaml
//	  - ~/.config/platwin/local.yaml
type IncludeList []Include

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	items := []*yaml.Node{value}
	if value.Kind == yaml.SequenceNode {
		items = value.Content
	}
	out := make(IncludeList, 0, len(items))
	for _, item := range items {
		if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
			return fmt.Errorf("line %d: include must be a path or a list of paths", item.Line)
		}
		out = append(out, Include{Path: item.Value, Line: item.Line, Column: item.Column})
	}
	*l = out
	return nil
}

// RawConfig is one YAML file as written. Nil fields were not set and fall
// through to earlier files or the defaults.
type RawConfig struct {
	Include       IncludeList `yaml:"include"`
	Platform      *string     `yaml:"platform"`
	Display       *string     `yaml:"display"`
	Title         *string     `yaml:"title"`
	Width         *int        `yaml:"width"`
	Height        *int        `yaml:"height"`
	Fullscreen    *bool       `yaml:"fullscreen"`
	LogLevel      *string     `yaml:"log_level"`
	FrameInterval *string     `yaml:"frame_interval"`
}

// merge applies override on top of r.
func (r RawConfig) merge(override RawConfig) RawConfig {
	out := r
	if override.Platform != nil {
		out.Platform = override.Platform
	}
	if override.Display != nil {
		out.Display = override.Display
	}
	if override.Title != nil {
		out.Title = override.Title
	}
	if override.Width != nil {
		out.Width = override.Width
	}
	if override.Height != nil {
		out.Height = override.Height
	}
	if override.Fullscreen != nil {
		out.Fullscreen = override.Fullscreen
	}
	if override.LogLevel != nil {
		out.LogLevel = override.LogLevel
	}
	if override.FrameInterval != nil {
		out.FrameInterval = override.FrameInterval
	}
	out.Include = nil
	return out
}
