package config

import (
	"fmt"
)

// Explain returns the effective value at the given key and where it came
// from: a file position, or the defaults.
//
// Supported keys:
//
//	platform
//	display
//	title
//	width
//	height
//	fullscreen
//	log_level
//	frame_interval
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

// Keys lists every key Explain understands, in file order.
func Keys() []string {
	return []string{
		"platform",
		"display",
		"title",
		"width",
		"height",
		"fullscreen",
		"log_level",
		"frame_interval",
	}
}

func lookupValue(cfg *Config, path string) (any, error) {
	switch path {
	case "platform":
		return cfg.Platform, nil
	case "display":
		return cfg.Display, nil
	case "title":
		return cfg.Title, nil
	case "width":
		return cfg.Width, nil
	case "height":
		return cfg.Height, nil
	case "fullscreen":
		return cfg.Fullscreen, nil
	case "log_level":
		return cfg.LogLevel, nil
	case "frame_interval":
		return cfg.FrameInterval.String(), nil
	default:
		return nil, fmt.Errorf("unknown path: %s", path)
	}
}
