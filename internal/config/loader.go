package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
)

type Source struct {
	Kind   SourceKind
	Name   string // for default
	File   string
	Line   int
	Column int
}

type LoadResult struct {
	Config  *Config
	Sources map[string]Source // key -> file position of the value that won
	Files   []string          // every loaded file, in merge order
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "platwin", "config.yaml"), nil
}

// LoadFromPath loads path and its includes onto the defaults and validates
// the result. A missing file yields the defaults.
func LoadFromPath(path string) (*LoadResult, error) {
	l := &loader{
		sources: make(map[string]Source),
		seen:    make(map[string]bool),
	}
	if _, err := os.Stat(path); err == nil {
		if err := l.loadFile(path, nil); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg, err := BuildEffectiveConfig(l.raw)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		return nil, l.withSource(err)
	}
	return &LoadResult{Config: cfg, Sources: l.sources, Files: l.files}, nil
}

// loader merges one config file and everything it includes. Includes are
// applied before the file naming them, so the including file wins.
type loader struct {
	raw     RawConfig
	sources map[string]Source
	files   []string
	seen    map[string]bool
}

// loadFile merges file after its includes. chain holds the files currently
// being loaded, outermost first.
func (l *loader) loadFile(path string, chain []string) error {
	file, err := absPath(path)
	if err != nil {
		return err
	}
	if slices.Contains(chain, file) {
		return fmt.Errorf("include cycle detected: %s -> %s", strings.Join(chain, " -> "), file)
	}
	if l.seen[file] {
		return nil
	}
	l.seen[file] = true

	raw, keys, err := parseFile(file)
	if err != nil {
		return err
	}

	chain = append(chain, file)
	for _, inc := range raw.Include {
		targets, err := includeTargets(file, inc.Path)
		if err != nil {
			return fmt.Errorf("%s:%d:%d: include %q: %w", file, inc.Line, inc.Column, inc.Path, err)
		}
		for _, target := range targets {
			if err := l.loadFile(target, chain); err != nil {
				return err
			}
		}
	}

	l.raw = l.raw.merge(raw)
	for key, src := range keys {
		l.sources[key] = src
	}
	l.files = append(l.files, file)
	return nil
}

// withSource points a ValidationError at the file position of its key.
func (l *loader) withSource(err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		if src, ok := l.sources[verr.Path]; ok {
			verr.Source = src
		}
	}
	return err
}

// parseFile decodes one file, rejecting unknown keys, and records where
// each top-level key's value was written.
func parseFile(file string) (RawConfig, map[string]Source, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return RawConfig{}, nil, fmt.Errorf("%s: failed to read: %w", file, err)
	}

	var raw RawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return RawConfig{}, nil, fmt.Errorf("%s: %w", file, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return RawConfig{}, nil, fmt.Errorf("%s: failed to parse yaml: %w", file, err)
	}
	return raw, keyPositions(&doc, file), nil
}

// keyPositions maps each top-level key to its value's position. Every
// platwin key is a scalar, so nested nodes are not walked.
func keyPositions(doc *yaml.Node, file string) map[string]Source {
	out := make(map[string]Source)
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return out
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return out
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		val := root.Content[i+1]
		out[root.Content[i].Value] = Source{
			Kind:   SourceFile,
			File:   file,
			Line:   val.Line,
			Column: val.Column,
		}
	}
	return out
}

// includeTargets resolves an include entry against the including file. "~"
// is the home directory; a directory expands to its *.yaml and *.yml files
// in name order.
func includeTargets(from, include string) ([]string, error) {
	if include == "" {
		return nil, errors.New("path is empty")
	}
	if include == "~" || strings.HasPrefix(include, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		include = filepath.Join(home, strings.TrimPrefix(include, "~"))
	}
	if !filepath.IsAbs(include) {
		include = filepath.Join(filepath.Dir(from), include)
	}

	info, err := os.Stat(include)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{include}, nil
	}

	entries, err := os.ReadDir(include)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, ent := range entries {
		switch strings.ToLower(filepath.Ext(ent.Name())) {
		case ".yaml", ".yml":
			if !ent.IsDir() {
				files = append(files, filepath.Join(include, ent.Name()))
			}
		}
	}
	return files, nil
}

// absPath resolves symlinks when it can so one file is never loaded twice
// under two names.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
