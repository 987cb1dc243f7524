package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/1broseidon/platwin/internal/config"
	"github.com/1broseidon/platwin/internal/platform"
	"github.com/1broseidon/platwin/window"
)

type fakeWindow struct {
	pumps     int
	closeAt   int
	destroyed bool
}

func (f *fakeWindow) PumpEvents() {
	f.pumps++
}

func (f *fakeWindow) Size() (int, int) {
	return 320, 240
}

func (f *fakeWindow) ShouldClose() bool {
	return f.destroyed || (f.closeAt > 0 && f.pumps >= f.closeAt)
}

func (f *fakeWindow) Handle() platform.Handle {
	return platform.Handle{}
}

func (f *fakeWindow) Destroy() {
	f.destroyed = true
}

func TestRunFrameLoop_StopsWhenWindowCloses(t *testing.T) {
	w := &fakeWindow{closeAt: 3}
	n := runFrameLoop(context.Background(), w, time.Millisecond, 0)
	if n != 3 {
		t.Fatalf("frames = %d, want 3", n)
	}
}

func TestRunFrameLoop_StopsAtMaxFrames(t *testing.T) {
	w := &fakeWindow{}
	n := runFrameLoop(context.Background(), w, time.Millisecond, 5)
	if n != 5 || w.pumps != 5 {
		t.Fatalf("frames = %d, pumps = %d, want 5", n, w.pumps)
	}
}

func TestRunFrameLoop_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &fakeWindow{}
	n := runFrameLoop(ctx, w, time.Hour, 0)
	if n != 1 {
		t.Fatalf("frames = %d, want 1", n)
	}
}

func TestNewLogger_FormatFollowsTerminal(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, slog.LevelInfo, false).Info("hello", "width", 640)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "hello" || record["width"] != float64(640) {
		t.Fatalf("unexpected record %v", record)
	}

	buf.Reset()
	newLogger(&buf, slog.LevelInfo, true).Info("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("expected text output, got %q", buf.String())
	}

	buf.Reset()
	newLogger(&buf, slog.LevelWarn, true).Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered at warn, got %q", buf.String())
	}
}

func TestApplyOpenFlags_OverridesOnlyChangedFlags(t *testing.T) {
	if err := openCmd.Flags().Set("width", "1024"); err != nil {
		t.Fatalf("set width: %v", err)
	}
	if err := openCmd.Flags().Set("frame-interval", "40ms"); err != nil {
		t.Fatalf("set frame-interval: %v", err)
	}
	t.Cleanup(func() {
		openCmd.Flags().Set("width", "0")
		openCmd.Flags().Set("frame-interval", "0s")
		openCmd.Flags().Lookup("width").Changed = false
		openCmd.Flags().Lookup("frame-interval").Changed = false
	})

	cfg := config.DefaultConfig()
	cfg.Title = "from-file"
	if err := applyOpenFlags(openCmd, cfg); err != nil {
		t.Fatalf("applyOpenFlags: %v", err)
	}
	if cfg.Width != 1024 {
		t.Fatalf("width = %d, want 1024", cfg.Width)
	}
	if cfg.Height != config.DefaultHeight {
		t.Fatalf("height = %d, want default", cfg.Height)
	}
	if cfg.Title != "from-file" {
		t.Fatalf("title = %q, want from-file", cfg.Title)
	}
	if time.Duration(cfg.FrameInterval) != 40*time.Millisecond {
		t.Fatalf("frame_interval = %v, want 40ms", cfg.FrameInterval)
	}
}

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	printInfo(&buf)
	out := buf.String()
	if !strings.Contains(out, "platform: "+string(window.Platform)) {
		t.Fatalf("missing platform in %q", out)
	}
	if !strings.Contains(out, "window_system: "+window.System.String()) {
		t.Fatalf("missing window system in %q", out)
	}
	exts := window.System.VulkanInstanceExtensions()
	if got := strings.Contains(out, "vulkan_extensions: "); got != (len(exts) > 0) {
		t.Fatalf("vulkan_extensions line present = %v with extensions %v in %q", got, exts, out)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "platform: " + string(window.Platform) + "\ntitle: demo\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := runCLI(t, "config", "validate", "--config", path)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "config: ok") {
		t.Fatalf("unexpected validate output %q", out)
	}

	out, err = runCLI(t, "config", "explain", "--config", path, "title")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if !strings.Contains(out, "value: demo") || !strings.Contains(out, "source: file:") {
		t.Fatalf("unexpected explain output %q", out)
	}

	out, err = runCLI(t, "config", "print", "--config", path)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(out, "title: demo") || !strings.Contains(out, "frame_interval: 16ms") {
		t.Fatalf("unexpected print output %q", out)
	}
}

func TestConfigValidate_RejectsOtherPlatform(t *testing.T) {
	other := platform.Jetson
	if window.Platform == platform.Jetson {
		other = platform.Linux
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("platform: "+string(other)+"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := runCLI(t, "config", "validate", "--config", path); err == nil {
		t.Fatalf("expected platform mismatch error")
	}
}

func TestFormatSource(t *testing.T) {
	tests := []struct {
		src  config.Source
		want string
	}{
		{src: config.Source{Kind: config.SourceFile, File: "/c.yaml", Line: 2, Column: 8}, want: "file:/c.yaml:2:8"},
		{src: config.Source{Kind: config.SourceFile, File: "/c.yaml"}, want: "file:/c.yaml"},
		{src: config.Source{Kind: config.SourceDefault, Name: "defaults"}, want: "default:defaults"},
		{src: config.Source{Kind: config.SourceDefault}, want: "default"},
	}
	for _, tt := range tests {
		if got := formatSource(tt.src); got != tt.want {
			t.Fatalf("formatSource(%+v) = %q, want %q", tt.src, got, tt.want)
		}
	}
}
