package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1broseidon/platwin/internal/config"
	"github.com/1broseidon/platwin/internal/platform"
	"github.com/1broseidon/platwin/window"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Create a window and pump its events until it is closed",
	Long: `Create a window from the config file and flags, then pump events once per
frame_interval until the window is asked to close or the process receives
SIGINT or SIGTERM. Dispmanx and the stub never request a close, so a signal
is the only way to stop them.`,
	Args: cobra.NoArgs,
	RunE: runOpen,
}

func init() {
	openCmd.Flags().String("title", "", "Window title")
	openCmd.Flags().Int("width", 0, "Client width in pixels")
	openCmd.Flags().Int("height", 0, "Client height in pixels")
	openCmd.Flags().Bool("fullscreen", false, "Cover the whole screen")
	openCmd.Flags().String("display", "", "X display to connect to (X11 only)")
	openCmd.Flags().Duration("frame-interval", 0, "Delay between event pumps")
	openCmd.Flags().Int("frames", 0, "Stop after this many frames (0 runs until closed)")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	res, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg := res.Config
	if err := cfg.CheckPlatform(window.Platform); err != nil {
		return err
	}
	if err := applyOpenFlags(cmd, cfg); err != nil {
		return err
	}

	logger, err := loggerFor(cmd, cfg)
	if err != nil {
		return err
	}
	logger = logger.With("platform", string(window.Platform))

	opts := cfg.WindowOptions()
	opts.Logger = logger
	opts.OnEvent = func(ev platform.Event) {
		switch e := ev.(type) {
		case platform.ResizeEvent:
			logger.Info("window resized", "width", e.Width, "height", e.Height)
		case platform.CloseRequestEvent:
			logger.Info("close requested")
		case platform.KeyEvent:
			logger.Debug("key pressed", "code", e.Code, "name", e.Name)
		}
	}

	w, err := window.Create(opts)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer w.Destroy()

	width, height := w.Size()
	h := w.Handle()
	logger.Info("window open",
		"system", h.System.String(),
		"native_window", h.NativeWindow,
		"width", width,
		"height", height)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frames, _ := cmd.Flags().GetInt("frames")
	n := runFrameLoop(ctx, w, time.Duration(cfg.FrameInterval), frames)
	logger.Info("frame loop finished", "frames", n, "should_close", w.ShouldClose())
	return nil
}

// applyOpenFlags lets explicitly set flags override the loaded config and
// re-validates the result.
func applyOpenFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Title, _ = flags.GetString("title")
	}
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("fullscreen") {
		cfg.Fullscreen, _ = flags.GetBool("fullscreen")
	}
	if flags.Changed("display") {
		cfg.Display, _ = flags.GetString("display")
	}
	if flags.Changed("frame-interval") {
		d, _ := flags.GetDuration("frame-interval")
		cfg.FrameInterval = config.Duration(d)
	}
	return cfg.Validate()
}

// runFrameLoop pumps w once per interval until it should close, ctx is done,
// or maxFrames frames have run (when maxFrames > 0). It returns the number
// of frames pumped.
func runFrameLoop(ctx context.Context, w platform.Backend, interval time.Duration, maxFrames int) int {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	frames := 0
	for {
		w.PumpEvents()
		frames++
		if w.ShouldClose() {
			return frames
		}
		if maxFrames > 0 && frames >= maxFrames {
			return frames
		}

		select {
		case <-ctx.Done():
			return frames
		case <-ticker.C:
		}
	}
}
