package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/1broseidon/platwin/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "platwin",
	Short:         "Open a native window for a rendering surface",
	Long:          "platwin opens one native window through the backend compiled into this binary (Win32, X11, VideoCore dispmanx or a stub) and keeps it alive with a frame loop.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "platwin:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: ~/.config/platwin/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides log_level)")
}

// loadConfig loads the file named by --config, or the default location.
func loadConfig(cmd *cobra.Command) (*config.LoadResult, error) {
	path, _ := cmd.Flags().GetString("config")
	if strings.TrimSpace(path) == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	return config.LoadFromPath(path)
}

// loggerFor builds the process logger from --log-level, falling back to the
// configured level.
func loggerFor(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	levelName := cfg.LogLevel
	if flagLevel, _ := cmd.Flags().GetString("log-level"); flagLevel != "" {
		levelName = flagLevel
	}
	level, err := config.ParseLogLevel(levelName)
	if err != nil {
		return nil, err
	}
	return newLogger(os.Stderr, level, stderrIsTerminal()), nil
}
