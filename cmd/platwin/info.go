package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/1broseidon/platwin/window"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the platform and window system compiled into this binary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printInfo(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printInfo(w io.Writer) {
	tags := window.Platform.BuildTags()
	fmt.Fprintf(w, "platform: %s\n", window.Platform)
	fmt.Fprintf(w, "window_system: %s\n", window.System)
	fmt.Fprintf(w, "goos: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "goarch: %s\n", runtime.GOARCH)
	if len(tags) > 0 {
		fmt.Fprintf(w, "build_tags: %s\n", strings.Join(tags, ","))
	}
	if exts := window.System.VulkanInstanceExtensions(); len(exts) > 0 {
		fmt.Fprintf(w, "vulkan_extensions: %s\n", strings.Join(exts, ","))
	}
}
