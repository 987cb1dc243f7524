package main

import (
	"fmt"

	"github.com/1broseidon/platwin/internal/config"
	"github.com/1broseidon/platwin/window"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration file",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the config and report the first error",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := res.Config.CheckPlatform(window.Platform); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "config: ok")
		return nil
	},
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective config (or the defaults with --defaults)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if defaults, _ := cmd.Flags().GetBool("defaults"); !defaults {
			res, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg = res.Config
			for _, file := range res.Files {
				fmt.Fprintf(cmd.OutOrStdout(), "# loaded: %s\n", file)
			}
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configExplainCmd = &cobra.Command{
	Use:       "explain <key>",
	Short:     "Show a config value and where it was set",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		value, src, err := config.Explain(res, args[0])
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(value)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "path: %s\n", args[0])
		fmt.Fprintf(w, "source: %s\n", formatSource(src))
		fmt.Fprintf(w, "value: %s", out)
		return nil
	},
}

func init() {
	configPrintCmd.Flags().Bool("defaults", false, "Print built-in defaults (no files)")
	configCmd.AddCommand(configValidateCmd, configPrintCmd, configExplainCmd)
	rootCmd.AddCommand(configCmd)
}

func formatSource(src config.Source) string {
	switch src.Kind {
	case config.SourceFile:
		if src.File == "" {
			return "file"
		}
		if src.Line > 0 {
			return fmt.Sprintf("file:%s:%d:%d", src.File, src.Line, src.Column)
		}
		return "file:" + src.File
	case config.SourceDefault:
		if src.Name != "" {
			return "default:" + src.Name
		}
		return "default"
	default:
		return string(src.Kind)
	}
}
