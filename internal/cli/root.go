// Package cli provides the command-line interface for tonal.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/tonal-sh/tonal/internal/version"
)

var (
	// Global verbosity flag, shared by all commands.
	globalVerbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "tonal",
		Short: "Deterministic OKLCH palette generation and design-token validation",
		Long: `Tonal is a CLI for working with OKLCH design tokens.

It generates seven-role colour palettes from a base hue and a classical
harmony mode, repairing text and primary contrast to WCAG targets, and it
validates externally authored design-token documents against a fixed rule
set (colour model, font denylist, motion springs, geometry, uniqueness).`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command, primarily for tests.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(validateCmd)
}

// newLogger builds the command-level logger. Verbose mode lowers the level
// to Debug; everything goes to stderr so stdout stays clean for renderings.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if globalVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonal",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}
