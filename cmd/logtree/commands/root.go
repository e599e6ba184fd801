// Package commands implements the CLI commands for logtree.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("logtree version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(newEmitCmd(), newLevelsCmd())
}

var rootCmd = &cobra.Command{
	Use:   "logtree",
	Short: "Emit lines through a hierarchy of named loggers",
	Long: `logtree drives the logtree logging façade from the command line.

Each invocation builds a fresh registry, wires the requested loggers and
writes the resulting lines to standard output, which makes it easy to see
how level thresholds and parent cascades interact.`,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
