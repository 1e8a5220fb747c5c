package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"csvtex/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "csvtex",
	Short: "Convert CSV tables into LaTeX table environments",
	Long: `csvtex reads a CSV table (first row = column titles) and prints a LaTeX
table environment. Cells written as <mantissa>E<exponent>, e.g. 1.23E-4, are
typeset as $1.23 \times 10^{-4}$.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runConvert,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress warnings and informational output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().String("log-format", "text", "debug log format (text|json)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("config", "", "path to csvtex.toml (default: search upwards from the working directory)")

	// Without a subcommand the root converts, same as `csvtex convert`.
	addConvertFlags(rootCmd.Flags())
}

// main runs the root command. Any command error exits with status 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color against the stream the output goes to.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}
