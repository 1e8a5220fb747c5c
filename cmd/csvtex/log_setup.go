package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// newLogger builds the debug logger. Without --verbose everything is discarded.
func newLogger(cmd *cobra.Command, w io.Writer) *slog.Logger {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	format, _ := cmd.Root().PersistentFlags().GetString("log-format")
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
