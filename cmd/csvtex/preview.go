package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csvtex/internal/preview"
	"csvtex/internal/source"
)

var previewCmd = &cobra.Command{
	Use:   "preview [flags] [INPUT]",
	Short: "Show how each cell will be classified",
	Long: `Preview prints the table as an aligned grid. Cells that will be typeset as
powers of ten are highlighted; cells with an unusable exponent are marked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("rows", 20, "maximum number of data rows to show (0 = all)")
	previewCmd.Flags().Int("width", 32, "truncate cells wider than this (0 = never)")
	previewCmd.Flags().String("exponent", "", "exponent rendering (canonical|raw); defaults to the config file")
	previewCmd.Flags().String("encoding", "", "input encoding; defaults to the config file")
}

func runPreview(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	rows, err := cmd.Flags().GetInt("rows")
	if err != nil {
		return fmt.Errorf("failed to get rows flag: %w", err)
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}

	file, err := source.Load(path, settings.Encoding)
	if err != nil {
		return err
	}
	opts := preview.Options{
		Exponent: settings.Exponent,
		MaxRows:  rows,
		MaxWidth: width,
		Color:    useColor(cmd, os.Stdout),
	}
	grid, err := preview.Build(cmd.Context(), file.Reader(), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", file.Path, err)
	}
	return grid.Render(cmd.OutOrStdout(), opts)
}
