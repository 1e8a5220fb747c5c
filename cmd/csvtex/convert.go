package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"csvtex/internal/cell"
	"csvtex/internal/config"
	"csvtex/internal/diag"
	"csvtex/internal/diagfmt"
	"csvtex/internal/observ"
	"csvtex/internal/source"
	"csvtex/internal/table"
	"csvtex/internal/tcache"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] [INPUT]",
	Short: "Convert a CSV file (or stdin) into a LaTeX table",
	Long: `Convert reads INPUT (or standard input when omitted or "-") and writes a LaTeX
table environment to --output (or standard output).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	addConvertFlags(convertCmd.Flags())
}

// addConvertFlags registers the conversion flags. The root command carries
// them too, so `csvtex [flags] INPUT` behaves like `csvtex convert`.
func addConvertFlags(f *pflag.FlagSet) {
	f.StringP("output", "o", "", "write the table to this file instead of stdout")
	f.StringP("title", "t", table.DefaultTitle, "table caption")
	f.StringP("label", "l", table.DefaultLabel, "cross-reference label (emitted as tab:<label>)")
	f.BoolP("bordered", "d", false, "separate columns with vertical rules")
	f.Bool("densei", false, "alias of --bordered")
	_ = f.MarkHidden("densei")
	f.String("exponent", "canonical", "exponent rendering (canonical|raw)")
	f.String("encoding", "utf-8", "input encoding (utf-8|shift_jis|euc-jp)")
	f.Bool("strict", false, "fail when any data row is malformed instead of skipping it")
	f.Int("jobs", 0, "parallel row rendering workers (0 = GOMAXPROCS)")
	f.Bool("cache", false, "reuse rendered tables for unchanged inputs")
	f.Bool("cache-clear", false, "remove every cached table before converting")
	f.String("diagnostics", "pretty", "diagnostics format on stderr (pretty|json)")
}

type convertParams struct {
	input    string
	output   string
	settings config.Settings
	jobs     int

	maxDiagnostics int
	diagFormat     string
	color          bool
	quiet          bool

	useCache   bool
	clearCache bool
	// cacheDir overrides the XDG cache location.
	cacheDir string

	timer  *observ.Timer
	logger *slog.Logger
}

func runConvert(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	p := convertParams{settings: settings}
	if len(args) == 1 {
		p.input = args[0]
	}
	flags := cmd.Flags()
	if p.output, err = flags.GetString("output"); err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	if p.jobs, err = flags.GetInt("jobs"); err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if p.useCache, err = flags.GetBool("cache"); err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	if p.clearCache, err = flags.GetBool("cache-clear"); err != nil {
		return fmt.Errorf("failed to get cache-clear flag: %w", err)
	}
	if p.diagFormat, err = flags.GetString("diagnostics"); err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	switch p.diagFormat {
	case "pretty", "json":
	default:
		return fmt.Errorf("unsupported diagnostics format %q (must be pretty or json)", p.diagFormat)
	}

	root := cmd.Root().PersistentFlags()
	if p.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	p.quiet, _ = root.GetBool("quiet")
	if timings, _ := root.GetBool("timings"); timings {
		p.timer = observ.NewTimer()
	}
	p.color = useColor(cmd, os.Stderr)
	p.logger = newLogger(cmd, cmd.ErrOrStderr())

	return convert(cmd.Context(), p, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// resolveSettings merges csvtex.toml with explicitly set flags; flags win.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	s, err := config.Load(configPath, ".")
	if err != nil {
		return s, err
	}
	flags := cmd.Flags()
	if flags.Changed("title") {
		s.Title, _ = flags.GetString("title")
	}
	if flags.Changed("label") {
		s.Label, _ = flags.GetString("label")
	}
	if flags.Changed("bordered") {
		s.Bordered, _ = flags.GetBool("bordered")
	}
	if densei, _ := flags.GetBool("densei"); densei {
		s.Bordered = true
	}
	if flags.Changed("exponent") {
		raw, _ := flags.GetString("exponent")
		if s.Exponent, err = cell.ParseExponentMode(raw); err != nil {
			return s, err
		}
	}
	if flags.Changed("encoding") {
		raw, _ := flags.GetString("encoding")
		if s.Encoding, err = source.ParseEncoding(raw); err != nil {
			return s, err
		}
	}
	if flags.Changed("strict") {
		s.Strict, _ = flags.GetBool("strict")
	}
	return s, nil
}

// convert runs load → (cache|classify) → write. Nothing is written to the
// output unless the whole table rendered successfully.
func convert(ctx context.Context, p convertParams, stdout, stderr io.Writer) error {
	log := p.logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if p.settings.Path != "" {
		log.Debug("config loaded", "path", p.settings.Path)
	}

	done := p.timer.Track("read")
	file, err := source.Load(p.input, p.settings.Encoding)
	if err != nil {
		return err
	}
	done(fmt.Sprintf("%d bytes", len(file.Content)))
	log.Debug("input loaded", "path", file.Path, "bytes", len(file.Content), "encoding", p.settings.Encoding, "flags", file.Flags)

	opts := p.settings.TableOptions()
	opts.Jobs = p.jobs
	opts.MaxDiagnostics = p.maxDiagnostics
	opts.Logger = log

	var cache *tcache.Cache
	var key tcache.Digest
	if p.useCache || p.clearCache {
		cache, err = openCache(p.cacheDir)
		if err != nil {
			log.Warn("cache disabled", "error", err)
			cache = nil
		}
		if p.clearCache && cache != nil {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			log.Debug("cache cleared")
		}
		if !p.useCache {
			cache = nil
		}
		key = tcache.Key(file.Hash, opts)
	}

	done = p.timer.Track("render")
	res, hit, err := convertOrLoad(ctx, cache, key, file, opts, log)
	if res != nil {
		done(fmt.Sprintf("%d rows, %d skipped", res.Rows, res.Skipped))
		if derr := reportDiagnostics(stderr, res.Bag, file.Path, p); derr != nil {
			return derr
		}
	}
	if err != nil {
		return err
	}
	log.Debug("converted", "rows", res.Rows, "skipped", res.Skipped, "warnings", res.Bag.HasWarnings())

	done = p.timer.Track("write")
	if err := writeOutput(p.output, stdout, res.Document); err != nil {
		bag := diag.NewBag(1)
		diag.ReportError(diag.BagReporter{Bag: bag}, diag.OutWrite, diag.Pos{}, err.Error()).Emit()
		if derr := reportDiagnostics(stderr, bag, outputName(p.output), p); derr != nil {
			log.Warn("diagnostics not written", "error", derr)
		}
		return fmt.Errorf("write output: %w", err)
	}
	done(outputName(p.output))

	if cache != nil && !hit {
		payload := &tcache.Payload{
			Document:    *res.Document,
			Rows:        res.Rows,
			Skipped:     res.Skipped,
			Diagnostics: res.Bag.Items(),
			Dropped:     res.Bag.Dropped(),
		}
		if err := cache.Put(key, payload); err != nil {
			log.Warn("cache store failed", "error", err)
		}
	}

	if p.timer != nil {
		return p.timer.WriteSummary(stderr)
	}
	return nil
}

func openCache(dir string) (*tcache.Cache, error) {
	if dir != "" {
		return tcache.OpenDir(dir)
	}
	return tcache.Open("csvtex")
}

func convertOrLoad(ctx context.Context, cache *tcache.Cache, key tcache.Digest, file *source.File, opts table.Options, log *slog.Logger) (*table.Result, bool, error) {
	var payload tcache.Payload
	if ok, err := cache.Get(key, &payload); err != nil {
		log.Warn("cache read failed", "error", err)
	} else if ok {
		log.Debug("cache hit", "rows", payload.Rows)
		bag := diag.NewBag(max(opts.MaxDiagnostics, len(payload.Diagnostics)))
		for _, d := range payload.Diagnostics {
			bag.Add(d)
		}
		bag.NoteDropped(payload.Dropped)
		doc := payload.Document
		return &table.Result{Document: &doc, Bag: bag, Rows: payload.Rows, Skipped: payload.Skipped}, true, nil
	}
	res, err := table.Convert(ctx, file.Reader(), opts)
	return res, false, err
}

func reportDiagnostics(w io.Writer, bag *diag.Bag, path string, p convertParams) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	if p.quiet && !bag.HasErrors() {
		return nil
	}
	bag.Sort()
	bag.Dedup()
	if p.diagFormat == "json" {
		return diagfmt.JSON(w, bag, path)
	}
	return diagfmt.Pretty(w, bag, path, diagfmt.PrettyOpts{Color: p.color, ShowNotes: true})
}

// writeOutput writes doc to path atomically, or to stdout when path is "" or "-".
func writeOutput(path string, stdout io.Writer, doc *table.Document) (err error) {
	if path == "" || path == "-" {
		_, err = doc.WriteTo(stdout)
		return err
	}
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".csvtex-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if _, err = doc.WriteTo(f); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

func outputName(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}

