// Package config loads csvtex.toml and resolves it against built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"csvtex/internal/cell"
	"csvtex/internal/source"
	"csvtex/internal/table"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "csvtex.toml"

// File mirrors csvtex.toml. Pointer fields distinguish "unset" from zero values.
type File struct {
	Table TableSection `toml:"table"`
	Cell  CellSection  `toml:"cell"`
	Input InputSection `toml:"input"`
}

type TableSection struct {
	Title    *string `toml:"title"`
	Label    *string `toml:"label"`
	Bordered *bool   `toml:"bordered"`
}

type CellSection struct {
	Exponent *string `toml:"exponent"`
}

type InputSection struct {
	Encoding *string `toml:"encoding"`
	Strict   *bool   `toml:"strict"`
}

// Settings is the fully resolved configuration.
type Settings struct {
	Title    string
	Label    string
	Bordered bool
	Exponent cell.ExponentMode
	Encoding source.Encoding
	Strict   bool
	// Path is the config file that contributed, if any.
	Path string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Title:    table.DefaultTitle,
		Label:    table.DefaultLabel,
		Exponent: cell.ExponentCanonical,
		Encoding: source.UTF8,
	}
}

// Find walks up from startDir looking for csvtex.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Decode parses a config file without applying it.
func Decode(path string) (File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return File{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return f, nil
}

// Apply overlays f on s, validating enumerated values.
func (f File) Apply(s Settings) (Settings, error) {
	if f.Table.Title != nil {
		s.Title = *f.Table.Title
	}
	if f.Table.Label != nil {
		s.Label = *f.Table.Label
	}
	if f.Table.Bordered != nil {
		s.Bordered = *f.Table.Bordered
	}
	if f.Cell.Exponent != nil {
		mode, err := cell.ParseExponentMode(*f.Cell.Exponent)
		if err != nil {
			return s, fmt.Errorf("[cell].exponent: %w", err)
		}
		s.Exponent = mode
	}
	if f.Input.Encoding != nil {
		enc, err := source.ParseEncoding(*f.Input.Encoding)
		if err != nil {
			return s, fmt.Errorf("[input].encoding: %w", err)
		}
		s.Encoding = enc
	}
	if f.Input.Strict != nil {
		s.Strict = *f.Input.Strict
	}
	return s, nil
}

// Load resolves settings. An explicit path must exist; otherwise csvtex.toml
// is searched from startDir and its absence yields Defaults.
func Load(explicit, startDir string) (Settings, error) {
	s := Defaults()
	path := explicit
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return s, err
		}
		if !ok {
			return s, nil
		}
		path = found
	}
	f, err := Decode(path)
	if err != nil {
		return s, err
	}
	s, err = f.Apply(s)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// TableOptions maps settings onto table.Options.
func (s Settings) TableOptions() table.Options {
	return table.Options{
		Title:    s.Title,
		Label:    s.Label,
		Bordered: s.Bordered,
		Exponent: s.Exponent,
		Strict:   s.Strict,
	}
}

// Template is the starter file written by `csvtex init`.
const Template = `# csvtex configuration
[table]
title = "` + table.DefaultTitle + `"
label = "` + table.DefaultLabel + `"
bordered = false

[cell]
# canonical: 1E+05 -> 10^{5}; raw: keep the exponent as written
exponent = "canonical"

[input]
encoding = "utf-8"
strict = false
`
