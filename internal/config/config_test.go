package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvtex/internal/cell"
	"csvtex/internal/source"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	s, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Equal(t, "タイトル", s.Title)
	assert.Equal(t, "XXX", s.Label)
}

func TestLoadFindsParentConfig(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `
[table]
title = "抵抗の温度依存性"
bordered = true

[cell]
exponent = "raw"

[input]
encoding = "sjis"
strict = true
`)
	nested := filepath.Join(root, "data", "week3")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	s, err := Load("", nested)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path)
	assert.Equal(t, "抵抗の温度依存性", s.Title)
	assert.Equal(t, "XXX", s.Label)
	assert.True(t, s.Bordered)
	assert.Equal(t, cell.ExponentRaw, s.Exponent)
	assert.Equal(t, source.ShiftJIS, s.Encoding)
	assert.True(t, s.Strict)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, body := range []string{
		"[cell]\nexponent = \"locale\"\n",
		"[input]\nencoding = \"latin1\"\n",
		"[table]\ncolour = \"red\"\n",
		"[table\n",
	} {
		dir := t.TempDir()
		path := writeConfig(t, dir, body)
		_, err := Load(path, dir)
		assert.Error(t, err, "body %q", body)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), "")
	assert.Error(t, err)
}

func TestTemplateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, Template)
	s, err := Load("", dir)
	require.NoError(t, err)
	want := Defaults()
	want.Path = s.Path
	assert.Equal(t, want, s)
}

func TestTableOptions(t *testing.T) {
	s := Defaults()
	s.Bordered = true
	opts := s.TableOptions()
	assert.True(t, opts.Bordered)
	assert.Equal(t, "タイトル", opts.Title)
}
