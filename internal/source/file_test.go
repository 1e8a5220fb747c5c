package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/japanese"
)

func TestReadStripsBOMAndCRLF(t *testing.T) {
	in := "\xEF\xBB\xBFa,b\r\n1,2\r\n"
	f, err := Read("test.csv", strings.NewReader(in), UTF8)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(f.Content) != "a,b\n1,2\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("Read should mark the file virtual")
	}
}

func TestFileFlagsString(t *testing.T) {
	if got := (FileHadBOM | FileNormalizedCRLF).String(); got != "bom,crlf" {
		t.Errorf("String = %q", got)
	}
	if got := FileFlags(0).String(); got != "none" {
		t.Errorf("String = %q", got)
	}
}

func TestReadShiftJIS(t *testing.T) {
	encoded, err := japanese.ShiftJIS.NewEncoder().String("温度,抵抗\n20,1.5E3\n")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if encoded == "温度,抵抗\n20,1.5E3\n" {
		t.Fatal("encoder produced UTF-8")
	}
	f, err := Read("sjis.csv", strings.NewReader(encoded), ShiftJIS)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(f.Content) != "温度,抵抗\n20,1.5E3\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileDecoded == 0 {
		t.Error("expected FileDecoded flag")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, []byte("x\n1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path, UTF8)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Flags&FileVirtual != 0 {
		t.Error("disk file marked virtual")
	}
	other, _ := Read("other", strings.NewReader("x\n1\n"), UTF8)
	if f.Hash != other.Hash {
		t.Error("hash should depend only on content")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv"), UTF8); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseEncoding(t *testing.T) {
	for in, want := range map[string]Encoding{"": UTF8, "UTF-8": UTF8, "sjis": ShiftJIS, "cp932": ShiftJIS, "euc-jp": EUCJP} {
		got, err := ParseEncoding(in)
		if err != nil || got != want {
			t.Errorf("ParseEncoding(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseEncoding("latin1"); err == nil {
		t.Error("expected error for latin1")
	}
}
