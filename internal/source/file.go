package source

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdinName is the display path used for standard input.
const StdinName = "<stdin>"

// FileFlags describes normalisations applied while loading.
type FileFlags uint8

const (
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileDecoded
)

func (f FileFlags) String() string {
	var parts []string
	for _, fl := range []struct {
		bit  FileFlags
		name string
	}{
		{FileVirtual, "virtual"},
		{FileHadBOM, "bom"},
		{FileNormalizedCRLF, "crlf"},
		{FileDecoded, "decoded"},
	} {
		if f&fl.bit != 0 {
			parts = append(parts, fl.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// File is a fully loaded, UTF-8 input table.
type File struct {
	Path    string
	Content []byte
	// Hash is computed over Content after decoding and normalisation.
	Hash  [32]byte
	Flags FileFlags
}

// Reader returns a fresh reader over the content.
func (f *File) Reader() io.Reader {
	return bytes.NewReader(f.Content)
}

// Load reads path (or stdin when path is "" or "-"), decodes it from enc to
// UTF-8 and strips a UTF-8 BOM.
func Load(path string, enc Encoding) (*File, error) {
	if path == "" || path == "-" {
		return Read(StdinName, os.Stdin, enc)
	}
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	file, err := Read(filepath.Clean(path), f, enc)
	if err != nil {
		return nil, err
	}
	file.Flags &^= FileVirtual
	return file, nil
}

// Read loads r under the display name name.
func Read(name string, r io.Reader, enc Encoding) (*File, error) {
	flags := FileVirtual
	decoded, err := enc.NewReader(r)
	if err != nil {
		return nil, err
	}
	if enc != UTF8 {
		flags |= FileDecoded
	}
	content, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", name, err)
	}
	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return &File{
		Path:    name,
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}, nil
}
