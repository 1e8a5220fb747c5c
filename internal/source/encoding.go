package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Encoding is the character set of the input table.
type Encoding uint8

const (
	UTF8 Encoding = iota
	ShiftJIS
	EUCJP
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case ShiftJIS:
		return "shift_jis"
	case EUCJP:
		return "euc-jp"
	}
	return "unknown"
}

// ParseEncoding accepts the common spellings of the supported encodings.
// The empty string means UTF-8.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "shift_jis", "shift-jis", "sjis", "cp932":
		return ShiftJIS, nil
	case "euc-jp", "eucjp":
		return EUCJP, nil
	}
	return UTF8, fmt.Errorf("unsupported encoding %q (must be utf-8, shift_jis or euc-jp)", s)
}

func (e Encoding) decoder() (*encoding.Decoder, error) {
	switch e {
	case ShiftJIS:
		return japanese.ShiftJIS.NewDecoder(), nil
	case EUCJP:
		return japanese.EUCJP.NewDecoder(), nil
	case UTF8:
		return nil, nil
	}
	return nil, fmt.Errorf("unsupported encoding %d", e)
}

// NewReader wraps r so that it yields UTF-8.
func (e Encoding) NewReader(r io.Reader) (io.Reader, error) {
	dec, err := e.decoder()
	if err != nil {
		return nil, err
	}
	if dec == nil {
		return r, nil
	}
	return transform.NewReader(r, dec), nil
}
