// Package tcache stores rendered tables on disk keyed by input content and
// conversion options, so unchanged inputs skip classification entirely.
package tcache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"csvtex/internal/diag"
	"csvtex/internal/table"
)

// Current schema version - increment when Payload format changes
const schemaVersion uint16 = 2

// Digest identifies a cache entry.
type Digest [32]byte

// Cache is a directory of msgpack payloads. Safe for concurrent use.
// A nil *Cache is a valid, always-missing cache.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Payload is everything needed to reproduce a conversion without re-running it.
type Payload struct {
	Schema      uint16
	Document    table.Document
	Rows        int
	Skipped     int
	Diagnostics []diag.Diagnostic
	// Dropped is how many diagnostics did not fit under MaxDiagnostics.
	Dropped int
}

// Open returns the cache under $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDir(filepath.Join(base, app))
}

// OpenDir uses dir as the cache directory, creating it if needed.
func OpenDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Key derives the entry key from the input hash and an options fingerprint.
func Key(content [32]byte, opts table.Options) Digest {
	h := sha256.New()
	h.Write(content[:])
	fmt.Fprintf(h, "\x00v%d\x00%s\x00%s\x00%t\x00%s\x00%t\x00%d",
		schemaVersion, opts.Title, opts.Label, opts.Bordered, opts.Exponent, opts.Strict, opts.MaxDiagnostics)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "tables", hex.EncodeToString(key[:])+".mp")
}

// Put atomically writes payload under key.
func (c *Cache) Put(key Digest, payload *Payload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	payload.Schema = schemaVersion
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get loads the payload for key. A missing entry or one with a stale schema is a miss.
func (c *Cache) Get(key Digest, out *Payload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	if out.Schema != schemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "tables"))
}
