// Package journal records resolved match ticks as zstd-compressed JSON lines,
// one file per match.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/udisondev/skirmish/internal/model"
)

// Ext is the file extension of a journal.
const Ext = ".jsonl.zst"

// Entry is one journal line: every event a tick produced.
type Entry struct {
	Match  string        `json:"match"`
	Tick   int64         `json:"tick"`
	Events []model.Event `json:"events"`
}

// Writer appends entries for a single match.
type Writer struct {
	match string
	path  string

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Path returns the journal file of a match inside dir.
func Path(dir, match string) string {
	return filepath.Join(dir, match+Ext)
}

// Create opens a fresh journal for match in dir, creating dir if needed.
// An existing journal of the same match is truncated.
func Create(dir, match string) (*Writer, error) {
	if match == "" {
		return nil, errors.New("creating journal: empty match id")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating journal dir %s: %w", dir, err)
	}

	path := Path(dir, match)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}

	return &Writer{
		match: match,
		path:  path,
		f:     f,
		enc:   enc,
		w:     bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// Path returns the file the writer appends to.
func (w *Writer) Path() string { return w.path }

// Write appends the events of one tick.
func (w *Writer) Write(tick int64, events []model.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return fmt.Errorf("journal %s is closed", w.path)
	}

	b, err := json.Marshal(Entry{Match: w.match, Tick: tick, Events: events})
	if err != nil {
		return fmt.Errorf("encoding tick %d: %w", tick, err)
	}
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("writing tick %d: %w", tick, err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing tick %d: %w", tick, err)
	}
	return nil
}

// Close flushes buffered entries and closes the file. Safe to call twice.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return nil
	}
	var errs []error
	if err := w.w.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("flushing journal: %w", err))
	}
	if err := w.enc.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing zstd encoder: %w", err))
	}
	if err := w.f.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing journal file: %w", err))
	}
	w.w, w.enc, w.f = nil, nil, nil
	return errors.Join(errs...)
}

// ReadAll decodes every entry of a journal file in order.
func ReadAll(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	var entries []Entry
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("decoding journal line %d: %w", len(entries)+1, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return entries, nil
}
