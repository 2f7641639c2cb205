// Package dump writes the calls of paint runs as zstd compressed JSON lines
// and reads them back.
package dump

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

//go:embed record.schema.json
var recordSchemaJSON string

var recordSchema = jsonschema.MustCompileString("record.schema.json", recordSchemaJSON)

// Record is one call of a paint run together with the tile that made it.
type Record struct {
	Ride   string     `json:"ride"`
	Type   string     `json:"type"`
	Dir    uint8      `json:"dir"`
	Seq    uint8      `json:"seq"`
	Height int32      `json:"height"`
	Index  int        `json:"index"`
	Call   paint.Call `json:"call"`
}

// Validate checks the JSON form of a record against the record schema.
func Validate(line []byte) error {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return err
	}
	return recordSchema.Validate(doc)
}

// Writer appends records to a .jsonl.zst file. It is safe for concurrent use.
type Writer struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
	n   int
}

// Create truncates or creates the file at path and returns a writer for it.
func Create(path string) (*Writer, error) {
	if path == "" {
		return nil, fmt.Errorf("empty dump path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Writer{f: f, enc: enc, w: bufio.NewWriterSize(enc, 128*1024)}, nil
}

func encode(rec Record) ([]byte, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	if err := Validate(b); err != nil {
		return nil, fmt.Errorf("record %s/%d/%d #%d: %w", rec.Type, rec.Dir, rec.Seq, rec.Index, err)
	}
	return b, nil
}

// Write validates and appends one record.
func (w *Writer) Write(rec Record) error {
	b, err := encode(rec)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.appendLocked(b)
}

// WriteTile appends every call of one painted tile. The records of a tile
// stay together when several goroutines write at once; nothing is written
// when one of them is invalid.
func (w *Writer) WriteTile(rideName string, t track.Type, dir track.Direction, seq uint8, height int32, calls []paint.Call) error {
	lines := make([][]byte, len(calls))
	for i, c := range calls {
		b, err := encode(Record{Ride: rideName, Type: t.String(), Dir: uint8(dir), Seq: seq, Height: height, Index: i, Call: c})
		if err != nil {
			return err
		}
		lines[i] = b
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.appendLocked(lines...)
}

func (w *Writer) appendLocked(lines ...[]byte) error {
	if w.w == nil {
		return errors.New("dump writer closed")
	}
	for _, b := range lines {
		if _, err := w.w.Write(b); err != nil {
			return err
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
		w.n++
	}
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.n
}

func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

func (w *Writer) closeLocked() error {
	var err1 error
	if w.w != nil {
		err1 = w.w.Flush()
	}
	if w.enc != nil {
		if err := w.enc.Close(); err1 == nil {
			err1 = err
		}
		w.enc = nil
	}
	if w.f != nil {
		if err := w.f.Close(); err1 == nil {
			err1 = err
		}
		w.f = nil
	}
	w.w = nil
	return err1
}

// Reader iterates the records of a dump file.
type Reader struct {
	f   *os.File
	dec *zstd.Decoder
	sc  *bufio.Scanner
}

// Open returns a reader for the dump at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	return &Reader{f: f, dec: dec, sc: sc}, nil
}

// Next returns the next record, or io.EOF after the last one.
func (r *Reader) Next() (Record, error) {
	var rec Record
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return rec, err
		}
		return rec, io.EOF
	}
	if err := json.Unmarshal(r.sc.Bytes(), &rec); err != nil {
		return rec, fmt.Errorf("unmarshal: %w", err)
	}
	return rec, nil
}

func (r *Reader) Close() error {
	r.dec.Close()
	return r.f.Close()
}

// ReadAll loads every record of the dump at path.
func ReadAll(path string) ([]Record, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var out []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		out = append(out, rec)
	}
}
