// Package viewlog records every rebuilt board view as compressed JSON lines,
// one file per UTC hour.
package viewlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"hexwar.io/internal/sim/view"
)

const hourLayout = "2006-01-02-15"

// Entry is one logged view.
type Entry struct {
	RunID  string    `json:"run_id"`
	Seq    uint64    `json:"seq"`
	At     time.Time `json:"at"`
	Digest string    `json:"digest"`
	View   view.View `json:"view"`
}

// segment is the open file for one hour of entries.
type segment struct {
	hour string
	f    *os.File
	zw   *zstd.Encoder
	bw   *bufio.Writer
	je   *json.Encoder
}

func openSegment(path, hour string) (*segment, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	bw := bufio.NewWriterSize(zw, 64*1024)
	return &segment{hour: hour, f: f, zw: zw, bw: bw, je: json.NewEncoder(bw)}, nil
}

func (s *segment) close() error {
	flushErr := s.bw.Flush()
	zErr := s.zw.Close()
	fErr := s.f.Close()
	for _, err := range []error{flushErr, zErr, fErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

// ViewLogger appends entries to views-YYYY-MM-DD-HH.jsonl.zst under dir and
// tags each one with the id of the run that produced it. Safe for concurrent use.
type ViewLogger struct {
	dir   string
	runID string
	now   func() time.Time

	mu  sync.Mutex
	cur *segment
}

func NewViewLogger(dir string) *ViewLogger {
	return &ViewLogger{dir: dir, runID: uuid.NewString(), now: time.Now}
}

func (l *ViewLogger) RunID() string { return l.runID }

func (l *ViewLogger) WriteView(seq uint64, v view.View) error {
	return l.Append(Entry{RunID: l.runID, Seq: seq, At: l.now().UTC(), Digest: v.Digest(), View: v})
}

// Append writes e as given. The file is chosen from the logger's clock, not e.At.
func (l *ViewLogger) Append(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	hour := l.now().UTC().Format(hourLayout)
	if l.cur == nil || l.cur.hour != hour {
		if err := l.closeLocked(); err != nil {
			return err
		}
		if err := os.MkdirAll(l.dir, 0o755); err != nil {
			return err
		}
		seg, err := openSegment(l.pathFor(hour), hour)
		if err != nil {
			return err
		}
		l.cur = seg
	}
	// json.Encoder terminates every value with '\n'.
	if err := l.cur.je.Encode(e); err != nil {
		return err
	}
	return l.cur.bw.Flush()
}

func (l *ViewLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closeLocked()
}

func (l *ViewLogger) closeLocked() error {
	if l.cur == nil {
		return nil
	}
	err := l.cur.close()
	l.cur = nil
	return err
}

func (l *ViewLogger) pathFor(hour string) string {
	return filepath.Join(l.dir, fmt.Sprintf("views-%s.jsonl.zst", hour))
}
