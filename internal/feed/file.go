// Package feed supplies vertex snapshots to the board engine and re-reads them
// on a fixed interval.
package feed

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"hexwar.io/internal/protocol"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Source returns a complete, fresh snapshot on every call.
type Source interface {
	Fetch(ctx context.Context) ([]protocol.VertexRecord, error)
}

// FileSource reads a feed file, plain JSON or zstd-compressed JSON.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]protocol.VertexRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadFile(s.Path)
}

func ReadFile(path string) ([]protocol.VertexRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, protocol.Errorf(protocol.ErrFeedSource, "open feed: %w", err)
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, 256*1024)
	head, _ := br.Peek(len(zstdMagic))
	var r io.Reader = br
	if bytes.Equal(head, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, protocol.Errorf(protocol.ErrFeedSource, "zstd: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, protocol.Errorf(protocol.ErrFeedSource, "read feed %s: %w", filepath.Base(path), err)
	}
	return protocol.DecodeFeed(raw)
}

// WriteFile writes recs as a feed file, zstd-compressed when path ends in ".zst".
func WriteFile(path string, recs []protocol.VertexRecord) error {
	b, err := protocol.EncodeFeed(recs)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(path, ".zst") {
		if _, err := f.Write(b); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = f.Close()
		return err
	}
	if _, err := enc.Write(b); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
