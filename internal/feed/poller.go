package feed

import (
	"context"
	"errors"
	"log"
	"time"

	"hexwar.io/internal/protocol"
)

// Handler receives each fetched snapshot. It runs on the poller's goroutine,
// so the next fetch waits until it returns.
type Handler func(ctx context.Context, seq uint64, recs []protocol.VertexRecord) error

type Poller struct {
	src      Source
	interval time.Duration
	log      *log.Logger
	handle   Handler
}

func NewPoller(src Source, interval time.Duration, logger *log.Logger, h Handler) *Poller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Poller{src: src, interval: interval, log: logger, handle: h}
}

// Run polls immediately and then once per interval until ctx ends. Fetch
// failures skip the cycle; a handler error stops the loop and is returned.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for seq := uint64(1); ; seq++ {
		if ctx.Err() != nil {
			p.log.Printf("poller stop after %d cycles", seq-1)
			return nil
		}
		if err := p.cycle(ctx, seq); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
}

func (p *Poller) cycle(ctx context.Context, seq uint64) error {
	recs, err := p.src.Fetch(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		p.log.Printf("poll %d: fetch failed (%s): %v", seq, protocol.CodeOf(err), err)
		return nil
	}
	return p.handle(ctx, seq, recs)
}
