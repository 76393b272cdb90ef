// Package ownership turns per-corner ownership into per-cell control.
//
// Every owned corner votes for each of the (up to three) cells it touches. A
// cell is controlled by the owner with more than MajorityThreshold votes and
// strictly more votes than any owner seen before it. Nothing is cached between
// calls; each snapshot is tallied from scratch.
package ownership

import (
	"sort"

	"hexwar.io/internal/sim/coords"
	"hexwar.io/internal/sim/lattice"
)

// MajorityThreshold is the vote count an owner must exceed to claim a cell.
const MajorityThreshold = 2

// OwnerID is opaque; usually a 0x-prefixed account address.
type OwnerID string

// Short renders long addresses as 0x121a…60F2.
func (o OwnerID) Short() string {
	s := string(o)
	if len(s) <= 12 {
		return s
	}
	return s[:6] + "…" + s[len(s)-4:]
}

type Vertex struct {
	ID    uint64
	Owner OwnerID
	Pos   lattice.Cube
}

// Histogram counts votes per owner and remembers the order owners first voted.
type Histogram struct {
	order  []OwnerID
	counts map[OwnerID]int
}

func NewHistogram() *Histogram {
	return &Histogram{counts: make(map[OwnerID]int)}
}

func (h *Histogram) Add(o OwnerID) {
	if _, ok := h.counts[o]; !ok {
		h.order = append(h.order, o)
	}
	h.counts[o]++
}

func (h *Histogram) Count(o OwnerID) int { return h.counts[o] }

// Owners returns voters in first-vote order.
func (h *Histogram) Owners() []OwnerID {
	return append([]OwnerID(nil), h.order...)
}

func (h *Histogram) Total() int {
	n := 0
	for _, c := range h.counts {
		n += c
	}
	return n
}

// MajorityOwner scans owners in first-vote order and keeps the first one whose
// count exceeds both MajorityThreshold and the best count so far. Equal top
// counts therefore resolve to whichever owner voted first.
func MajorityOwner(h *Histogram) (OwnerID, bool) {
	if h == nil {
		return "", false
	}
	var (
		best      OwnerID
		bestCount int
		found     bool
	)
	for _, o := range h.order {
		c := h.counts[o]
		if c > MajorityThreshold && c > bestCount {
			best, bestCount, found = o, c, true
		}
	}
	return best, found
}

// Tally maps each touched cell to its vote histogram.
type Tally map[coords.Offset]*Histogram

// Aggregate tallies one snapshot. The origin and any vertex that touches no
// cell are skipped.
func Aggregate(vertices []Vertex) Tally {
	t := make(Tally)
	for _, v := range vertices {
		if v.Pos.IsOrigin() {
			continue
		}
		for _, cell := range coords.CellsOf(v.Pos) {
			h := t[cell]
			if h == nil {
				h = NewHistogram()
				t[cell] = h
			}
			h.Add(v.Owner)
		}
	}
	return t
}

// Cells returns the tallied offsets in row-major order.
func (t Tally) Cells() []coords.Offset {
	out := make([]coords.Offset, 0, len(t))
	for o := range t {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Majorities returns the controlling owner of every claimed cell. Neutral
// cells are absent.
func (t Tally) Majorities() map[coords.Offset]OwnerID {
	out := make(map[coords.Offset]OwnerID)
	for o, h := range t {
		if owner, ok := MajorityOwner(h); ok {
			out[o] = owner
		}
	}
	return out
}
