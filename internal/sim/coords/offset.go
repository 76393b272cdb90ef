package coords

import (
	"fmt"
	"strconv"
	"strings"

	"hexwar.io/internal/sim/lattice"
	"hexwar.io/internal/sim/mathx"
)

// Offset addresses a cell in odd-row offset layout.
type Offset struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CubeToOffset maps c to the offset of its cell: row = z, col = x + floor(z/2).
// Only x and z take part, so centers sharing both land in the same cell.
func CubeToOffset(c lattice.Cube) Offset {
	return Offset{Row: c.Z, Col: c.X + mathx.FloorDiv(c.Z, 2)}
}

// OffsetToCube returns the sum-zero center of the cell at o.
func OffsetToCube(o Offset) lattice.Cube {
	x := o.Col - mathx.FloorDiv(o.Row, 2)
	z := o.Row
	return lattice.Cube{X: x, Y: -x - z, Z: z}
}

// Key is the map key form of o. It is not a wire format.
func (o Offset) Key() string {
	return strconv.Itoa(o.Row) + ";" + strconv.Itoa(o.Col)
}

func (o Offset) String() string { return o.Key() }

// Less orders offsets row-major.
func (o Offset) Less(p Offset) bool {
	if o.Row != p.Row {
		return o.Row < p.Row
	}
	return o.Col < p.Col
}

func ParseOffsetKey(key string) (Offset, error) {
	row, col, ok := strings.Cut(key, ";")
	if !ok {
		return Offset{}, fmt.Errorf("offset key %q: missing separator", key)
	}
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return Offset{}, fmt.Errorf("offset key %q: row: %w", key, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return Offset{}, fmt.Errorf("offset key %q: col: %w", key, err)
	}
	return Offset{Row: r, Col: c}, nil
}

// MustParseOffsetKey is for keys produced by Key; a failure is a bug.
func MustParseOffsetKey(key string) Offset {
	o, err := ParseOffsetKey(key)
	if err != nil {
		panic(err)
	}
	return o
}

// CenterPoints returns the centers of the cells p touches: its valid neighbors
// with duplicate offsets dropped (first one wins).
func CenterPoints(p lattice.Cube) []lattice.Cube {
	ns := lattice.Neighbors(p)
	out := ns[:0]
	seen := make(map[Offset]struct{}, len(ns))
	for _, n := range ns {
		o := CubeToOffset(n)
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, n)
	}
	return out
}

// CellsOf returns the offsets of the cells p touches, in CenterPoints order.
func CellsOf(p lattice.Cube) []Offset {
	cs := CenterPoints(p)
	out := make([]Offset, len(cs))
	for i, c := range cs {
		out[i] = CubeToOffset(c)
	}
	return out
}
