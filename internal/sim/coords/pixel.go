package coords

import (
	"fmt"
	"math"
	"strings"

	"hexwar.io/internal/sim/lattice"
)

type Pixel struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Orientation is the 2x2 basis taking (x, z) lattice axes to render space.
type Orientation struct {
	Name           string
	F0, F1, F2, F3 float64
}

var (
	Pointy = Orientation{Name: "pointy", F0: math.Sqrt(3), F1: math.Sqrt(3) / 2, F2: 0, F3: 3.0 / 2}
	Flat   = Orientation{Name: "flat", F0: 3.0 / 2, F1: 0, F2: math.Sqrt(3) / 2, F3: math.Sqrt(3)}
)

func ParseOrientation(name string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Pointy.Name:
		return Pointy, nil
	case Flat.Name:
		return Flat, nil
	default:
		return Orientation{}, fmt.Errorf("unknown orientation %q (want pointy|flat)", name)
	}
}

type ProjectionConfig struct {
	Size        Point
	Origin      Point
	Orientation Orientation
}

func DefaultProjection() ProjectionConfig {
	return ProjectionConfig{
		Size:        Point{X: 5, Y: 5},
		Orientation: Pointy,
	}
}

// CubeToPixel places c in render space. cfg is taken by value and never modified.
func CubeToPixel(c lattice.Cube, cfg ProjectionConfig) Pixel {
	o := cfg.Orientation
	x := float64(c.X)
	z := float64(c.Z)
	return Pixel{
		X: (o.F0*x+o.F1*z)*cfg.Size.X + cfg.Origin.X,
		Y: (o.F2*x+o.F3*z)*cfg.Size.Y + cfg.Origin.Y,
	}
}
