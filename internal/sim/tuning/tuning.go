package tuning

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"hexwar.io/internal/sim/boardgen"
	"hexwar.io/internal/sim/coords"
	"hexwar.io/internal/sim/ownership"
)

type Tuning struct {
	Projection Projection `yaml:"projection"`
	Generator  Generator  `yaml:"generator"`
	Feed       Feed       `yaml:"feed"`
}

type Projection struct {
	Size        coords.Point `yaml:"size"`
	Origin      coords.Point `yaml:"origin"`
	Orientation string       `yaml:"orientation"`
}

type Generator struct {
	MaxDepth        int     `yaml:"max_depth"`
	StopProbability float64 `yaml:"stop_probability"`
	// Seed 0 means unseeded.
	Seed   int64    `yaml:"seed"`
	Owners []string `yaml:"owners"`
}

type Feed struct {
	PollIntervalMs int `yaml:"poll_interval_ms"`
}

func Defaults() Tuning {
	owners := make([]string, len(boardgen.DemoOwners))
	for i, o := range boardgen.DemoOwners {
		owners[i] = string(o)
	}
	return Tuning{
		Projection: Projection{
			Size:        coords.Point{X: 5, Y: 5},
			Orientation: coords.Pointy.Name,
		},
		Generator: Generator{
			MaxDepth:        boardgen.DefaultMaxDepth,
			StopProbability: boardgen.DefaultStopProbability,
			Owners:          owners,
		},
		Feed: Feed{PollIntervalMs: 5000},
	}
}

// Load reads a tuning file over Defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Tuning, error) {
	t := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

// LoadOrDefaults is Load, except an empty path or missing file yields Defaults.
func LoadOrDefaults(path string) (Tuning, error) {
	if path == "" {
		return Defaults(), nil
	}
	t, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	return t, err
}

func (t Tuning) Validate() error {
	if t.Projection.Size.X == 0 || t.Projection.Size.Y == 0 {
		return fmt.Errorf("projection.size must be non-zero")
	}
	if _, err := coords.ParseOrientation(t.Projection.Orientation); err != nil {
		return fmt.Errorf("projection.orientation: %w", err)
	}
	if t.Generator.MaxDepth < 0 {
		return fmt.Errorf("generator.max_depth must be >= 0")
	}
	if t.Generator.StopProbability < 0 || t.Generator.StopProbability > 1 {
		return fmt.Errorf("generator.stop_probability must be within [0,1]")
	}
	if t.Feed.PollIntervalMs <= 0 {
		return fmt.Errorf("feed.poll_interval_ms must be > 0")
	}
	return nil
}

// ProjectionConfig resolves the projection section. Call Validate first; an
// unknown orientation falls back to pointy.
func (t Tuning) ProjectionConfig() coords.ProjectionConfig {
	o, err := coords.ParseOrientation(t.Projection.Orientation)
	if err != nil {
		o = coords.Pointy
	}
	return coords.ProjectionConfig{
		Size:        t.Projection.Size,
		Origin:      t.Projection.Origin,
		Orientation: o,
	}
}

func (t Tuning) GeneratorOwners() []ownership.OwnerID {
	out := make([]ownership.OwnerID, 0, len(t.Generator.Owners))
	for _, o := range t.Generator.Owners {
		if o != "" {
			out = append(out, ownership.OwnerID(o))
		}
	}
	return out
}

func (t Tuning) PollInterval() time.Duration {
	return time.Duration(t.Feed.PollIntervalMs) * time.Millisecond
}
