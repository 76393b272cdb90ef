package tuning

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hexwar.io/internal/sim/coords"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoad_OverridesDefaults(t *testing.T) {
	p := writeFile(t, `
projection:
  size: {x: 8, y: 6}
  origin: {x: 100, y: 50}
  orientation: flat
generator:
  max_depth: 10
  seed: 42
  owners: ["0xA", "0xB"]
`)
	tn, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	pc := tn.ProjectionConfig()
	if pc.Orientation != coords.Flat || pc.Size != (coords.Point{X: 8, Y: 6}) || pc.Origin != (coords.Point{X: 100, Y: 50}) {
		t.Fatalf("projection=%+v", pc)
	}
	if tn.Generator.MaxDepth != 10 || tn.Generator.Seed != 42 {
		t.Fatalf("generator=%+v", tn.Generator)
	}
	if tn.Generator.StopProbability != 0.2 {
		t.Fatalf("stop_probability should keep its default, got %v", tn.Generator.StopProbability)
	}
	if owners := tn.GeneratorOwners(); len(owners) != 2 || owners[1] != "0xB" {
		t.Fatalf("owners=%v", owners)
	}
	if tn.PollInterval() != 5*time.Second {
		t.Fatalf("poll interval=%v", tn.PollInterval())
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	bad := []string{
		"projection:\n  orientation: sideways\n",
		"generator:\n  stop_probability: 1.5\n",
		"generator:\n  max_depth: -1\n",
		"feed:\n  poll_interval_ms: 0\n",
		"projection:\n  size: {x: 0, y: 5}\n",
		"projection: [1, 2\n",
	}
	for _, body := range bad {
		if _, err := Load(writeFile(t, body)); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}

func TestLoadOrDefaults_MissingFile(t *testing.T) {
	tn, err := LoadOrDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefaults: %v", err)
	}
	if tn.Generator.MaxDepth != 6 || len(tn.Generator.Owners) != 3 {
		t.Fatalf("expected defaults, got %+v", tn.Generator)
	}
	if err := tn.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoad_ShippedConfig(t *testing.T) {
	tn, err := Load("../../../configs/tuning.yaml")
	if err != nil {
		t.Fatalf("load configs/tuning.yaml: %v", err)
	}
	if tn.ProjectionConfig().Orientation != coords.Pointy {
		t.Fatalf("shipped config should be pointy")
	}
	if len(tn.GeneratorOwners()) != 3 {
		t.Fatalf("owners=%v", tn.GeneratorOwners())
	}
}
