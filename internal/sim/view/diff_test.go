package view

import (
	"reflect"
	"testing"

	"hexwar.io/internal/sim/coords"
	"hexwar.io/internal/sim/lattice"
	"hexwar.io/internal/sim/ownership"
)

func corners(owner ownership.OwnerID) []ownership.Vertex {
	return []ownership.Vertex{
		{ID: 1, Owner: owner, Pos: lattice.Cube{X: 1}},
		{ID: 2, Owner: owner, Pos: lattice.Cube{Y: 1}},
		{ID: 3, Owner: owner, Pos: lattice.Cube{Z: 1}},
	}
}

func TestDiff(t *testing.T) {
	cfg := coords.DefaultProjection()
	a := Build(corners("A"), cfg)
	b := Build(corners("B"), cfg)

	if got := Diff(a, a); len(got) != 0 {
		t.Fatalf("self diff=%+v", got)
	}
	if got := Diff(a, b); !reflect.DeepEqual(got, []Change{{Key: "0;0", From: "A", To: "B"}}) {
		t.Fatalf("a->b=%+v", got)
	}
	if got := Diff(View{}, a); !reflect.DeepEqual(got, []Change{{Key: "0;0", To: "A"}}) {
		t.Fatalf("empty->a=%+v", got)
	}
	if got := Diff(a, View{}); !reflect.DeepEqual(got, []Change{{Key: "0;0", From: "A"}}) {
		t.Fatalf("a->empty=%+v", got)
	}
}

func TestDigest(t *testing.T) {
	a := Build(corners("A"), coords.DefaultProjection())
	flat := Build(corners("A"), coords.ProjectionConfig{Size: coords.Point{X: 9, Y: 9}, Orientation: coords.Flat})
	b := Build(corners("B"), coords.DefaultProjection())

	if len(a.Digest()) != 64 {
		t.Fatalf("digest=%q", a.Digest())
	}
	if a.Digest() != flat.Digest() {
		t.Fatalf("projection changed the digest")
	}
	if a.Digest() == b.Digest() {
		t.Fatalf("owner change kept the digest")
	}
	if Build(a.SourceVertices(), coords.DefaultProjection()).Digest() != a.Digest() {
		t.Fatalf("rebuild from source vertices changed the digest")
	}
}
