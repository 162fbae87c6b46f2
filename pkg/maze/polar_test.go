package maze

import (
	"slices"
	"testing"

	"github.com/matzehuels/mazetower/pkg/errors"
)

func TestNewPolarInvalidDimensions(t *testing.T) {
	for _, rings := range []int{0, -1} {
		if _, err := NewPolar(rings); !errors.Is(err, errors.ErrCodeInvalidDimensions) {
			t.Errorf("NewPolar(%d) error = %v, want INVALID_DIMENSIONS", rings, err)
		}
	}
}

func TestPolarSubdivision(t *testing.T) {
	g, err := NewPolar(4)
	if err != nil {
		t.Fatalf("NewPolar: %v", err)
	}

	// Ring cell counts follow from the rounded arc-width/ring-height ratio:
	// the hub ring has one cell, ring 1 splits into 6, and rings 2 and 3
	// each double their inward neighbor.
	want := []int{1, 6, 12, 24}
	for ring, cols := range want {
		if got := g.ColumnCount(ring); got != cols {
			t.Errorf("ColumnCount(%d) = %d, want %d", ring, got, cols)
		}
	}
	if g.Size() != 43 {
		t.Errorf("Size() = %d, want 43", g.Size())
	}
	if g.ColumnCount(4) != 0 || g.ColumnCount(-1) != 0 {
		t.Error("ColumnCount outside ring range should be 0")
	}
}

func TestPolarContains(t *testing.T) {
	g, err := NewPolar(4)
	if err != nil {
		t.Fatalf("NewPolar: %v", err)
	}

	tests := []struct {
		pos  Position
		want bool
	}{
		{Pos(0, 0), true},
		{Pos(0, 1), false},
		{Pos(1, 0), true},
		{Pos(1, 5), true},
		{Pos(1, 6), false},
		{Pos(3, 23), true},
		{Pos(4, 0), false},
	}

	for _, tt := range tests {
		if got := g.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestPolarNeighbors(t *testing.T) {
	g, err := NewPolar(4)
	if err != nil {
		t.Fatalf("NewPolar: %v", err)
	}

	// Hub: outward only, all of ring 1.
	hub := g.Neighbors(Pos(0, 0))
	if len(hub) != 6 {
		t.Fatalf("hub has %d neighbors, want 6", len(hub))
	}
	for _, n := range hub {
		if n.Row != 1 {
			t.Errorf("hub neighbor %v not in ring 1", n)
		}
	}

	// Mid-ring cell: inward, two outward (ring 3 doubles ring 2), cw, ccw.
	got := g.Neighbors(Pos(2, 1))
	want := []Position{Pos(1, 0), Pos(3, 2), Pos(3, 3), Pos(2, 2), Pos(2, 0)}
	if !slices.Equal(got, want) {
		t.Errorf("Neighbors(2,1) = %v, want %v", got, want)
	}

	// Rim cell: no outward.
	for _, n := range g.Neighbors(Pos(3, 0)) {
		if n.Row > 3 {
			t.Errorf("rim neighbor %v outside the grid", n)
		}
	}
}

func TestPolarDirectionalLookups(t *testing.T) {
	g, err := NewPolar(4)
	if err != nil {
		t.Fatalf("NewPolar: %v", err)
	}

	if _, ok := g.Inward(Pos(0, 0)); ok {
		t.Error("hub should have no inward neighbor")
	}
	if in, ok := g.Inward(Pos(2, 5)); !ok || in != Pos(1, 2) {
		t.Errorf("Inward(2,5) = %v, %v, want 1,2", in, ok)
	}

	if cw, ok := g.Clockwise(Pos(1, 5)); !ok || cw != Pos(1, 0) {
		t.Errorf("Clockwise(1,5) = %v, %v, want wrap to 1,0", cw, ok)
	}
	if ccw, ok := g.CounterClockwise(Pos(1, 0)); !ok || ccw != Pos(1, 5) {
		t.Errorf("CounterClockwise(1,0) = %v, %v, want wrap to 1,5", ccw, ok)
	}
	if _, ok := g.Clockwise(Pos(0, 0)); ok {
		t.Error("hub should have no lateral neighbors")
	}

	out := g.Outward(Pos(2, 1))
	want := []Position{Pos(3, 2), Pos(3, 3)}
	if !slices.Equal(out, want) {
		t.Errorf("Outward(2,1) = %v, want %v", out, want)
	}
	if got := g.Outward(Pos(3, 0)); len(got) != 0 {
		t.Errorf("Outward on rim = %v, want empty", got)
	}
}

func TestPolarTraversalOrder(t *testing.T) {
	g, err := NewPolar(3)
	if err != nil {
		t.Fatalf("NewPolar: %v", err)
	}

	order := g.Positions()
	if order[0] != Pos(0, 0) {
		t.Errorf("traversal starts at %v, want hub", order[0])
	}
	for i := 1; i < len(order); i++ {
		if order[i-1].Compare(order[i]) >= 0 {
			t.Fatalf("traversal order not strictly increasing at %d: %v, %v", i, order[i-1], order[i])
		}
	}
}

func TestPolarLinking(t *testing.T) {
	g, err := NewPolar(4)
	if err != nil {
		t.Fatalf("NewPolar: %v", err)
	}

	if err := g.Link(Pos(0, 0), Pos(1, 0)); err != nil {
		t.Fatalf("Link hub to ring 1: %v", err)
	}
	if !g.IsLinked(Pos(1, 0), Pos(0, 0)) {
		t.Error("hub link not symmetric")
	}

	// Cells in the same ring two steps apart are not structural neighbors.
	if err := g.Link(Pos(1, 0), Pos(1, 2)); !errors.Is(err, errors.ErrCodeInvalidLink) {
		t.Errorf("Link(1,0 → 1,2) error = %v, want INVALID_LINK", err)
	}
}

func TestPolarSingleRing(t *testing.T) {
	g, err := NewPolar(1)
	if err != nil {
		t.Fatalf("NewPolar: %v", err)
	}

	if g.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", g.Size())
	}
	if ns := g.Neighbors(Pos(0, 0)); len(ns) != 0 {
		t.Errorf("single-cell grid has neighbors %v", ns)
	}
	if IsDeadEnd(g, Pos(0, 0)) {
		t.Error("isolated hub reported as dead end")
	}
	if rim := g.Rim(); len(rim) != 1 || rim[0] != Pos(0, 0) {
		t.Errorf("Rim() = %v, want the hub alone", rim)
	}
}
