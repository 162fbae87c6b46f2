package maze

import (
	"slices"
	"testing"
)

func TestCellLinks(t *testing.T) {
	c := newCell(Pos(1, 1))

	if got := c.LinkCount(); got != 0 {
		t.Fatalf("LinkCount() = %d, want 0", got)
	}

	// Insert out of order; Links must come back sorted row-major.
	c.link(Pos(2, 1))
	c.link(Pos(0, 1))
	c.link(Pos(1, 2))
	c.link(Pos(1, 0))

	want := []Position{Pos(0, 1), Pos(1, 0), Pos(1, 2), Pos(2, 1)}
	if got := c.Links(); !slices.Equal(got, want) {
		t.Errorf("Links() = %v, want %v", got, want)
	}

	if !c.IsLinkedPos(Pos(0, 1)) {
		t.Error("IsLinkedPos(0,1) = false, want true")
	}
	if c.IsLinkedPos(Pos(9, 9)) {
		t.Error("IsLinkedPos(9,9) = true, want false")
	}

	c.unlink(Pos(0, 1))
	if c.IsLinkedPos(Pos(0, 1)) {
		t.Error("IsLinkedPos after unlink = true, want false")
	}
	if got := c.LinkCount(); got != 3 {
		t.Errorf("LinkCount() = %d, want 3", got)
	}

	// Unlinking a position that was never linked is a no-op.
	c.unlink(Pos(9, 9))
	if got := c.LinkCount(); got != 3 {
		t.Errorf("LinkCount() = %d, want 3", got)
	}
}

func TestCellWeightAndSolution(t *testing.T) {
	c := newCell(Pos(0, 0))

	if c.Weight() != 0 {
		t.Errorf("Weight() = %d, want 0", c.Weight())
	}
	c.SetWeight(42)
	if c.Weight() != 42 {
		t.Errorf("Weight() = %d, want 42", c.Weight())
	}

	if c.InSolution() {
		t.Error("InSolution() = true for a fresh cell")
	}
	c.MarkInSolution()
	if !c.InSolution() {
		t.Error("InSolution() = false after MarkInSolution")
	}
	c.ClearSolution()
	if c.InSolution() {
		t.Error("InSolution() = true after ClearSolution")
	}
}
