package solve

import (
	"testing"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// serpentine carves a single corridor through a 3x3 grid:
//
//	(0,0)-(0,1)-(0,2)
//	                |
//	(1,0)-(1,1)-(1,2)
//	  |
//	(2,0)-(2,1)-(2,2)
func serpentine(t *testing.T) *maze.RectGrid {
	t.Helper()

	g, err := maze.NewRect(3, 3)
	if err != nil {
		t.Fatalf("NewRect: %v", err)
	}
	pairs := [][2]maze.Position{
		{maze.Pos(0, 0), maze.Pos(0, 1)},
		{maze.Pos(0, 1), maze.Pos(0, 2)},
		{maze.Pos(0, 2), maze.Pos(1, 2)},
		{maze.Pos(1, 2), maze.Pos(1, 1)},
		{maze.Pos(1, 1), maze.Pos(1, 0)},
		{maze.Pos(1, 0), maze.Pos(2, 0)},
		{maze.Pos(2, 0), maze.Pos(2, 1)},
		{maze.Pos(2, 1), maze.Pos(2, 2)},
	}
	for _, pair := range pairs {
		if err := g.Link(pair[0], pair[1]); err != nil {
			t.Fatalf("Link(%s, %s): %v", pair[0], pair[1], err)
		}
	}
	return g
}

func TestDistancesFrom(t *testing.T) {
	g := serpentine(t)

	dist, err := DistancesFrom(g, maze.Pos(0, 0))
	if err != nil {
		t.Fatalf("DistancesFrom: %v", err)
	}

	tests := []struct {
		pos  maze.Position
		want int
	}{
		{maze.Pos(0, 0), 0},
		{maze.Pos(0, 2), 2},
		{maze.Pos(1, 0), 5},
		{maze.Pos(2, 2), 8},
	}
	for _, tt := range tests {
		got, ok := dist.Distance(tt.pos)
		if !ok {
			t.Errorf("Distance(%s): unreachable, want %d", tt.pos, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("Distance(%s) = %d, want %d", tt.pos, got, tt.want)
		}
	}

	// Weights are stamped for renderers.
	cell, _ := g.Cell(maze.Pos(2, 2))
	if cell.Weight() != 8 {
		t.Errorf("Weight(2,2) = %d, want 8", cell.Weight())
	}
}

func TestDistancesFromDisconnected(t *testing.T) {
	g, err := maze.NewRect(3, 3)
	if err != nil {
		t.Fatalf("NewRect: %v", err)
	}
	if err := g.Link(maze.Pos(0, 0), maze.Pos(0, 1)); err != nil {
		t.Fatalf("Link: %v", err)
	}

	dist, err := DistancesFrom(g, maze.Pos(0, 0))
	if err != nil {
		t.Fatalf("DistancesFrom: %v", err)
	}
	if len(dist) != 2 {
		t.Errorf("len(dist) = %d, want 2", len(dist))
	}
	if _, ok := dist.Distance(maze.Pos(2, 2)); ok {
		t.Error("Distance(2,2): reachable, want absent")
	}
}

func TestDistancesFromInvalidStart(t *testing.T) {
	g := serpentine(t)

	_, err := DistancesFrom(g, maze.Pos(5, 5))
	if !errors.Is(err, errors.ErrCodeInvalidPosition) {
		t.Fatalf("DistancesFrom(5,5) error = %v, want INVALID_POSITION", err)
	}
}

func TestDistanceMapMax(t *testing.T) {
	g := serpentine(t)

	dist, err := DistancesFrom(g, maze.Pos(0, 0))
	if err != nil {
		t.Fatalf("DistancesFrom: %v", err)
	}
	pos, d, ok := dist.Max()
	if !ok {
		t.Fatal("Max: empty map")
	}
	if pos != maze.Pos(2, 2) || d != 8 {
		t.Errorf("Max = %s/%d, want 2,2/8", pos, d)
	}
}

func TestDistanceMapMaxTie(t *testing.T) {
	m := DistanceMap{
		maze.Pos(0, 0): 0,
		maze.Pos(1, 1): 3,
		maze.Pos(0, 2): 3,
	}
	pos, d, ok := m.Max()
	if !ok {
		t.Fatal("Max: empty map")
	}
	if pos != maze.Pos(0, 2) || d != 3 {
		t.Errorf("Max = %s/%d, want 0,2/3 (earlier position wins ties)", pos, d)
	}
}

func TestSolve(t *testing.T) {
	g := serpentine(t)

	path, err := Solve(g, maze.Pos(0, 0), maze.Pos(2, 2))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(path) != 9 {
		t.Fatalf("len(path) = %d, want 9", len(path))
	}
	if path[0] != maze.Pos(0, 0) || path[len(path)-1] != maze.Pos(2, 2) {
		t.Errorf("path endpoints = %s..%s, want 0,0..2,2", path[0], path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		if !g.IsLinked(path[i-1], path[i]) {
			t.Errorf("path step %s -> %s is not linked", path[i-1], path[i])
		}
	}
	for _, p := range path {
		cell, _ := g.Cell(p)
		if !cell.InSolution() {
			t.Errorf("cell %s not marked in-solution", p)
		}
	}
}

func TestSolveClearsPreviousPath(t *testing.T) {
	g := serpentine(t)

	if _, err := Solve(g, maze.Pos(0, 0), maze.Pos(2, 2)); err != nil {
		t.Fatalf("first Solve: %v", err)
	}
	if _, err := Solve(g, maze.Pos(0, 0), maze.Pos(0, 2)); err != nil {
		t.Fatalf("second Solve: %v", err)
	}

	cell, _ := g.Cell(maze.Pos(2, 2))
	if cell.InSolution() {
		t.Error("cell 2,2 still marked after shorter re-solve")
	}
	cell, _ = g.Cell(maze.Pos(0, 1))
	if !cell.InSolution() {
		t.Error("cell 0,1 not marked on new path")
	}
}

func TestSolveUnreachable(t *testing.T) {
	g, err := maze.NewRect(3, 3)
	if err != nil {
		t.Fatalf("NewRect: %v", err)
	}
	if err := g.Link(maze.Pos(0, 0), maze.Pos(0, 1)); err != nil {
		t.Fatalf("Link: %v", err)
	}

	_, err = Solve(g, maze.Pos(0, 0), maze.Pos(2, 2))
	if !errors.Is(err, errors.ErrCodeUnreachable) {
		t.Fatalf("Solve error = %v, want UNREACHABLE", err)
	}
}

func TestSolveInvalidPositions(t *testing.T) {
	g := serpentine(t)

	tests := []struct {
		name          string
		start, target maze.Position
	}{
		{"start outside", maze.Pos(-1, 0), maze.Pos(2, 2)},
		{"target outside", maze.Pos(0, 0), maze.Pos(3, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(g, tt.start, tt.target)
			if !errors.Is(err, errors.ErrCodeInvalidPosition) {
				t.Fatalf("Solve error = %v, want INVALID_POSITION", err)
			}
		})
	}
}

func TestSolveSameStartAndTarget(t *testing.T) {
	g := serpentine(t)

	path, err := Solve(g, maze.Pos(1, 1), maze.Pos(1, 1))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(path) != 1 || path[0] != maze.Pos(1, 1) {
		t.Errorf("path = %v, want [1,1]", path)
	}
}

func TestFurthestCorners(t *testing.T) {
	g := serpentine(t)

	from, to, err := FurthestCorners(g)
	if err != nil {
		t.Fatalf("FurthestCorners: %v", err)
	}
	if from != maze.Pos(0, 0) || to != maze.Pos(2, 2) {
		t.Errorf("FurthestCorners = %s, %s, want 0,0 and 2,2", from, to)
	}
}

func TestFurthestCornersSingleCell(t *testing.T) {
	g, err := maze.NewRect(1, 1)
	if err != nil {
		t.Fatalf("NewRect: %v", err)
	}

	from, to, err := FurthestCorners(g)
	if err != nil {
		t.Fatalf("FurthestCorners: %v", err)
	}
	if from != maze.Pos(0, 0) || to != maze.Pos(0, 0) {
		t.Errorf("FurthestCorners = %s, %s, want 0,0 twice", from, to)
	}
}

func TestFurthestOnRim(t *testing.T) {
	g, err := maze.NewPolar(2)
	if err != nil {
		t.Fatalf("NewPolar: %v", err)
	}
	// Chain: hub -> (1,0) -> (1,1) -> ... -> (1,5), no wrap link.
	if err := g.Link(maze.Pos(0, 0), maze.Pos(1, 0)); err != nil {
		t.Fatalf("Link: %v", err)
	}
	for col := 0; col < 5; col++ {
		if err := g.Link(maze.Pos(1, col), maze.Pos(1, col+1)); err != nil {
			t.Fatalf("Link: %v", err)
		}
	}

	got, err := FurthestOnRim(g, maze.Pos(0, 0))
	if err != nil {
		t.Fatalf("FurthestOnRim: %v", err)
	}
	if got != maze.Pos(1, 5) {
		t.Errorf("FurthestOnRim = %s, want 1,5", got)
	}
}

func TestFurthestOnRimTie(t *testing.T) {
	g, err := maze.NewPolar(2)
	if err != nil {
		t.Fatalf("NewPolar: %v", err)
	}
	// (1,1) and (1,5) are both two steps from the hub; earlier traversal
	// order wins.
	for _, pair := range [][2]maze.Position{
		{maze.Pos(0, 0), maze.Pos(1, 0)},
		{maze.Pos(1, 0), maze.Pos(1, 1)},
		{maze.Pos(1, 0), maze.Pos(1, 5)},
	} {
		if err := g.Link(pair[0], pair[1]); err != nil {
			t.Fatalf("Link(%s, %s): %v", pair[0], pair[1], err)
		}
	}

	got, err := FurthestOnRim(g, maze.Pos(0, 0))
	if err != nil {
		t.Fatalf("FurthestOnRim: %v", err)
	}
	if got != maze.Pos(1, 1) {
		t.Errorf("FurthestOnRim = %s, want 1,1", got)
	}
}
