package maze

import "testing"

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"Equal", Pos(2, 3), Pos(2, 3), 0},
		{"RowBefore", Pos(1, 9), Pos(2, 0), -1},
		{"RowAfter", Pos(3, 0), Pos(2, 9), 1},
		{"ColBefore", Pos(2, 1), Pos(2, 4), -1},
		{"ColAfter", Pos(2, 4), Pos(2, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := tt.a.Less(tt.b); got != (tt.want < 0) {
				t.Errorf("Less(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want < 0)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	if got := Pos(4, 17).String(); got != "4,17" {
		t.Errorf("String() = %q, want %q", got, "4,17")
	}
}
