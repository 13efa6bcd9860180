package model

import "testing"

func TestHashIgnoresInsertionOrder(t *testing.T) {
	a := worldWith(Cell{1, 1}, Cell{-5, 3}, Cell{0, 0})
	b := worldWith(Cell{0, 0}, Cell{1, 1}, Cell{-5, 3})
	if a.Hash() != b.Hash() {
		t.Fatal("equal populations hash differently")
	}
	b.ToggleCell(9, 9)
	if a.Hash() == b.Hash() {
		t.Fatal("different populations hash equally")
	}
}

func TestHistoryDetectsStagnation(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		want  bool
	}{
		{"block", []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, true},
		{"blinker", []Cell{{0, 0}, {1, 0}, {2, 0}}, true},
		{"pulsar", PatternPulsar.At(0, 0), true},
		{"glider", PatternGlider.At(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h History
			w := worldWith(tt.cells...)
			for range 4 {
				h.Update(w)
				w.ProgressGeneration()
			}
			if got := h.IsStagnant(w); got != tt.want {
				t.Fatalf("IsStagnant = %v, want %v", got, tt.want)
			}
			h.Reset()
			if h.IsStagnant(w) {
				t.Fatal("IsStagnant true after Reset")
			}
		})
	}
}
