package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Pattern names a well-known Life configuration
type Pattern int

const (
	PatternNone Pattern = iota
	PatternGlider
	PatternLWSS
	PatternPulsar
	PatternGliderGun
	PatternRPentomino
	PatternAcorn
)

var patternCells = map[Pattern][]Cell{
	PatternGlider: {{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}},
	PatternLWSS: {
		{-1, -1}, {2, -1},
		{-2, 0},
		{-2, 1}, {2, 1},
		{-2, 2}, {-1, 2}, {0, 2}, {1, 2},
	},
	PatternPulsar: {
		{-4, -6}, {-3, -6}, {-2, -6}, {2, -6}, {3, -6}, {4, -6},
		{-6, -4}, {-1, -4}, {1, -4}, {6, -4},
		{-6, -3}, {-1, -3}, {1, -3}, {6, -3},
		{-6, -2}, {-1, -2}, {1, -2}, {6, -2},
		{-4, -1}, {-3, -1}, {-2, -1}, {2, -1}, {3, -1}, {4, -1},
		{-4, 1}, {-3, 1}, {-2, 1}, {2, 1}, {3, 1}, {4, 1},
		{-6, 2}, {-1, 2}, {1, 2}, {6, 2},
		{-6, 3}, {-1, 3}, {1, 3}, {6, 3},
		{-6, 4}, {-1, 4}, {1, 4}, {6, 4},
		{-4, 6}, {-3, 6}, {-2, 6}, {2, 6}, {3, 6}, {4, 6},
	},
	PatternGliderGun: {
		// left block
		{0, 4}, {0, 5}, {1, 4}, {1, 5},
		// left ship
		{10, 4}, {10, 5}, {10, 6}, {11, 3}, {11, 7}, {12, 2}, {12, 8}, {13, 2}, {13, 8},
		{14, 5}, {15, 3}, {15, 7}, {16, 4}, {16, 5}, {16, 6}, {17, 5},
		// right ship
		{20, 2}, {20, 3}, {20, 4}, {21, 2}, {21, 3}, {21, 4}, {22, 1}, {22, 5},
		{24, 0}, {24, 1}, {24, 5}, {24, 6},
		// right block
		{34, 2}, {34, 3}, {35, 2}, {35, 3},
	},
	PatternRPentomino: {{0, -1}, {1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	PatternAcorn:      {{-3, 1}, {-2, -1}, {-2, 1}, {0, 0}, {1, 1}, {2, 1}, {3, 1}},
}

var patternNames = map[Pattern][2]string{
	PatternNone:       {"none", ""},
	PatternGlider:     {"glider", "Glider"},
	PatternLWSS:       {"lwss", "LWSS"},
	PatternPulsar:     {"pulsar", "Pulsar"},
	PatternGliderGun:  {"glider-gun", "Glider Gun"},
	PatternRPentomino: {"r-pentomino", "R-pentomino"},
	PatternAcorn:      {"acorn", "Acorn"},
}

// Patterns returns every placeable pattern
func Patterns() []Pattern {
	return []Pattern{
		PatternGlider,
		PatternLWSS,
		PatternPulsar,
		PatternGliderGun,
		PatternRPentomino,
		PatternAcorn,
	}
}

// ParsePattern looks up a pattern by its config name
func ParsePattern(name string) (Pattern, error) {
	for p, n := range patternNames {
		if n[0] == name {
			return p, nil
		}
	}
	return PatternNone, errors.Errorf("[ParsePattern] unknown pattern: %q", name)
}

// Name returns the config name of the pattern
func (p Pattern) Name() string { return patternNames[p][0] }

// Label returns the display label of the pattern
func (p Pattern) Label() string { return patternNames[p][1] }

// Cells returns the pattern's cells relative to its origin
func (p Pattern) Cells() []Cell { return patternCells[p] }

// At returns the pattern's cells translated to (x, y)
func (p Pattern) At(x, y int) []Cell {
	offsets := p.Cells()
	cells := make([]Cell, len(offsets))
	for i, o := range offsets {
		cells[i] = Cell{X: x + o.X, Y: y + o.Y}
	}
	return cells
}

// RandomSoup returns a random size x size block of cells centred on (x, y),
// each alive with probability density
func RandomSoup(x, y, size int, density float64, seed int64) []Cell {
	if size <= 0 || density <= 0 {
		return nil
	}
	var (
		rng   = rand.New(rand.NewPCG(uint64(seed), 0))
		cells = make([]Cell, 0, int(float64(size*size)*density)+1)
		left  = x - size/2
		top   = y - size/2
	)
	for dy := range size {
		for dx := range size {
			if rng.Float64() < density {
				cells = append(cells, Cell{X: left + dx, Y: top + dy})
			}
		}
	}
	return cells
}
