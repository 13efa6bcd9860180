package model

import (
	"cmp"
	"slices"
)

const (
	// ChunkSize is the number of cells per side of a chunk
	ChunkSize = 64
)

// Cell is a single location on the unbounded grid
type Cell struct {
	X, Y int
}

// ChunkKey identifies a ChunkSize x ChunkSize square of cells
type ChunkKey struct {
	X, Y int
}

// ChunkKeyOf returns the key of the chunk owning cell (x, y).
// Floor division keeps -1 and -64 in chunk -1 while 0 lands in chunk 0.
func ChunkKeyOf(x, y int) ChunkKey {
	return ChunkKey{X: floorDiv(x, ChunkSize), Y: floorDiv(y, ChunkSize)}
}

// ChunkKey returns the key of the chunk owning the cell
func (c Cell) ChunkKey() ChunkKey {
	return ChunkKeyOf(c.X, c.Y)
}

// ChunkBounds returns the inclusive cell range covered by a chunk
func ChunkBounds(key ChunkKey) (min, max Cell) {
	min = Cell{X: key.X * ChunkSize, Y: key.Y * ChunkSize}
	max = Cell{X: min.X + ChunkSize - 1, Y: min.Y + ChunkSize - 1}
	return
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// CellSet is a set of cells
type CellSet map[Cell]struct{}

// Has reports whether the set contains c
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c into the set
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Sorted returns the cells ordered by row, then column
func (s CellSet) Sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareCells)
	return cells
}

func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// ChunkSet is a set of chunk keys
type ChunkSet map[ChunkKey]struct{}

// Has reports whether the set contains key
func (s ChunkSet) Has(key ChunkKey) bool {
	_, ok := s[key]
	return ok
}

// Add inserts key into the set
func (s ChunkSet) Add(key ChunkKey) {
	s[key] = struct{}{}
}

// Sorted returns the keys ordered by row, then column
func (s ChunkSet) Sorted() []ChunkKey {
	keys := make([]ChunkKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareChunkKeys)
	return keys
}

func compareChunkKeys(a, b ChunkKey) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
