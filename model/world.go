package model

// World is the sparse simulation state: the live population, the last
// user-authored pattern, the dirty chunks, and the generation counter.
// A World is not safe for concurrent use; the host serializes every call.
type World struct {
	alive      CellSet
	initial    CellSet
	dirty      *DirtyTracker
	generation uint64

	// Optional candidate map recycling
	pool *CountPool
}

// NewWorld creates an empty world at generation 0
func NewWorld() *World {
	return &World{
		alive:   make(CellSet),
		initial: make(CellSet),
		dirty:   NewDirtyTracker(),
	}
}

// NewPooledWorld creates an empty world that reuses candidate maps from pool
func NewPooledWorld(pool *CountPool) *World {
	w := NewWorld()
	w.pool = pool
	return w
}

// IsAlive reports whether the cell at (x, y) is alive
func (w *World) IsAlive(x, y int) bool {
	return w.alive.Has(Cell{X: x, Y: y})
}

// Generation returns the number of generations since the last edit or reset
func (w *World) Generation() uint64 {
	return w.generation
}

// Population returns the number of living cells
func (w *World) Population() int {
	return len(w.alive)
}

// AliveCells returns the living cells in row-major order
func (w *World) AliveCells() []Cell {
	return w.alive.Sorted()
}

// InitialPattern returns the user-authored pattern in row-major order
func (w *World) InitialPattern() []Cell {
	return w.initial.Sorted()
}

// ToggleCell flips the cell at (x, y) and mirrors the flip into the initial pattern
func (w *World) ToggleCell(x, y int) {
	c := Cell{X: x, Y: y}
	if w.alive.Has(c) {
		delete(w.alive, c)
		delete(w.initial, c)
	} else {
		w.alive.Add(c)
		w.initial.Add(c)
	}
	w.dirty.MarkCell(c)
	w.generation = 0
}

// PlacePattern adds every listed cell to the world and the initial pattern.
// Cells outside the pattern are left untouched.
func (w *World) PlacePattern(cells []Cell) {
	for _, c := range cells {
		w.alive.Add(c)
		w.initial.Add(c)
		w.dirty.MarkCell(c)
	}
	w.generation = 0
}

// Reset restores the initial pattern, discarding simulated generations
func (w *World) Reset() {
	next := make(CellSet, len(w.initial))
	for c := range w.initial {
		next.Add(c)
		if !w.alive.Has(c) {
			w.dirty.MarkCell(c)
		}
	}
	for c := range w.alive {
		if !next.Has(c) {
			w.dirty.MarkCell(c)
		}
	}
	w.alive = next
	w.generation = 0
}

// Clear kills every cell and forgets the initial pattern
func (w *World) Clear() {
	w.dirty.MarkCells(w.alive)
	w.dirty.MarkCells(w.initial)
	w.alive = make(CellSet)
	w.initial = make(CellSet)
	w.generation = 0
}

// DirtyChunks returns the chunks changed since the last ClearDirtyChunks.
// The returned set is owned by the world and must not be modified.
func (w *World) DirtyChunks() ChunkSet {
	return w.dirty.Chunks()
}

// ClearDirtyChunks empties the dirty set. Call it only after every dirty
// chunk's surface has been redrawn.
func (w *World) ClearDirtyChunks() {
	w.dirty.Clear()
}
