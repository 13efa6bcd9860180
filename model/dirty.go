package model

// DirtyTracker accumulates the chunks whose rendered surface is stale.
// Marks are never dropped until Clear, so a renderer that clears only after
// resynchronizing cannot miss a change.
type DirtyTracker struct {
	chunks ChunkSet
}

// NewDirtyTracker returns an empty tracker
func NewDirtyTracker() *DirtyTracker {
	return &DirtyTracker{chunks: make(ChunkSet)}
}

// MarkCell marks the chunk owning c as dirty
func (d *DirtyTracker) MarkCell(c Cell) {
	d.chunks.Add(c.ChunkKey())
}

// MarkCells marks the chunk of every cell in cells
func (d *DirtyTracker) MarkCells(cells CellSet) {
	for c := range cells {
		d.MarkCell(c)
	}
}

// Chunks returns the dirty set. Callers must treat it as read-only.
func (d *DirtyTracker) Chunks() ChunkSet {
	return d.chunks
}

// Len returns the number of dirty chunks
func (d *DirtyTracker) Len() int {
	return len(d.chunks)
}

// Clear empties the dirty set
func (d *DirtyTracker) Clear() {
	clear(d.chunks)
}
