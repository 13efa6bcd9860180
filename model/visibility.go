package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// CellWorldSize is the side of one cell in world units
	CellWorldSize float32 = 4
	// ChunkWorldSize is the side of one chunk in world units
	ChunkWorldSize = ChunkSize * CellWorldSize
)

// CellToWorld returns the world-space centre of cell (x, y).
// World Y grows upward while cell Y grows downward.
func CellToWorld(x, y int) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(x)*CellWorldSize + CellWorldSize/2,
		-(float32(y)*CellWorldSize + CellWorldSize/2),
	}
}

// WorldToCell returns the cell containing a world-space position
func WorldToCell(pos mgl32.Vec2) Cell {
	return Cell{
		X: int(math.Floor(float64(pos.X() / CellWorldSize))),
		Y: int(math.Floor(float64(-pos.Y() / CellWorldSize))),
	}
}

// VisibleChunkRange returns the inclusive chunk rectangle covering the viewport
// plus one chunk of margin on every side. scale is world units per viewport unit.
func VisibleChunkRange(center mgl32.Vec2, scale, viewportWidth, viewportHeight float32) (min, max ChunkKey) {
	var (
		cx    = finite(center.X())
		cy    = finite(center.Y())
		halfW = mgl32.Abs(finite(viewportWidth)) * mgl32.Abs(finite(scale)) / 2
		halfH = mgl32.Abs(finite(viewportHeight)) * mgl32.Abs(finite(scale)) / 2
	)

	minX := cx - halfW
	maxX := cx + halfW
	// Camera Y points up, cell Y points down
	minY := -(cy + halfH)
	maxY := -(cy - halfH)

	min = ChunkKey{X: chunkIndex(minX) - 1, Y: chunkIndex(minY) - 1}
	max = ChunkKey{X: chunkIndex(maxX) + 1, Y: chunkIndex(maxY) + 1}
	return
}

// VisibleChunks returns every chunk that should have a surface for the given camera
func VisibleChunks(center mgl32.Vec2, scale, viewportWidth, viewportHeight float32) ChunkSet {
	lo, hi := VisibleChunkRange(center, scale, viewportWidth, viewportHeight)
	chunks := make(ChunkSet, (hi.X-lo.X+1)*(hi.Y-lo.Y+1))
	for cy := lo.Y; cy <= hi.Y; cy++ {
		for cx := lo.X; cx <= hi.X; cx++ {
			chunks.Add(ChunkKey{X: cx, Y: cy})
		}
	}
	return chunks
}

// maxChunkIndex bounds chunk indices so the margin arithmetic cannot overflow int
const maxChunkIndex = math.MaxInt / 2

func chunkIndex(v float32) int {
	f := math.Floor(float64(v / ChunkWorldSize))
	if math.IsNaN(f) {
		return 0
	}
	return int(max(min(f, maxChunkIndex), -maxChunkIndex))
}

func finite(v float32) float32 {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return v
}
