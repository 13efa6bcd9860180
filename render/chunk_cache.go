package render

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// parallelRedrawMin is the smallest batch of surfaces worth rasterizing concurrently
const parallelRedrawMin = 4

// ChunkSurface is the rasterized image of one chunk: a cell byte per cell
// and an RGBA pixel per cell, both row-major.
type ChunkSurface struct {
	Key     model.ChunkKey
	cells   []uint8
	pixels  []byte
	version uint64
}

func newChunkSurface(key model.ChunkKey) *ChunkSurface {
	return &ChunkSurface{
		Key:    key,
		cells:  make([]uint8, model.ChunkSize*model.ChunkSize),
		pixels: make([]byte, 4*model.ChunkSize*model.ChunkSize),
	}
}

// Cells exposes the surface's cell values (1 alive, 0 dead)
func (s *ChunkSurface) Cells() []uint8 { return s.cells }

// Pixels exposes the surface's RGBA buffer
func (s *ChunkSurface) Pixels() []byte { return s.pixels }

// Version increases every time the surface is redrawn
func (s *ChunkSurface) Version() uint64 { return s.version }

// At reports whether the cell at local offset (x, y) was alive when last drawn
func (s *ChunkSurface) At(x, y int) bool {
	return s.cells[y*model.ChunkSize+x] != 0
}

func (s *ChunkSurface) rasterize(w *model.World, palette Palette) {
	origin, _ := model.ChunkBounds(s.Key)
	for y := range model.ChunkSize {
		row := s.cells[y*model.ChunkSize : (y+1)*model.ChunkSize]
		for x := range model.ChunkSize {
			if w.IsAlive(origin.X+x, origin.Y+y) {
				row[x] = 1
			} else {
				row[x] = 0
			}
		}
	}
	fillBinaryRGBA(s.pixels, s.cells, palette.Alive, palette.Dead)
	s.version++
}

// SyncReport describes what one Sync call changed
type SyncReport struct {
	Spawned   []model.ChunkKey
	Despawned []model.ChunkKey
	Redrawn   int
}

// ChunkCache keeps one surface per visible chunk and redraws only stale ones
type ChunkCache struct {
	surfaces map[model.ChunkKey]*ChunkSurface
	palette  Palette
	parallel bool
	logger   *utils.Logger
}

// NewChunkCache creates an empty cache. When parallel is set, large batches
// of surfaces are rasterized concurrently.
func NewChunkCache(palette Palette, parallel bool, logger *utils.Logger) *ChunkCache {
	return &ChunkCache{
		surfaces: make(map[model.ChunkKey]*ChunkSurface),
		palette:  palette,
		parallel: parallel,
		logger:   logger,
	}
}

// Surface returns the surface of a chunk if it is currently materialized
func (c *ChunkCache) Surface(key model.ChunkKey) (*ChunkSurface, bool) {
	s, ok := c.surfaces[key]
	return s, ok
}

// Len returns the number of materialized surfaces
func (c *ChunkCache) Len() int {
	return len(c.surfaces)
}

// Keys returns the materialized chunk keys in row-major order
func (c *ChunkCache) Keys() []model.ChunkKey {
	keys := make(model.ChunkSet, len(c.surfaces))
	for k := range c.surfaces {
		keys.Add(k)
	}
	return keys.Sorted()
}

// Sync brings the cache in line with the world: surfaces outside visible are
// dropped, newly visible chunks are drawn, and visible dirty chunks are redrawn.
// The world's dirty set is cleared only once every stale surface is redrawn.
func (c *ChunkCache) Sync(w *model.World, visible model.ChunkSet) SyncReport {
	var report SyncReport

	for key := range c.surfaces {
		if !visible.Has(key) {
			delete(c.surfaces, key)
			report.Despawned = append(report.Despawned, key)
		}
	}

	stale := make([]*ChunkSurface, 0, len(visible))
	for key := range visible {
		if _, ok := c.surfaces[key]; ok {
			continue
		}
		s := newChunkSurface(key)
		c.surfaces[key] = s
		stale = append(stale, s)
		report.Spawned = append(report.Spawned, key)
	}

	for key := range w.DirtyChunks() {
		s, ok := c.surfaces[key]
		// New surfaces are already queued; off-screen chunks are drawn when they appear
		if !ok || s.version == 0 {
			continue
		}
		stale = append(stale, s)
	}

	c.redraw(w, stale)
	report.Redrawn = len(stale)

	if len(report.Spawned) > 0 || len(report.Despawned) > 0 {
		c.logger.Debugf("[RENDER] spawned %d, despawned %d, redrew %d surfaces",
			len(report.Spawned), len(report.Despawned), report.Redrawn)
	}

	w.ClearDirtyChunks()
	return report
}

func (c *ChunkCache) redraw(w *model.World, stale []*ChunkSurface) {
	if !c.parallel || len(stale) < parallelRedrawMin {
		for _, s := range stale {
			s.rasterize(w, c.palette)
		}
		return
	}

	// Workers only read the world, which is not mutated during Sync
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for _, s := range stale {
		eg.Go(func() error {
			s.rasterize(w, c.palette)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		c.logger.Errorf("[RENDER] error in parallel redraw: %v", err)
	}
}
