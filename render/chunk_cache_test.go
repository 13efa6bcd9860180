package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-life/model"
)

func keys(ks ...model.ChunkKey) model.ChunkSet {
	s := model.ChunkSet{}
	for _, k := range ks {
		s.Add(k)
	}
	return s
}

func TestSyncSpawnsAndDespawns(t *testing.T) {
	w := model.NewWorld()
	cache := NewChunkCache(DefaultPalette(), false, nil)

	report := cache.Sync(w, keys(model.ChunkKey{0, 0}, model.ChunkKey{1, 0}))
	if len(report.Spawned) != 2 || len(report.Despawned) != 0 || report.Redrawn != 2 {
		t.Fatalf("first sync report = %+v", report)
	}

	report = cache.Sync(w, keys(model.ChunkKey{1, 0}, model.ChunkKey{-1, 0}))
	if len(report.Spawned) != 1 || report.Spawned[0] != (model.ChunkKey{-1, 0}) {
		t.Fatalf("second sync spawned %v", report.Spawned)
	}
	if len(report.Despawned) != 1 || report.Despawned[0] != (model.ChunkKey{0, 0}) {
		t.Fatalf("second sync despawned %v", report.Despawned)
	}
	if cache.Len() != 2 {
		t.Fatalf("cache holds %d surfaces, want 2", cache.Len())
	}
	if got := cache.Keys(); got[0] != (model.ChunkKey{-1, 0}) || got[1] != (model.ChunkKey{1, 0}) {
		t.Fatalf("cache keys = %v", got)
	}
}

func TestSyncRedrawsOnlyDirtyChunks(t *testing.T) {
	w := model.NewWorld()
	visible := keys(model.ChunkKey{0, 0}, model.ChunkKey{-1, -1}, model.ChunkKey{5, 5})
	cache := NewChunkCache(DefaultPalette(), false, nil)
	cache.Sync(w, visible)

	w.ToggleCell(-1, -1)
	w.ToggleCell(1000, 1000) // off-screen
	report := cache.Sync(w, visible)
	if report.Redrawn != 1 {
		t.Fatalf("redrew %d surfaces, want 1", report.Redrawn)
	}
	if len(w.DirtyChunks()) != 0 {
		t.Fatal("sync did not clear the dirty set")
	}

	s, _ := cache.Surface(model.ChunkKey{-1, -1})
	if !s.At(model.ChunkSize-1, model.ChunkSize-1) {
		t.Fatal("surface does not show the toggled cell")
	}
	if s.Version() != 2 {
		t.Fatalf("surface version = %d, want 2", s.Version())
	}
	untouched, _ := cache.Surface(model.ChunkKey{5, 5})
	if untouched.Version() != 1 {
		t.Fatalf("clean surface redrawn, version %d", untouched.Version())
	}

	// The off-screen change is picked up when its chunk becomes visible
	cache.Sync(w, keys(model.ChunkKey{15, 15}))
	far, _ := cache.Surface(model.ChunkKey{15, 15})
	if !far.At(1000-15*model.ChunkSize, 1000-15*model.ChunkSize) {
		t.Fatal("newly visible surface missing its live cell")
	}
}

func TestSurfaceTracksSteppedWorld(t *testing.T) {
	w := model.NewWorld()
	w.PlacePattern(model.PatternGliderGun.At(-18, -4))
	visible := model.VisibleChunks(model.CellToWorld(0, 0), 1, 4*model.ChunkWorldSize, 4*model.ChunkWorldSize)

	for _, parallel := range []bool{false, true} {
		cache := NewChunkCache(DefaultPalette(), parallel, nil)
		for range 40 {
			w.ProgressGeneration()
			cache.Sync(w, visible)
		}
		for key := range visible {
			s, ok := cache.Surface(key)
			if !ok {
				t.Fatalf("parallel=%v: visible chunk %v has no surface", parallel, key)
			}
			origin, _ := model.ChunkBounds(key)
			for y := range model.ChunkSize {
				for x := range model.ChunkSize {
					if s.At(x, y) != w.IsAlive(origin.X+x, origin.Y+y) {
						t.Fatalf("parallel=%v: surface %v stale at (%d,%d)", parallel, key, x, y)
					}
				}
			}
		}
	}
}

func TestSurfacePixelsUsePalette(t *testing.T) {
	w := model.NewWorld()
	w.ToggleCell(2, 0)
	palette := Palette{Alive: color.RGBA{R: 10, G: 20, B: 30, A: 255}, Dead: color.RGBA{A: 255}}
	cache := NewChunkCache(palette, false, nil)
	cache.Sync(w, keys(model.ChunkKey{0, 0}))

	s, _ := cache.Surface(model.ChunkKey{0, 0})
	px := s.Pixels()
	if got := px[8:12]; !bytes.Equal(got, []byte{10, 20, 30, 255}) {
		t.Fatalf("alive pixel = %v", got)
	}
	if got := px[0:4]; !bytes.Equal(got, []byte{0, 0, 0, 255}) {
		t.Fatalf("dead pixel = %v", got)
	}
}

func TestTerminalDisplay(t *testing.T) {
	w := model.NewWorld()
	w.PlacePattern([]model.Cell{{-1, 0}, {0, 0}, {1, 0}})
	cache := NewChunkCache(DefaultPalette(), false, nil)
	cache.Sync(w, model.VisibleChunks(model.CellToWorld(0, 0), 1, 64, 64))

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.Display(cache, model.Cell{}, 5, 3)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		strings.Repeat(gridPosEmpty, 5),
		gridPosEmpty + strings.Repeat(gridPosBlock, 3) + gridPosEmpty,
		strings.Repeat(gridPosEmpty, 5),
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
