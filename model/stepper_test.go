package model

import (
	"testing"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

func worldWith(cells ...Cell) *World {
	w := NewWorld()
	w.PlacePattern(cells)
	w.ClearDirtyChunks()
	return w
}

func assertAlive(t *testing.T, w *World, want ...Cell) {
	t.Helper()
	if w.Population() != len(want) {
		t.Fatalf("population = %d (%v), want %v", w.Population(), w.AliveCells(), want)
	}
	for _, c := range want {
		if !w.IsAlive(c.X, c.Y) {
			t.Fatalf("cell %v dead, alive cells %v", c, w.AliveCells())
		}
	}
}

// bruteForceStep evaluates every cell of the bounding box padded by one
func bruteForceStep(alive CellSet) CellSet {
	next := make(CellSet)
	if len(alive) == 0 {
		return next
	}
	var minX, minY, maxX, maxY int
	first := true
	for c := range alive {
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	for y := minY - 1; y <= maxY+1; y++ {
		for x := minX - 1; x <= maxX+1; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && alive.Has(Cell{x + dx, y + dy}) {
						n++
					}
				}
			}
			if rules.ApplyConwayRules(n, alive.Has(Cell{x, y})) {
				next.Add(Cell{x, y})
			}
		}
	}
	return next
}

func copyCells(s CellSet) CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out.Add(c)
	}
	return out
}

func TestBlinkerOscillation(t *testing.T) {
	w := worldWith(Cell{1, 2}, Cell{2, 2}, Cell{3, 2})

	w.ProgressGeneration()
	assertAlive(t, w, Cell{2, 1}, Cell{2, 2}, Cell{2, 3})

	w.ProgressGeneration()
	assertAlive(t, w, Cell{1, 2}, Cell{2, 2}, Cell{3, 2})

	if w.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", w.Generation())
	}
}

func TestBlockIsStill(t *testing.T) {
	block := []Cell{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}}
	w := worldWith(block...)
	for range 4 {
		w.ProgressGeneration()
		assertAlive(t, w, block...)
	}
	if n := len(w.DirtyChunks()); n != 0 {
		t.Fatalf("still life marked %d chunks dirty", n)
	}
}

func TestIsolatedCellDies(t *testing.T) {
	w := worldWith(Cell{-1000, 1000})
	w.ProgressGeneration()
	assertAlive(t, w)
	assertChunks(t, w.DirtyChunks(), ChunkKeyOf(-1000, 1000))
}

func TestEmptyWorldStepLeavesDirtyEmpty(t *testing.T) {
	w := NewWorld()
	w.ProgressGeneration()
	if n := len(w.DirtyChunks()); n != 0 {
		t.Fatalf("empty step marked %d chunks", n)
	}
	if w.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", w.Generation())
	}
}

func TestStepDoesNotChangeInitialPattern(t *testing.T) {
	w := worldWith(PatternRPentomino.At(0, 0)...)
	for range 10 {
		w.ProgressGeneration()
	}
	if got := w.InitialPattern(); len(got) != 5 {
		t.Fatalf("initial pattern changed to %v", got)
	}
}

func TestDirtyChunksMatchFlippedCells(t *testing.T) {
	// Blinker straddling the chunk corner at the origin
	w := worldWith(Cell{-1, 0}, Cell{0, 0}, Cell{1, 0})
	before := copyCells(w.alive)
	w.ProgressGeneration()

	want := ChunkSet{}
	for c := range before {
		if !w.alive.Has(c) {
			want.Add(c.ChunkKey())
		}
	}
	for c := range w.alive {
		if !before.Has(c) {
			want.Add(c.ChunkKey())
		}
	}
	// (-1,0) and (1,0) die, (0,-1) and (0,1) are born
	assertChunks(t, w.DirtyChunks(), want.Sorted()...)
	assertChunks(t, want, ChunkKey{-1, 0}, ChunkKey{0, 0}, ChunkKey{0, -1})
}

func TestStepMatchesBruteForce(t *testing.T) {
	seeds := []int64{1, 7, 42, 1337}
	for _, seed := range seeds {
		w := worldWith(RandomSoup(-20, 15, 40, 0.35, seed)...)
		for gen := range 12 {
			want := bruteForceStep(w.alive)
			w.ProgressGeneration()
			if len(want) != w.Population() {
				t.Fatalf("seed %d gen %d: population %d, brute force %d", seed, gen, w.Population(), len(want))
			}
			for c := range want {
				if !w.alive.Has(c) {
					t.Fatalf("seed %d gen %d: brute force has %v, sparse step does not", seed, gen, c)
				}
			}
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 8} {
		seq := worldWith(RandomSoup(0, 0, 80, 0.3, 99)...)
		par := NewPooledWorld(NewCountPool())
		par.PlacePattern(RandomSoup(0, 0, 80, 0.3, 99))
		par.ClearDirtyChunks()

		for gen := range 8 {
			seq.ProgressGeneration()
			par.ProgressGenerationParallel(workers)
			if seq.Hash() != par.Hash() {
				t.Fatalf("workers=%d gen %d: parallel population differs (%d vs %d)", workers, gen, par.Population(), seq.Population())
			}
		}
		if len(seq.DirtyChunks()) != len(par.DirtyChunks()) {
			t.Fatalf("workers=%d: dirty chunks %d vs %d", workers, len(par.DirtyChunks()), len(seq.DirtyChunks()))
		}
		if par.Generation() != 8 {
			t.Fatalf("workers=%d: generation = %d, want 8", workers, par.Generation())
		}
	}
}

func TestStepHonoursConfig(t *testing.T) {
	config := utils.DefaultConfig()
	config.UseParallel = true
	config.ParallelThreshold = 1
	config.Workers = 2

	w := worldWith(PatternGliderGun.At(0, 0)...)
	ref := worldWith(PatternGliderGun.At(0, 0)...)
	for range 30 {
		w.Step(config)
		ref.ProgressGeneration()
	}
	if w.Hash() != ref.Hash() {
		t.Fatal("config-driven stepping diverged from sequential stepping")
	}
}

func TestGliderTranslates(t *testing.T) {
	w := worldWith(PatternGlider.At(0, 0)...)
	for range 4 {
		w.ProgressGeneration()
	}
	// A glider moves one cell diagonally every four generations
	assertAlive(t, w, PatternGlider.At(1, 1)...)
}

func TestPooledWorldReusesMaps(t *testing.T) {
	pool := NewCountPool()
	w := NewPooledWorld(pool)
	w.PlacePattern(PatternPulsar.At(0, 0))
	for range 3 {
		w.ProgressGeneration()
	}
	// Pulsar has period 3
	assertAlive(t, w, PatternPulsar.At(0, 0)...)
	if counts := pool.Get(); len(counts) != 0 {
		t.Fatalf("pooled map not cleared: %d entries", len(counts))
	}
}
