package model

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// neighborOffsets lists the eight Moore-neighbourhood offsets
var neighborOffsets = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// ProgressGeneration advances the world by one generation.
// Only live cells and their neighbours are visited, so the cost follows the
// population rather than the extent of the grid.
func (w *World) ProgressGeneration() {
	counts := getCounts(w.pool, len(w.alive)*4)
	countCandidates(w.alive, counts)
	w.applyCounts(counts)
	putCounts(w.pool, counts)
}

// ProgressGenerationParallel advances the world by one generation, splitting
// candidate counting across workers. The result is identical to ProgressGeneration.
func (w *World) ProgressGenerationParallel(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if len(w.alive) < workers*2 {
		w.ProgressGeneration()
		return
	}

	cells := make([]Cell, 0, len(w.alive))
	for c := range w.alive {
		cells = append(cells, c)
	}

	var (
		eg             errgroup.Group
		cellsPerWorker = (len(cells) + workers - 1) / workers // Ceiling division
		partials       = make([]map[Cell]int, workers)
	)

	for i := range workers {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(cells))
		)
		if start >= len(cells) {
			break
		}

		eg.Go(func() error {
			partial := make(map[Cell]int, (end-start)*4)
			for _, c := range cells[start:end] {
				addCandidate(c, partial)
			}
			partials[i] = partial
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	counts := getCounts(w.pool, len(cells)*4)
	for _, partial := range partials {
		for c, n := range partial {
			counts[c] += n
		}
	}
	w.applyCounts(counts)
	putCounts(w.pool, counts)
}

// Step advances one generation using the strategy selected by config
func (w *World) Step(config utils.Config) {
	if config.UseParallel && len(w.alive) >= config.ParallelThreshold {
		w.ProgressGenerationParallel(config.Workers)
		return
	}
	w.ProgressGeneration()
}

// countCandidates fills counts with the live-neighbour count of every cell
// that is alive or adjacent to a live cell
func countCandidates(alive CellSet, counts map[Cell]int) {
	for c := range alive {
		addCandidate(c, counts)
	}
}

func addCandidate(c Cell, counts map[Cell]int) {
	// A live cell with no live neighbours must still be evaluated so it dies
	if _, ok := counts[c]; !ok {
		counts[c] = 0
	}
	for _, d := range neighborOffsets {
		counts[Cell{X: c.X + d.X, Y: c.Y + d.Y}]++
	}
}

// applyCounts swaps in the next population and marks every flipped cell dirty
func (w *World) applyCounts(counts map[Cell]int) {
	old := w.alive
	w.alive = make(CellSet, len(old))

	for c, n := range counts {
		wasAlive := old.Has(c)
		isAlive := rules.ApplyConwayRules(n, wasAlive)
		if isAlive {
			w.alive.Add(c)
		}
		if wasAlive != isAlive {
			w.dirty.MarkCell(c)
		}
	}

	w.generation++
}
