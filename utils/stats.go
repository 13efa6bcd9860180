package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	StartTime            time.Time
	ActiveCells          int
	DirtyChunks          int
	VisibleChunks        int
	SurfacesRedrawn      int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a finished generation step and how long it took
func (s *Stats) Update(generation uint64, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// UpdateFrame records the chunk bookkeeping of one rendered frame
func (s *Stats) UpdateFrame(dirty, visible, redrawn int) {
	s.DirtyChunks = dirty
	s.VisibleChunks = visible
	s.SurfacesRedrawn = redrawn
}
