package utils

import "time"

// SimulationTimer is a repeating interval timer driving generation steps
type SimulationTimer struct {
	interval    time.Duration
	min, max    time.Duration
	step        time.Duration
	accumulator time.Duration
}

// NewSimulationTimer constructs a timer from the tick settings in config
func NewSimulationTimer(config Config) *SimulationTimer {
	t := &SimulationTimer{
		min:  config.MinTickInterval,
		max:  config.MaxTickInterval,
		step: config.TickIntervalStep,
	}
	t.SetInterval(config.TickInterval)
	return t
}

// Interval returns the current tick interval
func (t *SimulationTimer) Interval() time.Duration {
	return t.interval
}

// SetInterval changes the tick interval, clamped to the configured bounds
func (t *SimulationTimer) SetInterval(d time.Duration) {
	t.interval = min(max(d, t.min), t.max)
}

// Faster shortens the interval by one step
func (t *SimulationTimer) Faster() {
	t.SetInterval(t.interval - t.step)
}

// Slower lengthens the interval by one step
func (t *SimulationTimer) Slower() {
	t.SetInterval(t.interval + t.step)
}

// Advance adds dt to the timer and reports whether an interval elapsed.
// It fires at most once per call; surplus time carries over to later calls.
func (t *SimulationTimer) Advance(dt time.Duration) bool {
	t.accumulator += dt
	if t.accumulator < t.interval {
		return false
	}
	t.accumulator -= t.interval
	// Do not build an unbounded backlog after a stall
	if t.accumulator > t.interval {
		t.accumulator = t.interval
	}
	return true
}

// Rewind drops any accumulated time
func (t *SimulationTimer) Rewind() {
	t.accumulator = 0
}
