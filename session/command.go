package session

import "github.com/sheikhrachel/go-life/model"

// Command is a queued request from input or a scheduler, applied on the next Update
type Command interface {
	apply(s *Session)
}

// ToggleCell flips one cell
type ToggleCell struct{ X, Y int }

// PlacePattern adds cells to the world without clearing others
type PlacePattern struct{ Cells []model.Cell }

// Reset restores the initial pattern
type Reset struct{}

// Clear empties the world
type Clear struct{}

// Step advances exactly one generation regardless of the timer
type Step struct{}

// SetRunning starts or pauses timed stepping
type SetRunning struct{ Running bool }

// ToggleRunning flips between running and paused
type ToggleRunning struct{}

// Faster shortens the tick interval
type Faster struct{}

// Slower lengthens the tick interval
type Slower struct{}

// Pan moves the camera by pan steps
type Pan struct{ DX, DY float32 }

// Zoom zooms the camera in or out by one step
type Zoom struct{ In bool }

func (c ToggleCell) apply(s *Session) {
	s.World.ToggleCell(c.X, c.Y)
	s.edited()
}

func (c PlacePattern) apply(s *Session) {
	s.World.PlacePattern(c.Cells)
	s.edited()
}

func (Reset) apply(s *Session) {
	s.World.Reset()
	s.edited()
}

func (Clear) apply(s *Session) {
	s.World.Clear()
	s.edited()
}

func (Step) apply(s *Session) { s.step() }

func (c SetRunning) apply(s *Session) { s.setRunning(c.Running) }

func (ToggleRunning) apply(s *Session) { s.setRunning(!s.running) }

func (Faster) apply(s *Session) {
	s.Timer.Faster()
	s.logger.Debugf("[SESSION] tick interval %v", s.Timer.Interval())
}

func (Slower) apply(s *Session) {
	s.Timer.Slower()
	s.logger.Debugf("[SESSION] tick interval %v", s.Timer.Interval())
}

func (c Pan) apply(s *Session) { s.Camera.Pan(c.DX, c.DY) }

func (c Zoom) apply(s *Session) {
	if c.In {
		s.Camera.ZoomIn()
	} else {
		s.Camera.ZoomOut()
	}
}
