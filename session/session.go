package session

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

// Session owns a world and everything needed to drive it: the command queue,
// the simulation timer, the camera and the chunk surface cache.
// All methods must be called from a single goroutine.
type Session struct {
	World   *model.World
	Camera  *Camera
	Timer   *utils.SimulationTimer
	Cache   *render.ChunkCache
	Stats   *utils.Stats
	History model.History

	config   utils.Config
	logger   *utils.Logger
	queue    []Command
	running  bool
	stagnant int
}

// New creates a paused session with an empty world
func New(config utils.Config, palette render.Palette, logger *utils.Logger) *Session {
	world := model.NewWorld()
	if config.UseMemoryPool {
		world = model.NewPooledWorld(model.NewCountPool())
	}
	return &Session{
		World:  world,
		Camera: NewCamera(config),
		Timer:  utils.NewSimulationTimer(config),
		Cache:  render.NewChunkCache(palette, config.UseParallel, logger),
		Stats:  utils.NewStats(),
		config: config,
		logger: logger,
	}
}

// SeedCells returns the initial cells described by the pattern settings in config
func SeedCells(config utils.Config) ([]model.Cell, error) {
	switch config.Pattern {
	case "none":
		return nil, nil
	case "random":
		return model.RandomSoup(config.PatternX, config.PatternY, config.RandomSize, config.RandomDensity, config.Seed), nil
	}
	p, err := model.ParsePattern(config.Pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "[SeedCells] failed to resolve pattern: %+v", config.Pattern)
	}
	return p.At(config.PatternX, config.PatternY), nil
}

// Seed queues the configured initial pattern
func (s *Session) Seed() error {
	cells, err := SeedCells(s.config)
	if err != nil {
		return err
	}
	s.Enqueue(PlacePattern{Cells: cells})
	s.logger.Infof("[SESSION] seeded %q with %d cells at (%d,%d)", s.config.Pattern, len(cells), s.config.PatternX, s.config.PatternY)
	return nil
}

// Enqueue schedules commands for the next Update
func (s *Session) Enqueue(cmds ...Command) {
	s.queue = append(s.queue, cmds...)
}

// Running reports whether timed stepping is enabled
func (s *Session) Running() bool {
	return s.running
}

// Stagnant returns how many consecutive generations repeated a recent state
func (s *Session) Stagnant() int {
	return s.stagnant
}

// Update applies queued commands in order, then advances one generation if
// the session is running and a tick interval has elapsed. It reports whether
// a timed generation was stepped.
func (s *Session) Update(dt time.Duration) bool {
	for _, cmd := range s.queue {
		cmd.apply(s)
	}
	clear(s.queue)
	s.queue = s.queue[:0]

	if !s.running || !s.Timer.Advance(dt) {
		return false
	}
	s.step()
	return true
}

// Frame materializes the chunks visible in a viewport of the given size and
// redraws every stale surface
func (s *Session) Frame(viewportWidth, viewportHeight float32) render.SyncReport {
	var (
		visible = s.Camera.Visible(viewportWidth, viewportHeight)
		dirty   = len(s.World.DirtyChunks())
		report  = s.Cache.Sync(s.World, visible)
	)
	s.Stats.UpdateFrame(dirty, len(visible), report.Redrawn)
	return report
}

func (s *Session) step() {
	start := time.Now()

	// Compare before recording so the current state is not matched against itself
	if s.History.IsStagnant(s.World) {
		s.stagnant++
	} else {
		s.stagnant = 0
	}
	s.History.Update(s.World)

	if s.config.AutoReset && s.config.StagnationThreshold > 0 && s.stagnant >= s.config.StagnationThreshold {
		s.logger.Infof("[SESSION] stagnation detected at generation %d, restoring initial pattern", s.World.Generation())
		s.World.Reset()
		s.edited()
		return
	}

	s.World.Step(s.config)
	s.Stats.Update(s.World.Generation(), s.World.Population(), time.Since(start))

	if s.config.MaxGenerations > 0 && s.World.Generation() >= uint64(s.config.MaxGenerations) {
		s.logger.Infof("[SESSION] reached maximum generations limit (%d)", s.config.MaxGenerations)
		s.setRunning(false)
	}
}

// edited clears per-run bookkeeping after a direct edit of the world
func (s *Session) edited() {
	s.History.Reset()
	s.stagnant = 0
	s.Timer.Rewind()
}

func (s *Session) setRunning(running bool) {
	if s.running == running {
		return
	}
	s.running = running
	s.Timer.Rewind()
	s.logger.Debugf("[SESSION] running=%v at generation %d", running, s.World.Generation())
}
