package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/session"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigPath = "config.json"

// loadConfig reads the config file named by -config, then lets the remaining
// flags in args override it. A missing file falls back to the defaults; a file
// that exists but cannot be parsed or validated is an error.
func loadConfig(fs *flag.FlagSet, args []string) (config utils.Config, path string, fromFile bool, err error) {
	// First pass only locates the config file
	var (
		scratch = utils.DefaultConfig()
		pre     = flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
		located = pre.String("config", defaultConfigPath, "")
	)
	scratch.Bind(pre)
	pre.SetOutput(io.Discard)
	_ = pre.Parse(args)
	path = *located

	config, err = utils.LoadConfig(path)
	switch {
	case err == nil:
		fromFile = true
	case os.IsNotExist(errors.Cause(err)):
		config = utils.DefaultConfig()
	default:
		return config, path, false, err
	}

	fs.String("config", path, "path to a JSON configuration file")
	config.Bind(fs)
	if err = fs.Parse(args); err != nil {
		return config, path, fromFile, errors.Wrap(err, "[loadConfig] failed to parse flags")
	}
	return config, path, fromFile, nil
}

func newLogger(config utils.Config) (*utils.Logger, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[newLogger] invalid configuration")
	}
	level, err := utils.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, err
	}
	return utils.NewLogger(os.Stderr, level), nil
}

// initializeSession sets up the initial game state
func initializeSession(config utils.Config, logger *utils.Logger) (*session.Session, *render.TerminalRenderer, error) {
	s := session.New(config, render.DefaultPalette(), logger)
	if err := s.Seed(); err != nil {
		return nil, nil, errors.Wrap(err, "[initializeSession] failed to seed world")
	}
	s.Enqueue(session.SetRunning{Running: true})
	s.Update(0)

	return s, &render.TerminalRenderer{}, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, s *session.Session) {
	fmt.Printf("Features: Memory Pool: %v, Parallel: %v (threshold %d), Auto reset: %v\n",
		config.UseMemoryPool, config.UseParallel, config.ParallelThreshold, config.AutoReset)
	fmt.Printf("Window: %dx%d | Pattern: %s | Initial living cells: %d\n",
		config.ViewportWidth, config.ViewportHeight, config.Pattern, s.World.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(s *session.Session, config utils.Config) {
	status := "Active"
	switch {
	case s.World.Population() == 0:
		status = "Extinct"
	case s.Stagnant() > 0:
		status = fmt.Sprintf("Stagnant (%d/%d)", s.Stagnant(), config.StagnationThreshold)
	case !s.Running():
		status = "Paused"
	}

	stats := s.Stats
	fmt.Printf("Gen: %d | Living: %d | Status: %s\n",
		s.World.Generation(), s.World.Population(), status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Chunks: %d visible | %d dirty | %d redrawn\n",
		stats.VisibleChunks, stats.DirtyChunks, stats.SurfacesRedrawn)
	fmt.Println()
}

func displayFinalStats(s *session.Session) {
	fmt.Println("\n🛑 Shutting down gracefully...")
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		s.Stats.TotalGenerations, time.Since(s.Stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		s.Stats.GenerationsPerSecond, s.Stats.AveragePopulation)
}
