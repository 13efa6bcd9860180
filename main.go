package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/session"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, configPath, fromFile, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !fromFile {
		logger.Infof("[SESSION] using default configuration (%s not found)", configPath)
	}

	s, renderer, err := initializeSession(config, logger)
	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}
	displayGameInfo(config, s)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		cols, rows    = config.ViewportWidth, config.ViewportHeight
		viewW, viewH  = terminalViewport(s, cols, rows)
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			displayFinalStats(s)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		s.Update(frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		s.Frame(viewW, viewH)
		displayGameStatus(s, config)
		renderer.Display(s.Cache, s.Camera.CenterCell(), cols, rows)

		if config.MaxGenerations > 0 && !s.Running() {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		// Wait before next frame
		time.Sleep(s.Timer.Interval())
	}
	displayFinalStats(s)
}

// terminalViewport converts a terminal window of cols x rows cells into the
// viewport size, in viewport units, the camera needs to cover that window
func terminalViewport(s *session.Session, cols, rows int) (float32, float32) {
	scale := s.Camera.Scale
	return float32(cols) * model.CellWorldSize / scale, float32(rows) * model.CellWorldSize / scale
}
