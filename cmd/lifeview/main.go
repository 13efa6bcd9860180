//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-life/app"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/session"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

func main() {
	configPath := flag.String("config", "", "optional JSON configuration file")
	cfg := utils.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		// Command-line flags still override the file
		fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
		fs.String("config", *configPath, "")
		loaded.Bind(fs)
		_ = fs.Parse(os.Args[1:])
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}
	level, err := utils.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := utils.NewLogger(os.Stderr, level)

	s := session.New(cfg, render.DefaultPalette(), logger)
	if err := s.Seed(); err != nil {
		log.Fatalf("%+v", err)
	}

	if !cfg.Interactive {
		s.Enqueue(session.SetRunning{Running: true})
	}

	game := app.New(s, windowWidth, windowHeight)

	ebiten.SetWindowTitle("go-life - " + cfg.Pattern)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
