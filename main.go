package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/mind-map/internal/config"
	"github.com/iburimskiy/mind-map/internal/game"
)

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run() error {
	cfg, err := config.Default()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(config.TPS)

	g := game.New(cfg, logger)
	g.Start()
	defer g.Close()

	logger.Info("starting",
		zap.Float64("seed", cfg.Seed),
		zap.Int("nodes", cfg.Graph.Generator().TotalNodes()),
		zap.Bool("audible", cfg.Ambience.Audible),
	)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "mind-map:", err)
		_ = zenity.Error(err.Error(), zenity.Title("Mind Map"), zenity.ErrorIcon)
		os.Exit(1)
	}
}
