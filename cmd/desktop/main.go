package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/fireworks/internal/config"
	"github.com/tomz197/fireworks/internal/desktop"
	"github.com/tomz197/fireworks/internal/field"
	gameconfig "github.com/tomz197/fireworks/internal/loop/config"
	"github.com/tomz197/fireworks/internal/sound"
)

func main() {
	err := config.Load()
	logger := config.NewLogger(os.Stderr)
	if err != nil {
		logger.Fatal("config", "err", err)
	}

	var sink field.Sink
	if config.GetEnvBool("FIREWORKS_SOUND", true) {
		player := sound.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			sink = player
		}
	}

	game := desktop.New(desktop.Options{
		Seed:   config.GetEnvInt64("FIREWORKS_SEED", 0),
		Sink:   sink,
		Logger: logger,
	})

	ebiten.SetWindowSize(gameconfig.ViewWidth, gameconfig.ViewHeight)
	ebiten.SetWindowTitle("Fireworks")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
