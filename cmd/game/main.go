package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tomz197/fireworks/internal/config"
	"github.com/tomz197/fireworks/internal/field"
	"github.com/tomz197/fireworks/internal/loop"
	"github.com/tomz197/fireworks/internal/sound"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// stdout is the game screen, so logs go to a file if anywhere.
	logOut, closeLog, err := config.OpenLogFile(config.GetEnv("FIREWORKS_LOG_FILE", ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger := config.NewLogger(logOut)

	var sink field.Sink
	if config.GetEnvBool("FIREWORKS_SOUND", false) {
		player := sound.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			sink = player
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(reader, os.Stdout, loop.Options{
		Username: config.GetEnv("USER", "player"),
		Seed:     config.GetEnvInt64("FIREWORKS_SEED", 0),
		Sink:     sink,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("game error", "err", err)
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
