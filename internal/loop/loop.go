// Package loop runs the single-player terminal game: a private hub and one
// client session on the given reader and writer.
package loop

import (
	"bufio"
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/field"
	"github.com/tomz197/fireworks/internal/loop/client"
	"github.com/tomz197/fireworks/internal/loop/server"
)

// Options configures a local game.
type Options struct {
	Username     string
	Seed         int64
	Sink         field.Sink // extra field listener, e.g. sound
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc
}

// Run plays until the player quits or r is exhausted.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.Username == "" {
		opts.Username = "player"
	}

	hub := server.NewServer(opts.Logger)
	go hub.Run(ctx)

	c := client.NewClient(hub, r, w, client.ClientOptions{
		TermSizeFunc: opts.TermSizeFunc,
		Username:     opts.Username,
		Seed:         opts.Seed,
		Sink:         opts.Sink,
		Logger:       opts.Logger,
	})
	return c.Run()
}
