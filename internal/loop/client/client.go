// Package client runs one terminal session: it owns a fireworks field,
// turns keys and mouse reports into field operations and renders the
// field with the half-block canvas.
package client

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/effect"
	"github.com/tomz197/fireworks/internal/field"
	"github.com/tomz197/fireworks/internal/input"
	"github.com/tomz197/fireworks/internal/loop/config"
	"github.com/tomz197/fireworks/internal/loop/server"
	"github.com/tomz197/fireworks/internal/physics"
)

// noticeSeconds is how long hub news stays on screen.
const noticeSeconds = 4.0

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	state        *ClientState
	field        *field.Field
	scene        *effect.Scene
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Seed         int64       // 0 seeds from the clock
	Sink         field.Sink  // extra field listener, e.g. sound
	Logger       *log.Logger // nil uses the default logger
}

// NewClient creates a new client registered with the given hub.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	handle := gs.RegisterClient(opts.Username)
	state := NewClientState()
	state.termSizeFunc = termSizeFunc

	scene := effect.NewScene(opts.Seed)
	var sink field.Sink = scene
	if opts.Sink != nil {
		sink = field.Multi(scene, opts.Sink)
	}
	f := field.New(field.Options{
		Rand:   field.NewRand(opts.Seed),
		Sink:   sink,
		Logger: logger.With("user", handle.Username),
	})

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	return &Client{
		server:       gs,
		handle:       handle,
		state:        state,
		field:        f,
		scene:        scene,
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger,
	}
}

// Run starts the client loop. Blocks until the client disconnects or the hub stops.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	draw.EnableMouse(c.writer)
	defer draw.ShowCursor(c.writer)
	defer draw.DisableMouse(c.writer)
	draw.ClearScreen(c.writer)

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = clampDelta(frameStart.Sub(lastTime))
		lastTime = frameStart

		c.processInput()
		c.processServerEvents()
		c.updateScreen()

		switch c.state.GameState {
		case GameStateStart:
			c.updateStartState()
		case GameStatePlaying:
			c.updatePlayingState()
		case GameStatePaused:
			c.updatePausedState()
		case GameStateShutdown:
			c.updateShutdownState()
		}
		c.updateNotice()

		if err := c.drawFrame(); err != nil {
			c.server.UnregisterClient(c.handle.ID)
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	c.server.UnregisterClient(c.handle.ID)
	c.logger.Debug("session finished", "user", c.handle.Username, "best", c.state.Best)

	draw.ClearScreen(c.writer)
	return nil
}

// clampDelta keeps a stalled terminal from teleporting fireworks.
func clampDelta(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > config.MaxFrameDelta {
		return config.MaxFrameDelta
	}
	return d
}

// processInput reads this frame's input and handles quitting and inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit || c.state.Input.Closed {
		c.state.Running = false
	}
}

// processServerEvents handles events from the hub.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Hub closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			case server.EventPlayerJoined:
				c.setNotice(event.Username + " joined")
			case server.EventPlayerLeft:
				c.setNotice(event.Username + " left")
			case server.EventNewRecord:
				c.setNotice(recordNotice(event.Username, event.Score))
			}
		default:
			return
		}
	}
}

func (c *Client) setNotice(msg string) {
	c.state.notice = msg
	c.state.noticeTimer = noticeSeconds
}

func (c *Client) updateNotice() {
	if c.state.noticeTimer <= 0 {
		return
	}
	c.state.noticeTimer -= c.state.delta.Seconds()
	if c.state.noticeTimer <= 0 {
		c.state.notice = ""
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > config.MaxTermWidth {
		renderWidth = config.MaxTermWidth
	}
	if renderHeight > config.MaxTermHeight {
		renderHeight = config.MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateStartState runs the demo sky behind the title screen.
func (c *Client) updateStartState() {
	c.advance()

	in := c.state.Input
	if in.Typed(' ', '\r', '\n') || pressedLeft(in.Pointers) {
		c.startGame()
	}
}

// updatePlayingState applies the player's actions, then advances the field.
func (c *Client) updatePlayingState() {
	in := c.state.Input
	switch {
	case in.Typed('p', 'P'):
		c.state.GameState = GameStatePaused
		return
	case in.Typed('r', 'R'):
		c.startGame()
		return
	}

	if in.Typed('\x1b') {
		c.field.ClearSelection()
	}
	c.handlePointers(in.Pointers)
	if in.Typed(' ') {
		c.detonate()
	}

	c.advance()
	c.reportScore()
}

// updatePausedState waits for the player to resume.
func (c *Client) updatePausedState() {
	in := c.state.Input
	switch {
	case in.Typed('p', 'P', ' '):
		c.state.GameState = GameStatePlaying
	case in.Typed('r', 'R'):
		c.startGame()
	}
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}

// advance moves the field and its effects forward by one frame.
func (c *Client) advance() {
	c.field.Tick(c.state.delta)
	c.scene.Update(c.state.delta)
}

// startGame starts or restarts a round.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)
	c.field.Reset()
	c.scene.Reset()
	c.state.LastAward = 0
	c.state.dragging = false
	c.state.GameState = GameStatePlaying
	c.reportScore()
}

// handlePointers selects fireworks under left clicks and drags and
// detonates on a right click.
func (c *Client) handlePointers(pointers []input.Pointer) {
	for _, p := range pointers {
		switch {
		case p.Button == input.ButtonLeft && p.Action == input.PointerPress:
			c.state.dragging = true
			c.selectAt(p)
		case p.Button == input.ButtonLeft && p.Action == input.PointerDrag:
			if c.state.dragging {
				c.selectAt(p)
			}
		case p.Button == input.ButtonLeft && p.Action == input.PointerRelease:
			c.state.dragging = false
		case p.Button == input.ButtonRight && p.Action == input.PointerPress:
			c.detonate()
		}
	}
}

func (c *Client) selectAt(p input.Pointer) {
	pt, ok := c.toField(p.Col, p.Row)
	if !ok {
		return
	}
	c.state.lastPointer = pt
	c.field.TrySelect(pt)
}

// toField converts an absolute terminal cell to field coordinates.
func (c *Client) toField(col, row int) (physics.Point, bool) {
	x, y, ok := c.canvas.TerminalToLogical(col, row)
	if !ok {
		return physics.Point{}, false
	}
	return physics.Point{X: x, Y: config.ViewHeight - y}, true
}

// detonate explodes the selection and shows the award.
func (c *Client) detonate() {
	delta := c.field.DetonateSelected()
	c.scene.ShowAward(delta)
	if delta > 0 {
		c.state.LastAward = delta
	}
}

// reportScore sends the score to the hub when it changed.
func (c *Client) reportScore() {
	score := c.field.Score()
	if score > c.state.Best {
		c.state.Best = score
	}
	if score == c.state.reported {
		return
	}
	c.state.reported = score
	c.server.ReportScore(c.handle.ID, score)
}

func pressedLeft(pointers []input.Pointer) bool {
	for _, p := range pointers {
		if p.Button == input.ButtonLeft && p.Action == input.PointerPress {
			return true
		}
	}
	return false
}
