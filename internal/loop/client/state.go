package client

import (
	"time"

	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/input"
	"github.com/tomz197/fireworks/internal/physics"
)

// GameState represents the current game phase for a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen over a demo sky
	GameStatePlaying                   // Active gameplay
	GameStatePaused                    // Field frozen
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-session state. Each client has its own instance,
// managed by the Client.
type ClientState struct {
	Input         input.Input
	GameState     GameState
	Best          int               // best round score this session
	LastAward     int               // points of the last detonation
	termSizeFunc  draw.TermSizeFunc // Function to get terminal size
	Running       bool              // Client loop running
	delta         time.Duration     // Frame delta time, clamped
	shutdownTimer float64           // Countdown before auto-disconnect on shutdown
	isInactive    bool              // Whether the client is in inactive warning state
	reported      int               // last score sent to the hub
	dragging      bool              // left button held for drag selection
	lastPointer   physics.Point     // last pointer position in field coordinates
	notice        string            // hub news shown at the bottom
	noticeTimer   float64

	prevGameState GameState
	wasInactive   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStateStart,
		Running:   true,
		reported:  -1,
	}
}
