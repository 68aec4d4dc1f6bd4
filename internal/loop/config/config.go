// Package config centralizes the tunable parameters of the game shells.
package config

import "time"

// View resolution: the canvas maps the whole field onto the terminal.
// Logical units equal field units; the height covers the visible 768.
const (
	ViewWidth  = 1024
	ViewHeight = 768
)

// Max render resolution in terminal cells. Larger terminals get a border.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Rendering of fireworks, in field units.
const (
	RocketSize        = 18.0
	SelectedBlinkFreq = 6.0 // Hz
)

// Player
const (
	MaxUsernameLength = 16 // Maximum display length for player usernames
)

// Leaderboard
const (
	LeaderboardSize = 5
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	MaxFrameDelta         = 100 * time.Millisecond
)

// Hub tick rate
const (
	ServerTickRate = 20
	ServerTickTime = time.Second / ServerTickRate
)
