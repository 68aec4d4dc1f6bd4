package client

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/field"
	"github.com/tomz197/fireworks/internal/loop/config"
	"github.com/tomz197/fireworks/internal/loop/server"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	c.drawField()

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawAwards()
	c.drawUI(c.server.GetSnapshot())

	return c.chunkWriter.Flush()
}

// writeText writes s at a 1-based canvas position and marks the cells so
// the canvas repaints them once the text is gone.
func (c *Client) writeText(col, row int, s string) {
	n := utf8.RuneCountInString(s)
	if col < 1 || row < 1 || row > c.canvas.TerminalHeight() || col+n-1 > c.canvas.TerminalWidth() {
		return
	}
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, n)
}

// writeStyled is writeText with an ANSI style around the text.
func (c *Client) writeStyled(col, row int, style, s string) {
	n := utf8.RuneCountInString(s)
	if col < 1 || row < 1 || row > c.canvas.TerminalHeight() || col+n-1 > c.canvas.TerminalWidth() {
		return
	}
	c.chunkWriter.WriteAt(col, row, style+s+draw.ColorReset)
	c.canvas.MarkTextDirty(col, row, n)
}

func (c *Client) writeCentered(row int, s string) {
	c.writeText(c.canvas.TerminalWidth()/2-utf8.RuneCountInString(s)/2, row, s)
}

// drawAwards draws the floating "+points" labels.
func (c *Client) drawAwards() {
	for _, a := range c.scene.Awards {
		x, y := a.Pos()
		p := toView(x, y)
		col, row := c.canvas.LogicalToTerminal(p.X, p.Y)
		label := "+" + strconv.Itoa(a.Points)
		style := draw.ColorBold + draw.ColorYellow
		if a.Life() < 0.3 {
			style = draw.ColorDim + draw.ColorYellow
		}
		c.writeStyled(col-len(label)/2, row, style, label)
	}
}

// drawUI draws the game UI overlay.
func (c *Client) drawUI(snapshot *server.HubSnapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerY)
		return
	}

	switch c.state.GameState {
	case GameStatePlaying:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
	case GameStatePaused:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
		c.drawPausedScreen(centerY)
	case GameStateStart:
		c.drawStartScreen(centerY)
		c.drawLeaderboard(termWidth, snapshot)
	}

	if c.state.notice != "" {
		c.writeCentered(termHeight-1, fmt.Sprintf(" %s ", c.state.notice))
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerY int) {
	c.writeCentered(centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	c.writeCentered(centerY, msg)
	c.writeCentered(centerY+2, "Press any key to continue")
}

// drawStartScreen draws the title screen over the demo sky.
func (c *Client) drawStartScreen(centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  ___ ___ ___ _____      _____  ___ _  _____  `,
		` | __|_ _| _ \ __\ \    / / _ \| _ \ |/ / __| `,
		` | _| | ||   / _| \ \/\/ / (_) |   / ' <\__ \ `,
		` |_| |___|_|_\___| \_/\_/ \___/|_|_\_|\_\___/ `,
		`                                              `,
	}

	titleStartY := centerY - 8
	for i, line := range titleArt {
		c.writeStyled(c.canvas.TerminalWidth()/2-len(line)/2, titleStartY+i, draw.ColorBold, line)
	}

	c.writeCentered(titleStartY+len(titleArt)+1, "~ Chain same-colored rockets, then light them all at once ~")

	controlsY := titleStartY + len(titleArt) + 3
	c.writeCentered(controlsY, "Controls")
	controlLines := []string{
		"Click / drag . . . . Select",
		"SPACE / right click  Detonate",
		"ESC  . . . .  Clear selection",
		"P  . . . . . . . . . . Pause",
		"R  . . . . . . . . . Restart",
		"Q  . . . . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(controlsY+1+i, line)
	}

	scoring := fmt.Sprintf("1: %d  2: %d  3: %d  4: %d  5+: %d",
		field.Score(1), field.Score(2), field.Score(3), field.Score(4), field.Score(5))
	c.writeCentered(controlsY+len(controlLines)+2, scoring)

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		c.writeCentered(controlsY+len(controlLines)+4, ">>  Press SPACE to Start  <<")
	} else {
		c.writeCentered(controlsY+len(controlLines)+4, "                            ")
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, snapshot *server.HubSnapshot) {
	c.writeText(2, 1, fmt.Sprintf("Score: %-8d Best: %-8d", c.field.Score(), c.state.Best))

	playersText := fmt.Sprintf("Players: %-4d", snapshot.Players)
	c.writeText(termWidth-len(playersText)-1, 1, playersText)

	c.drawLeaderboard(termWidth, snapshot)

	// Selection (bottom left)
	selected := c.field.Selected()
	if color, ok := c.field.SelectionColor(); ok && len(selected) > 0 {
		text := fmt.Sprintf("Selected: %d %-5s -> +%-5d", len(selected), color, field.Score(len(selected)))
		c.writeStyled(2, termHeight, draw.Fg(color.RGB()), text)
	} else {
		c.writeText(2, termHeight, fmt.Sprintf("%-32s", "Click rockets of one color"))
	}

	if c.state.LastAward > 0 {
		c.writeText(2, 2, fmt.Sprintf("Last:  +%-8d", c.state.LastAward))
	}

	hint := "SPACE detonate  ESC clear  P pause"
	c.writeText(termWidth-len(hint)-1, termHeight, hint)
}

// drawLeaderboard lists the best scores of connected players (top right).
func (c *Client) drawLeaderboard(termWidth int, snapshot *server.HubSnapshot) {
	if len(snapshot.TopScores) == 0 {
		return
	}
	const width = 26
	col := termWidth - width - 1
	c.writeText(col, 3, fmt.Sprintf("%-*s", width, "Top scores"))
	for i, e := range snapshot.TopScores {
		line := fmt.Sprintf("%d. %-16s %6d", i+1, e.Username, e.Score)
		if e.Username == c.handle.Username {
			c.writeStyled(col, 4+i, draw.ColorBrightCyan, line)
		} else {
			c.writeText(col, 4+i, line)
		}
	}
}

// drawPausedScreen draws the pause banner.
func (c *Client) drawPausedScreen(centerY int) {
	c.writeStyled(c.canvas.TerminalWidth()/2-3, centerY-1, draw.ColorBold, "PAUSED")
	c.writeCentered(centerY+1, "Press P to resume, R to restart, Q to quit")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerY int) {
	c.writeCentered(centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	c.writeCentered(centerY+4, "Press Q to disconnect now")
}

func recordNotice(user string, score int) string {
	return fmt.Sprintf("%s set a new record: %d", user, score)
}
