package loop

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tomz197/spaceshoot/internal/draw"
	"github.com/tomz197/spaceshoot/internal/loop/config"
)

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	// On screen or inactivity transitions, do a full terminal clear so UI
	// elements from the previous screen don't persist.
	st := s.state
	if st.Screen != st.prevScreen || st.isInactive != st.wasInactive {
		s.chunkWriter.Clear()
		s.canvas.ForceRedraw()
		st.prevScreen = st.Screen
		st.wasInactive = st.isInactive
	}

	s.canvas.Clear()
	if st.Screen != ScreenTitle {
		s.drawWorld()
	}
	s.canvas.Render(s.chunkWriter)
	s.canvas.RenderBorder(s.chunkWriter)
	s.drawUI()

	return s.chunkWriter.Flush()
}

// drawUI draws the overlay for the current screen.
func (s *Session) drawUI() {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if s.state.Screen == ScreenShutdown {
		s.drawShutdownScreen(centerX, centerY)
		return
	}
	if s.state.isInactive {
		s.drawInactivityScreen(centerX, centerY)
		return
	}

	switch s.state.Screen {
	case ScreenTitle:
		s.drawStartScreen(centerX, centerY)
	case ScreenPlaying:
		s.drawPlayingHUD(termWidth, termHeight)
	case ScreenPaused:
		s.drawPlayingHUD(termWidth, termHeight)
		s.drawPausedScreen(centerX, centerY)
	case ScreenOver:
		s.drawOverScreen(centerX, centerY)
	}
}

// text writes str at the 1-based canvas position and marks the cells so the
// canvas repaints them once the text is gone.
func (s *Session) text(col, row int, str string) {
	if row < 1 || row > s.canvas.TerminalHeight() {
		return
	}
	s.chunkWriter.Text(col, row, str)
	s.canvas.MarkTextDirty(col, row, utf8.RuneCountInString(str))
}

func (s *Session) colorText(col, row int, style, str string) {
	if row < 1 || row > s.canvas.TerminalHeight() {
		return
	}
	s.chunkWriter.StyledText(col, row, style, str)
	s.canvas.MarkTextDirty(col, row, utf8.RuneCountInString(str))
}

func (s *Session) rgbText(col, row int, c draw.RGB, str string) {
	if row < 1 || row > s.canvas.TerminalHeight() {
		return
	}
	s.chunkWriter.ColorText(col, row, c, str)
	s.canvas.MarkTextDirty(col, row, utf8.RuneCountInString(str))
}

func (s *Session) centered(centerX, row int, str string) {
	s.text(centerX-utf8.RuneCountInString(str)/2, row, str)
}

func blinkOn() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

var titleArt = []string{
	` ___ ___  _   ___ ___   ___ _  _  ___   ___  _____ `,
	`/ __| _ \/_\ / __| __| / __| || |/ _ \ / _ \|_   _|`,
	`\__ \  _/ _ \ (__| _|  \__ \ __ | (_) | (_) | | |  `,
	`|___/_|/_/ \_\___|___| |___/_||_|\___/ \___/  |_|  `,
}

// drawStartScreen draws the title screen.
func (s *Session) drawStartScreen(centerX, centerY int) {
	titleStartY := centerY - 8
	titleWidth := len(titleArt[0])
	for i, line := range titleArt {
		s.colorText(centerX-titleWidth/2, titleStartY+i, draw.ColorBrightCyan, line)
	}

	subtitle := "~ Survive the swarm ~"
	if s.username != "" {
		subtitle = fmt.Sprintf("~ Survive the swarm, %s ~", s.username)
	}
	s.centered(centerX, titleStartY+len(titleArt)+1, subtitle)

	controlsY := titleStartY + len(titleArt) + 3
	s.centered(centerX, controlsY, "Controls")
	controlLines := []string{
		"W A S D  . . . . . .  Move",
		"Arrows / I J K L  . .  Aim",
		"SPACE  . . . . . . .  Fire",
		"P  . . . . . . . . . Pause",
		"Q  . . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		s.centered(centerX, controlsY+1+i, line)
	}

	if blinkOn() {
		s.centered(centerX, controlsY+len(controlLines)+2, ">>  Press SPACE to Start  <<")
	}
	if s.state.best > 0 {
		s.centered(centerX, controlsY+len(controlLines)+4, fmt.Sprintf("Best: %d", s.state.best))
	}
}

// drawPlayingHUD draws the in-game HUD. Fields are fixed width so shrinking
// values leave no residue.
func (s *Session) drawPlayingHUD(termWidth, termHeight int) {
	prog := s.world.Progress()
	p := s.world.Player()

	s.text(2, 1, fmt.Sprintf("Score: %-8d Level: %-4d", prog.Score, prog.Level))

	timeText := fmt.Sprintf("%02d:%02d", prog.ElapsedSeconds/60, prog.ElapsedSeconds%60)
	s.text(termWidth/2-len(timeText)/2, 1, timeText)

	hp := healthBar(p.HP, p.MaxHP, 20)
	hpText := fmt.Sprintf("HP %3d ", p.HP)
	s.text(termWidth-len(hpText)-utf8.RuneCountInString(hp)-1, 1, hpText)
	s.rgbText(termWidth-utf8.RuneCountInString(hp)-1, 1, healthColor(p.HP, p.MaxHP), hp)

	kills := fmt.Sprintf("Next level: %d/%-6d", prog.KillsInLevel, prog.KillsNeeded)
	s.text(2, termHeight, kills)

	swarm := fmt.Sprintf("Swarm: %-4d", len(s.world.Enemies()))
	s.text(termWidth-len(swarm)-1, termHeight, swarm)
}

// healthColor fades the bar from the player's colour to the hit colour as
// health drops.
func healthColor(hp, maxHP int) draw.RGB {
	if maxHP <= 0 {
		return colorHit
	}
	return colorHit.Mix(colorPlayer, float64(hp)/float64(maxHP))
}

// healthBar renders a fixed-width bar.
func healthBar(hp, maxHP, width int) string {
	if maxHP <= 0 {
		return strings.Repeat("░", width)
	}
	filled := (hp*width + maxHP - 1) / maxHP
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// drawPausedScreen draws the pause notice over the frozen run.
func (s *Session) drawPausedScreen(centerX, centerY int) {
	s.colorText(centerX-3, centerY-1, draw.ColorBold, "PAUSED")
	s.centered(centerX, centerY+1, "Press P to resume")
}

var overArt = []string{
	`  ___   _   __  __ ___    _____   _____ ___  `,
	` / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	`| (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	` \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

// drawOverScreen draws the game over screen.
func (s *Session) drawOverScreen(centerX, centerY int) {
	titleStartY := centerY - 6
	for i, line := range overArt {
		s.colorText(centerX-len(overArt[0])/2, titleStartY+i, draw.ColorRed, line)
	}

	prog := s.world.Progress()
	row := titleStartY + len(overArt) + 1
	s.centered(centerX, row, fmt.Sprintf("Score: %d", prog.Score))
	s.centered(centerX, row+1, fmt.Sprintf("Level: %d", prog.Level))
	s.centered(centerX, row+2, fmt.Sprintf("Survived: %02d:%02d", prog.ElapsedSeconds/60, prog.ElapsedSeconds%60))
	s.centered(centerX, row+3, fmt.Sprintf("Best: %d", s.state.best))

	if blinkOn() {
		s.centered(centerX, row+5, ">>  Press ENTER to Restart  <<")
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (s *Session) drawInactivityScreen(centerX, centerY int) {
	s.centered(centerX, centerY-2, "INACTIVITY WARNING")
	left := int(config.InactivityDisconnectUser - s.now().Sub(s.state.lastInput).Seconds())
	s.centered(centerX, centerY, fmt.Sprintf("You will be disconnected in %d seconds.", max(left, 0)))
	s.centered(centerX, centerY+2, "Press any key to continue")
}

// drawShutdownScreen draws the host shutdown notification screen.
func (s *Session) drawShutdownScreen(centerX, centerY int) {
	s.centered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	s.centered(centerX, centerY-1, "The server is restarting for maintenance.")
	s.centered(centerX, centerY, "Please reconnect in a moment.")
	remaining := int(s.state.shutdownTimer) + 1
	s.centered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	s.centered(centerX, centerY+4, "Press Q to disconnect now")
}
