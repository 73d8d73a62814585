package ui

import (
	"fmt"

	"github.com/tomz197/arcade-asteroids/internal/draw"
	"github.com/tomz197/arcade-asteroids/internal/game"
	"github.com/tomz197/arcade-asteroids/internal/input"
)

const (
	blinkPeriod     = 0.6 // Seconds each half of a prompt blink lasts
	gameOverLockout = 1.0 // Seconds the game over screen ignores input
)

var titleArt = []string{
	`    _   ___ _____ ___ ___  ___ ___ ___  ___  `,
	`   /_\ / __|_   _| __| _ \/ _ \_ _|   \/ __| `,
	`  / _ \\__ \ | | | _||   / (_) | || |) \__ \ `,
	` /_/ \_\___/ |_| |___|_|_\\___/___|___/|___/ `,
}

var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

var controlLines = []string{
	"W / Up  . . . . Thrust",
	"S / Down  . . . Brake ",
	"A D / < >  . .  Rotate",
	"SPACE  . . . . . Shoot",
	"ESC  . . . . . . Pause",
	"Q  . . . . . . .  Quit",
}

// mainMenu is the title screen.
type mainMenu struct {
	elapsed float64
}

func (*mainMenu) Kind() game.ScreenKind { return game.ScreenMainMenu }

func (m *mainMenu) Update(_ *game.Game, dt float64) { m.elapsed += dt }

func (*mainMenu) HandleInput(g *game.Game, frame input.Frame) {
	if frame.Pressed.Has(input.ShipFire) || frame.Pressed.Has(input.Confirm) {
		g.RequestState(game.StateGameplay)
	}
}

func (m *mainMenu) Draw(cw *draw.ChunkWriter, _ *game.Game, width, height int) {
	centerX, centerY := width/2, height/2
	y := writeArt(cw, centerX, centerY-8, titleArt)

	y += 2
	writeCentered(cw, centerX, y, "Controls")
	for i, line := range controlLines {
		writeCentered(cw, centerX, y+1+i, line)
	}

	if blinkOn(m.elapsed) {
		writeCentered(cw, centerX, y+len(controlLines)+2, ">>  Press SPACE to Start  <<")
	}
}

// hud shows score, lives and wave during play.
type hud struct{}

func (*hud) Kind() game.ScreenKind { return game.ScreenGameplay }

func (*hud) Update(*game.Game, float64) {}

func (*hud) HandleInput(g *game.Game, frame input.Frame) {
	if frame.Pressed.Has(input.Pause) {
		g.Pause()
	}
}

// Fields are padded so shrinking values overwrite their old digits.
func (*hud) Draw(cw *draw.ChunkWriter, g *game.Game, width, height int) {
	cw.WriteAt(2, 1, fmt.Sprintf("Score: %-8d", g.Score()))

	lives := fmt.Sprintf("Lives: %-3d", g.Lives())
	cw.WriteAt(width-len(lives)-1, 1, lives)

	cw.WriteAt(2, height, fmt.Sprintf("Wave: %-4d", g.Wave()))
}

// pauseMenu freezes the game until resumed.
type pauseMenu struct{}

func (*pauseMenu) Kind() game.ScreenKind { return game.ScreenPause }

func (*pauseMenu) Update(*game.Game, float64) {}

func (*pauseMenu) HandleInput(g *game.Game, frame input.Frame) {
	switch {
	case frame.Pressed.Has(input.Confirm):
		g.RequestState(game.StateMainMenu)
	case frame.Pressed.Has(input.Pause), frame.Pressed.Has(input.ShipFire):
		g.Resume()
	}
}

func (*pauseMenu) Draw(cw *draw.ChunkWriter, _ *game.Game, width, height int) {
	centerX, centerY := width/2, height/2
	writeCentered(cw, centerX, centerY-2, "P A U S E D")
	writeCentered(cw, centerX, centerY, "ESC / SPACE . . Resume")
	writeCentered(cw, centerX, centerY+1, "ENTER . . . Main menu")
}

// gameOver shows the final score after the last life is lost.
type gameOver struct {
	elapsed float64
}

func (*gameOver) Kind() game.ScreenKind { return game.ScreenGameOver }

func (s *gameOver) Update(_ *game.Game, dt float64) { s.elapsed += dt }

func (s *gameOver) HandleInput(g *game.Game, frame input.Frame) {
	// A fire key still held from play must not dismiss the screen.
	if s.elapsed < gameOverLockout {
		return
	}
	if frame.Pressed.Has(input.ShipFire) || frame.Pressed.Has(input.Confirm) {
		g.RequestState(game.StateMainMenu)
	}
}

func (s *gameOver) Draw(cw *draw.ChunkWriter, g *game.Game, width, height int) {
	centerX, centerY := width/2, height/2
	y := writeArt(cw, centerX, centerY-6, gameOverArt)

	writeCentered(cw, centerX, y+1, fmt.Sprintf("Score: %d", g.Score()))
	writeCentered(cw, centerX, y+2, fmt.Sprintf("Wave: %d", g.Wave()))

	if s.elapsed >= gameOverLockout && blinkOn(s.elapsed) {
		writeCentered(cw, centerX, y+4, ">>  Press SPACE for Main Menu  <<")
	}
}

// writeArt draws lines centered on centerX starting at row top and returns
// the row below the last line.
func writeArt(cw *draw.ChunkWriter, centerX, top int, lines []string) int {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	for i, line := range lines {
		cw.WriteAt(centerX-width/2, top+i, line)
	}
	return top + len(lines)
}

func writeCentered(cw *draw.ChunkWriter, centerX, row int, s string) {
	cw.WriteAt(centerX-len(s)/2, row, s)
}

func blinkOn(elapsed float64) bool {
	return int(elapsed/blinkPeriod)%2 == 0
}
