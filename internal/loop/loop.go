// Package loop drives one player's game at a fixed frame rate:
// input, update, draw.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/arcade-asteroids/internal/draw"
	"github.com/tomz197/arcade-asteroids/internal/game"
	"github.com/tomz197/arcade-asteroids/internal/input"
	"github.com/tomz197/arcade-asteroids/internal/render"
	"github.com/tomz197/arcade-asteroids/internal/ui"
)

// Max render resolution in terminal cells. Larger terminals get a border.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

const (
	defaultFPS = 60
	// maxDelta caps a frame's simulated time after a stall.
	maxDelta = 0.25
)

// ErrIdle is returned by Run when the player sent no input for too long.
var ErrIdle = errors.New("session idle")

// Poller yields the input snapshot for each frame.
type Poller interface {
	Poll() input.Frame
}

// Options configures a Session.
type Options struct {
	FPS          int
	TermSizeFunc draw.TermSizeFunc // Defaults to draw.DefaultTermSizeFunc
	IdleTimeout  time.Duration     // Zero disables the idle disconnect
	Logger       *zap.Logger
	Audio        game.Audio
	Rand         *rand.Rand
}

// Session owns one game and the terminal it is drawn to.
type Session struct {
	log      *zap.Logger
	game     *game.Game
	overlay  *ui.Stack
	renderer *render.Renderer

	input       Poller
	writer      io.Writer
	canvas      *draw.Canvas
	chunkWriter *draw.ChunkWriter
	termSize    draw.TermSizeFunc

	frameTime   time.Duration
	idleTimeout time.Duration
	lastInput   time.Time
}

// NewSession builds a session reading input from in and drawing to w.
func NewSession(in Poller, w io.Writer, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	renderer := render.New(game.DefaultArea)
	overlay := ui.NewStack()
	g := game.New(game.Options{
		Logger:   log,
		Renderer: renderer,
		Audio:    opts.Audio,
		Overlay:  overlay,
		Rand:     opts.Rand,
		Area:     game.DefaultArea,
	})

	return &Session{
		log:         log,
		game:        g,
		overlay:     overlay,
		renderer:    renderer,
		input:       in,
		writer:      w,
		canvas:      draw.NewCanvas(0, 0, renderer.View()),
		chunkWriter: draw.NewChunkWriter(w, 0, 0),
		termSize:    termSize,
		frameTime:   time.Second / time.Duration(fps),
		idleTimeout: opts.IdleTimeout,
	}
}

// Game returns the session's game.
func (s *Session) Game() *game.Game { return s.game }

// Run opens the main menu and plays until the player quits, the session
// goes idle or ctx is cancelled. Cancellation is not an error.
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	s.game.RequestState(game.StateMainMenu)

	lastTime := time.Now()
	s.lastInput = lastTime

	for {
		frameStart := time.Now()
		dt := min(frameStart.Sub(lastTime).Seconds(), maxDelta)
		lastTime = frameStart

		frame := s.input.Poll()
		if frame.Held != 0 {
			s.lastInput = frameStart
		} else if s.idleTimeout > 0 && frameStart.Sub(s.lastInput) > s.idleTimeout {
			s.log.Info("session idle", zap.Duration("timeout", s.idleTimeout))
			draw.ClearScreen(s.writer)
			return ErrIdle
		}

		if err := s.game.Update(dt, frame); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		if s.game.Exited() {
			break
		}

		if err := s.updateScreen(); err != nil {
			return err
		}
		if err := s.drawFrame(frameStart); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		wait := s.frameTime - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-ctx.Done():
			draw.ClearScreen(s.writer)
			return nil
		case <-time.After(wait):
		}
	}

	draw.ClearScreen(s.writer)
	return nil
}

// updateScreen fits the canvas to the terminal, keeping the play area's aspect.
// On an actual change the terminal is cleared to drop the old border.
func (s *Session) updateScreen() error {
	termWidth, termHeight, err := s.termSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	area := s.game.Area()
	l := draw.Fit(termWidth, termHeight, area.Width()/area.Height(), MaxTermWidth, MaxTermHeight)

	if l.Width != s.canvas.TerminalWidth() || l.Height != s.canvas.TerminalHeight() ||
		l.OffsetCol != s.canvas.OffsetCol() || l.OffsetRow != s.canvas.OffsetRow() {
		s.log.Debug("terminal resized",
			zap.Int("width", termWidth), zap.Int("height", termHeight),
			zap.Int("canvas_width", l.Width), zap.Int("canvas_height", l.Height))
		s.canvas.Resize(l.Width, l.Height)
		s.canvas.SetOffset(l.OffsetCol, l.OffsetRow)
		s.chunkWriter.SetOffset(l.OffsetCol, l.OffsetRow)
	}
	return nil
}

// drawFrame writes the world, the border and the UI screens in one flush.
func (s *Session) drawFrame(now time.Time) error {
	s.chunkWriter.WriteString("\033[H\033[2J")

	s.renderer.Draw(s.canvas)
	s.canvas.Render(s.chunkWriter)
	s.canvas.RenderBorder(s.chunkWriter)

	width, height := s.canvas.TerminalWidth(), s.canvas.TerminalHeight()
	s.overlay.Draw(s.chunkWriter, s.game, width, height)
	if s.idleWarning(now) {
		s.drawIdleWarning(now, width, height)
	}

	return s.chunkWriter.Flush()
}

// idleWarning reports whether the disconnect is close enough to warn about.
func (s *Session) idleWarning(now time.Time) bool {
	if s.idleTimeout <= 0 {
		return false
	}
	return now.Sub(s.lastInput) > s.idleTimeout*3/4
}

func (s *Session) drawIdleWarning(now time.Time, width, height int) {
	left := s.idleTimeout - now.Sub(s.lastInput)
	msg := fmt.Sprintf("Inactive: disconnecting in %d seconds. Press any key.", int(left.Seconds()))
	s.chunkWriter.WriteAt(width/2-len(msg)/2, height-2, msg)
}
