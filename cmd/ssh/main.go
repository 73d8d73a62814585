package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/arcade-asteroids/internal/audio"
	"github.com/tomz197/arcade-asteroids/internal/config"
	"github.com/tomz197/arcade-asteroids/internal/draw"
	"github.com/tomz197/arcade-asteroids/internal/game"
	"github.com/tomz197/arcade-asteroids/internal/input"
	applog "github.com/tomz197/arcade-asteroids/internal/logging"
	"github.com/tomz197/arcade-asteroids/internal/loop"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOrDefault(config.GetEnv(config.EnvConfigPath, ""))
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if len(cfg.Logging.Output) == 0 {
		cfg.Logging.Output = []string{"stderr"}
	}

	log, err := applog.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	workingDir, err := os.Getwd()
	if err != nil {
		log.Warn("failed to get working directory", zap.Error(err))
	}
	log.Info("ssh config",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.String("host_key_path", cfg.Server.HostKeyPath),
		zap.String("working_dir", workingDir))

	g := &gameHandler{log: log, cfg: cfg}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
		wish.WithMiddleware(
			g.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// TCP_NODELAY for game input latency
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.Server.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.Server.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g.ctx = ctx

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info("starting ssh server", zap.String("addr", s.Addr))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return eg.Wait()
}

// gameHandler runs an independent game for every SSH session.
type gameHandler struct {
	log *zap.Logger
	cfg *config.Config
	ctx context.Context
}

func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		log := h.log.With(zap.String("session", uuid.NewString()), zap.String("user", sess.User()))
		log.Info("new game session",
			zap.String("terminal", pty.Term),
			zap.Int("width", pty.Window.Width),
			zap.Int("height", pty.Window.Height))

		size := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				size.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(h.ctx)
		defer cancel()
		go func() {
			select {
			case <-sess.Context().Done():
				cancel()
			case <-ctx.Done():
			}
		}()

		session := loop.NewSession(input.StartStream(bufio.NewReader(sess)), sess, loop.Options{
			FPS:          h.cfg.Game.FPS,
			TermSizeFunc: size.getSize,
			IdleTimeout:  h.cfg.Server.IdleTimeout,
			Logger:       log,
			Audio:        audio.NewBell(sess),
			Rand:         game.NewRand(h.cfg.Game.Seed),
		})
		switch err := session.Run(ctx); {
		case errors.Is(err, loop.ErrIdle):
			fmt.Fprintln(sess, "Disconnected after inactivity.")
		case err != nil:
			log.Error("game error", zap.Error(err))
		}

		log.Info("session ended",
			zap.Int("score", session.Game().Score()),
			zap.Int("wave", session.Game().Wave()))
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
