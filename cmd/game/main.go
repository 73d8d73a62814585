package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tomz197/arcade-asteroids/internal/audio"
	"github.com/tomz197/arcade-asteroids/internal/config"
	"github.com/tomz197/arcade-asteroids/internal/game"
	"github.com/tomz197/arcade-asteroids/internal/input"
	"github.com/tomz197/arcade-asteroids/internal/logging"
	"github.com/tomz197/arcade-asteroids/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOrDefault(config.GetEnv(config.EnvConfigPath, ""))
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var sound game.Audio = audio.Nop{}
	if cfg.Game.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Warn("sound disabled", zap.Error(err))
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	session := loop.NewSession(input.StartStream(bufio.NewReader(os.Stdin)), os.Stdout, loop.Options{
		FPS:    cfg.Game.FPS,
		Logger: log,
		Audio:  sound,
		Rand:   game.NewRand(cfg.Game.Seed),
	})
	if err := session.Run(ctx); err != nil && !errors.Is(err, loop.ErrIdle) {
		return err
	}
	log.Info("game ended", zap.Int("score", session.Game().Score()), zap.Int("wave", session.Game().Wave()))
	return nil
}
