package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/scores"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const defaultLogFile = "~/.snake/snake.log"

// session holds the collaborators shared by every command.
type session struct {
	env    registry.Env
	closer []func()
}

// Close releases the log file, the score store and the speaker.
func (s *session) Close() {
	for i := len(s.closer) - 1; i >= 0; i-- {
		s.closer[i]()
	}
}

// difficulties returns the names of the difficulties that keep high scores.
func (s *session) difficulties() []string {
	presets := config.SelectablePresets()
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, s.env.Config.Difficulties.For(p).Name)
	}
	return names
}

// openSession loads configuration and opens logging, storage and sound.
// Only an invalid custom config is fatal; everything else degrades.
func openSession(withSound bool) (*session, error) {
	s := &session{}

	logger, closeLog := openLogger(flagLogFile, flagLogLevel)
	s.closer = append(s.closer, closeLog)

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		s.Close()
		return nil, err
	}

	var persister scores.Persister
	store, err := storage.Open(flagScoresPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open high scores: %v\n", err)
		logger.Warn("high scores kept in memory", "path", flagScoresPath, "error", err)
	} else {
		persister = store
		s.closer = append(s.closer, func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing high score store", "error", err)
			}
		})
	}

	var player audio.Player = audio.Nop{}
	if withSound && cfg.Sound.Enabled && !flagMute {
		speaker, err := audio.NewSpeaker(cfg.Sound.Volume, logger)
		if err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			player = speaker
			s.closer = append(s.closer, speaker.Close)
		}
	}

	s.env = registry.Env{
		Config: cfg,
		Scores: scores.Open(persister, logger),
		Sound:  player,
		Clock:  core.SystemClock{},
		Logger: logger,
	}
	return s, nil
}

// openLogger writes logs to path. The terminal belongs to the game, so a log
// file that cannot be opened silences logging instead.
func openLogger(path, level string) (*log.Logger, func()) {
	nop := func() {}
	if path == "" {
		return log.New(io.Discard), nop
	}

	path, err := storage.ExpandHome(path)
	if err != nil {
		return log.New(io.Discard), nop
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), nop
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), nop
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger, func() { _ = f.Close() }
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
