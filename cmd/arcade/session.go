package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-arcade/internal/audio"
	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/games/shooter"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// setup validates global flags and configures logging and the shooter package.
func setup(_ *cobra.Command, _ []string) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("invalid --difficulty %q: use easy, normal or hard", flagDifficulty)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	if err := openLog(flagLogFile); err != nil {
		// Logging is optional; play continues without it
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}

	shooter.SetLogger(logger)
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)
	shooter.SetSavePath(flagSavePath)
	return nil
}

// openLog points the package logger at path.
func openLog(path string) error {
	if path == "" {
		return nil
	}
	path, err := expandHome(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
	}
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// session holds the collaborators shared by every game run.
type session struct {
	store      *storage.Store
	cues       core.CuePlayer
	closeAudio func()
}

// openSession opens the scores database and the speaker.
// Both are optional: failures are reported and play continues without them.
func openSession() *session {
	s := &session{cues: audio.Silent{}, closeAudio: func() {}}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
	} else {
		s.store = store
	}

	cues, closeAudio, err := audio.Open(audio.DefaultOptions(), flagMute)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	s.cues = cues
	s.closeAudio = closeAudio

	return s
}

func (s *session) Close() {
	s.closeAudio()
	if s.store != nil {
		s.store.Close()
	}
}
