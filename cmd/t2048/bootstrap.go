package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// loadConfig loads the config and applies the global flags the user set.
// A broken config file is reported and replaced by the defaults.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}

	flags := cmd.Flags()
	if flags.Changed("fps") && flagFPS > 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("profile") && flagProfile != "" {
		cfg.Storage.Profile = flagProfile
	}
	return cfg
}

// fileLogger returns a logger writing to the configured log file and a
// func closing it. The terminal belongs to the game, so nothing is logged to it.
func fileLogger(cfg config.Config) (*log.Logger, func()) {
	if cfg.Log.File == "" {
		return logging.Discard(), func() {}
	}
	f, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging disabled)\n", err)
		return logging.Discard(), func() {}
	}
	return logging.New(f, cfg.Log.Level, "t2048"), func() { f.Close() }
}

// openStore opens the save database. The game still runs without it,
// it just forgets everything on exit.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open save database: %v\n", err)
		logger.Warn("storage unavailable", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// mustOpenStore opens the save database or exits.
func mustOpenStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	return store
}
