package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/audio"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start playing. The last game is resumed if one was saved.

Controls:
  Arrows/WASD/HJKL  - Slide the tiles
  Enter/Space       - Select
  Esc/B             - Back to menu (saves)
  R                 - New game
  Tab               - Scores
  ?                 - Help
  Q/Ctrl+C          - Quit (saves)

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --profile guest
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	logger, closeLog := fileLogger(cfg)
	defer closeLog()

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var player audio.Player = audio.Nop{}
	if cfg.Audio.Enabled {
		player = audio.NewBell(os.Stderr, cfg.Audio.MinIntervalFrames, logger)
	}

	opts := session.Options{
		Rules:  cfg.GameRules(),
		Timing: cfg.Timing(),
		Seed:   seed,
		Player: player,
		Logger: logger,
	}

	profile := cfg.Storage.Profile
	var history tui.HistorySource
	if store := openStore(cfg, logger); store != nil {
		defer store.Close()
		p := store.Profile(profile)
		opts.Persister = p
		opts.Recorder = p
		history = store
	}

	sess := session.New(opts)
	sess.Start()
	logger.Info("game started", "profile", profile, "seed", seed, "resumed", sess.Resumed())

	err := tui.Run(tui.Options{
		Session: sess,
		History: history,
		Profile: profile,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Runtime.TickRate,
		},
		FadeFrames: cfg.Animation.FadeFrames,
		Logger:     logger,
	})
	if err != nil {
		sess.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
