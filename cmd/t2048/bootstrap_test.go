package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func testCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	flagFPS, flagDBPath, flagConfig, flagLogLevel, flagProfile = 0, "", "", "", ""

	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "")
	cmd.Flags().StringVar(&flagDBPath, "db", "", "")
	cmd.Flags().StringVar(&flagConfig, "config", "", "")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "")
	cmd.Flags().StringVar(&flagProfile, "profile", "", "")
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestLoadConfigFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	if err := os.WriteFile(path, []byte("runtime:\n  tick_rate: 30\nstorage:\n  profile: file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		fps     int
		profile string
		db      string
	}{
		{"file only", []string{"--config", path}, 30, "file", "~/.t2048/t2048.db"},
		{"flags win", []string{"--config", path, "--fps", "50", "--profile", "guest", "--db", "x.db"}, 50, "guest", "x.db"},
		{"empty profile ignored", []string{"--config", path, "--profile", ""}, 30, "file", "~/.t2048/t2048.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadConfig(testCommand(t, tt.args...))
			if cfg.Runtime.TickRate != tt.fps {
				t.Errorf("tick rate = %d, want %d", cfg.Runtime.TickRate, tt.fps)
			}
			if cfg.Storage.Profile != tt.profile {
				t.Errorf("profile = %q, want %q", cfg.Storage.Profile, tt.profile)
			}
			if cfg.Storage.DBPath != tt.db {
				t.Errorf("db = %q, want %q", cfg.Storage.DBPath, tt.db)
			}
		})
	}
}

func TestLoadConfigBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  win_rank: 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfig(testCommand(t, "--config", path))
	if cfg.Rules.WinRank != 11 {
		t.Errorf("win rank = %d, want the default 11", cfg.Rules.WinRank)
	}
}

func TestPort(t *testing.T) {
	tests := []struct{ addr, want string }{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"localhost", "localhost"},
	}
	for _, tt := range tests {
		if got := port(tt.addr); got != tt.want {
			t.Errorf("port(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
