// t2048 is the 2048 sliding-tile game for the terminal.
//
// Usage:
//
//	t2048                    - Play (same as "t2048 play")
//	t2048 play               - Play, resuming the saved game
//	t2048 serve              - Start SSH server for remote play
//	t2048 scores             - Show finished games and the best score
//	t2048 reset              - Delete the saved game
//	t2048 version            - Print the version
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default from config: 60)
//	--seed <value>      - Set RNG seed for reproducible tile spawns
//	--db <path>         - Set database path (default: ~/.t2048/t2048.db)
//	--config <path>     - Use a custom YAML config
//	--log-level <lvl>   - debug, info, warn or error
//	--profile <name>    - Save profile (default: local)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagProfile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 puzzle for the terminal. Slide the board with the
arrow keys; equal tiles merge. Reach the 2048 tile to win, then keep going.

The game is saved after every move and resumed on the next start.

Available commands:
  play     - Play (default)
  serve    - Start SSH server for remote play
  scores   - View finished games
  reset    - Delete the saved game

Examples:
  t2048
  t2048 --seed 42
  t2048 serve --ssh :2222
  t2048 scores --limit 20`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the save database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Save profile name")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
