package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagResetHistory bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved game",
	Long: `Delete the saved game of a profile so the next start begins fresh.
Finished games are kept unless --history is given.

Examples:
  t2048 reset
  t2048 reset --history
  t2048 reset --profile guest`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetHistory, "history", false, "Also delete the finished games")
}

func runReset(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	profile := cfg.Storage.Profile

	store := mustOpenStore(cfg)
	defer store.Close()

	if err := store.DeleteSave(profile); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error deleting save: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted the saved game of %q\n", profile)

	if flagResetHistory {
		if err := store.ClearHistory(profile); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted the game history of %q\n", profile)
	}
}
