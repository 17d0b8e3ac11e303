package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/younwookim/cyberguard/internal/infrastructure/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished runs",
	Long: `Display the top scores of finished runs, best first.
Ties are broken by the faster time.

Examples:
  cyberguard scores
  cyberguard scores --limit 3
  cyberguard scores --clear`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("failed to open scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return fmt.Errorf("failed to clear scores: %w", err)
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return fmt.Errorf("failed to retrieve scores: %w", err)
	}

	fmt.Fprintln(out, "High Scores - CyberGuard")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Finish the last level to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %-6s  %-8s  %s\n", "Rank", "Player", "Score", "Level", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %-6s  %-8s  %s\n", "----", "------", "-----", "-----", "----", "----")

	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-16s  %-8d  %-6d  %-8s  %s\n",
			i+1, e.Player, e.Score, e.Level, e.Elapsed.Round(time.Second), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}
