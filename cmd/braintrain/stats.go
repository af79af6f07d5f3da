package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-braintrain/internal/stats"
)

var flagTopN int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play history and rank",
	Long: `Display overall totals, per-category accuracy, and the best runs.

Examples:
  braintrain stats
  braintrain stats --top 20`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagTopN, "top", 10, "Number of best runs to show")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := stats.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stats database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	totals, err := store.AllTotals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving totals: %v\n", err)
		os.Exit(1)
	}

	if totals.GamesPlayed == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'braintrain play' to set the first high score!")
		return
	}

	fmt.Println("Brain Train - Statistics")
	fmt.Println()
	fmt.Printf("  Games played  %d\n", totals.GamesPlayed)
	fmt.Printf("  High score    %d\n", totals.HighScore)
	fmt.Printf("  Rank          %s\n", stats.RankFor(totals.HighScore))
	fmt.Printf("  Avg score     %.1f\n", totals.AvgScore)
	if totals.TotalChallenges > 0 {
		fmt.Printf("  Accuracy      %d%% (%d of %d)\n",
			totals.TotalCorrect*100/totals.TotalChallenges,
			totals.TotalCorrect, totals.TotalChallenges)
	}
	fmt.Println()

	catTotals, err := store.CategoryTotals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving category totals: %v\n", err)
		os.Exit(1)
	}
	if len(catTotals) > 0 {
		fmt.Println("By category:")
		for _, t := range catTotals {
			pct := 0
			if t.Attempts > 0 {
				pct = t.Correct * 100 / t.Attempts
			}
			fmt.Printf("  %-8s  %4d attempts  %3d%% correct\n", t.Category, t.Attempts, pct)
		}
		fmt.Println()
	}

	entries, err := store.TopScores(flagTopN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best runs:")
	fmt.Printf("  %-4s  %-7s  %-9s  %s\n", "Rank", "Score", "Accuracy", "Date")
	for i, e := range entries {
		acc := 0
		if e.TotalChallenges > 0 {
			acc = e.CorrectAnswers * 100 / e.TotalChallenges
		}
		fmt.Printf("  %-4d  %-7d  %7d%%  %s\n",
			i+1, e.Score, acc, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
