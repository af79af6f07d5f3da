package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all challenge types",
	Long:  `Shows every registered challenge, grouped by category.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	if challenge.Default.Len() == 0 {
		fmt.Println("No challenges registered.")
		return
	}

	fmt.Println("Available challenges:")
	fmt.Println()

	for _, cat := range challenge.Categories() {
		records := challenge.Default.ByCategory(cat)
		if len(records) == 0 {
			continue
		}

		fmt.Printf("%s:\n", cat)
		for _, r := range records {
			window := fmt.Sprintf("level %d+", r.Meta.MinDifficulty)
			if r.Meta.MaxDifficulty > 0 {
				window = fmt.Sprintf("level %d-%d", r.Meta.MinDifficulty, r.Meta.MaxDifficulty)
			}
			fmt.Printf("  %-16s  %-10s  %4.0fs  %s\n",
				r.ID, window, r.Meta.BaseTime.Seconds(), r.Meta.Description)
		}
		fmt.Println()
	}

	fmt.Println("Run 'braintrain play' to start a training run.")
}
