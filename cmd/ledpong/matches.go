package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ledpong/internal/platform/tui"
	"github.com/vovakirdan/ledpong/internal/storage"
)

var (
	flagMatchesLimit int
	flagMatchesID    string
	flagMatchesTUI   bool
	flagMatchesClear bool
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Show recorded match history",
	Long: `Display recent matches, win counts and totals.

Examples:
  ledpong matches
  ledpong matches --limit 50 --tui
  ledpong matches --id 6f1c...`,
	Run: runMatches,
}

func init() {
	matchesCmd.Flags().IntVar(&flagMatchesLimit, "limit", 10, "Number of recent matches to show")
	matchesCmd.Flags().StringVar(&flagMatchesID, "id", "", "Show a single match by ID")
	matchesCmd.Flags().BoolVar(&flagMatchesTUI, "tui", false, "Browse history in an interactive table")
	matchesCmd.Flags().BoolVar(&flagMatchesClear, "clear", false, "Delete all recorded matches")
}

func runMatches(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening match database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	switch {
	case flagMatchesClear:
		if err := store.ClearMatches(ctx); err != nil {
			exitf("%v", err)
		}
		fmt.Println("Match history cleared.")
		return
	case flagMatchesID != "":
		showMatch(ctx, store, flagMatchesID)
		return
	}

	data, err := tui.LoadHistory(ctx, store, flagMatchesLimit)
	if err != nil {
		exitf("%v", err)
	}

	if flagMatchesTUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(data, width, height); err != nil {
			exitf("%v", err)
		}
		return
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(data.Matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ledpong play' or 'ledpong sim' to record one!")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-5s  %-6s  %s\n", "Date", "Winner", "Score", "Ticks", "ID")
	fmt.Printf("  %-16s  %-6s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "--")
	for _, m := range data.Matches {
		fmt.Printf("  %-16s  %-6s  %-5s  %-6d  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.Winner.String(),
			fmt.Sprintf("%d-%d", m.Score1, m.Score2),
			m.Ticks,
			m.MatchID)
	}

	fmt.Println()
	fmt.Printf("Wins: P1 %d, P2 %d\n", data.Wins[0], data.Wins[1])
	fmt.Printf("Goals: %d  Blocks: %d  Wall bounces: %d  Avg ticks: %.1f\n",
		data.Stats.Goals, data.Stats.Blocks, data.Stats.WallBounces, data.Stats.AvgTicks)
}

func showMatch(ctx context.Context, store *storage.Store, id string) {
	m, err := store.MatchByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		exitf("no match with ID %s", id)
	}
	if err != nil {
		exitf("%v", err)
	}

	fmt.Printf("Match %s\n", m.MatchID)
	fmt.Printf("  Played:       %s\n", m.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Winner:       %s\n", m.Winner)
	fmt.Printf("  Score:        %d-%d\n", m.Score1, m.Score2)
	fmt.Printf("  Ticks:        %d\n", m.Ticks)
	fmt.Printf("  Duration:     %s\n", m.Duration)
	fmt.Printf("  Goals:        %d\n", m.Goals)
	fmt.Printf("  Blocks:       %d\n", m.Blocks)
	fmt.Printf("  Wall bounces: %d\n", m.WallBounces)
}
