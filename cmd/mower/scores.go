package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rbrander/lawn-mower/internal/platform/tui"
	"github.com/rbrander/lawn-mower/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the fastest recorded lawns",
	Long: `Display the fastest finished runs from the run log.

Examples:
  mower scores --db ~/.lawn-mower/runs.db
  mower scores --db ./runs.db --limit 25
  mower scores --db ./runs.db --interactive
  mower scores --db ./runs.db --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("no run log: pass --db <path>")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run log cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println("Fastest Lawns")
	best, err := store.BestRun()
	if err != nil {
		return fmt.Errorf("retrieving best run: %w", err)
	}
	if best != nil {
		fmt.Printf("Record: %.1fs on a %dx%d lawn\n", best.Duration().Seconds(), best.Width, best.Height)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No lawns mowed yet.")
		fmt.Println()
		fmt.Println("Play 'mower play --db <path>' to record the first run!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "Rank", "Time", "Money", "Lawn", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "----", "----", "-----", "----", "------", "----")

	for i, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4d  %-8s  %-6s  %-6s  %-12s  %s\n", i+1, row[1], row[2], row[3], row[4], runs[i].CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %.1fs  Average: %.1fs\n", stats.Runs, float64(stats.FastestMs)/1000, stats.AverageMs/1000)
	}
	return nil
}
