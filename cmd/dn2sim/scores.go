package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dn2sim/internal/levels"
	"github.com/vovakirdan/dn2sim/internal/platform/tui"
	"github.com/vovakirdan/dn2sim/internal/storage"
)

var (
	flagScoreLimit int
	flagPlain      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show recorded scores",
	Long: `Display the best recorded runs, for one level or across all levels.

On a terminal the scoreboard opens interactively; use --plain or pipe the
output to get a text listing.

Examples:
  dn2sim scores
  dn2sim scores training
  dn2sim scores --plain --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of scores to show in text mode")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the scoreboard")
}

func runScores(_ *cobra.Command, args []string) {
	cfg, _ := setup()

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && levelID == "" && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, levelTabs(), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store, levelID)
}

func levelTabs() []tui.LevelTab {
	all, err := levels.Builtin()
	if err != nil {
		return nil
	}
	tabs := make([]tui.LevelTab, len(all))
	for i, l := range all {
		tabs[i] = tui.LevelTab{ID: l.ID, Name: l.Name}
	}
	return tabs
}

func printScores(store *storage.Store, levelID string) {
	scores, err := store.TopScores(levelID, flagScoreLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	title := "all levels"
	if levelID != "" {
		title = levelID
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %-8s  %s\n", "Rank", "Level", "Score", "Frames", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %-8s  %s\n", "----", "-----", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %-10d  %-8d  %s\n", i+1, e.LevelID, e.Score, e.Frames, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if levelID != "" {
		if best, err := store.HighScore(levelID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", best)
		}
	}
}
