package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dn2sim/internal/config"
	"github.com/vovakirdan/dn2sim/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the embedded sample levels and, with --levels-dir, the level files found there.`,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	all, err := levels.Builtin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading embedded levels: %v\n", err)
		os.Exit(1)
	}
	if flagLevelsDir != "" {
		dir, err := config.ExpandHome(flagLevelsDir)
		if err == nil {
			var extra []levels.Level
			extra, err = levels.NewLoader(dir).LoadAll()
			all = append(all, extra...)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flagLevelsDir, err)
			os.Exit(1)
		}
	}

	if len(all) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range all {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-9s  %-6s  %s\n", maxIDLen, "ID", "Size", "Actors", "Name")
	fmt.Printf("  %-*s  %-9s  %-6s  %s\n", maxIDLen, "--", "----", "------", "----")
	for _, l := range all {
		fmt.Printf("  %-*s  %-9s  %-6d  %s\n", maxIDLen, l.ID,
			fmt.Sprintf("%dx%d", l.Width, l.Height), len(l.Actors), l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'dn2sim view <id>' to play a level.")
}
