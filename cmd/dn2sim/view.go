package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dn2sim/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <level>",
	Short: "Play a level in the terminal",
	Long: `Open a level in the terminal viewer. Each tick advances the simulation
by one frame at the configured tick rate.

Controls:
  Arrows/WASD - Move, look up, crouch
  Space/Z     - Jump
  X           - Fire
  P/Esc       - Pause
  F5          - Quick-save
  F9          - Quick-load
  Q/Ctrl+C    - Quit

Examples:
  dn2sim view training
  dn2sim view outpost --difficulty easy
  dn2sim view ./my-level.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func runView(_ *cobra.Command, args []string) {
	cfg, logger := setup()

	lvl, err := resolveLevel(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'dn2sim levels' to see available levels.")
		os.Exit(1)
	}

	ctx, err := newSimulation(cfg, logger, &lvl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level %s: %v\n", lvl.ID, err)
		os.Exit(1)
	}

	rt := cfg.Runtime()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store := openStore(cfg, logger)

	runErr := tui.Run(ctx, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", runErr)
		os.Exit(1)
	}
}
