package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dn2sim/internal/sim"
	"github.com/vovakirdan/dn2sim/internal/storage"
)

var (
	flagFrames   int
	flagScript   string
	flagSaveSlot string
	flagLoadSlot string
	flagNoScore  bool
)

var runCmd = &cobra.Command{
	Use:   "run <level>",
	Short: "Simulate a level headless",
	Long: `Load a level and advance it a fixed number of frames without a viewer,
then print a summary: frames, score, live actors, RNG cursor, and the
snapshot hash. Two runs with the same level, difficulty, and script always
print the same hash.

Input script (--script) is a looping list of steps, each an action set with
an optional repeat count:
  right*20,right+jump*3,fire,none*10
Actions: none, left, right, up, down, jump, fire.

Examples:
  dn2sim run training --frames 600
  dn2sim run training --frames 300 --script "right*40,jump,fire*5"
  dn2sim run outpost --frames 900 --save checkpoint
  dn2sim run outpost --frames 100 --load checkpoint`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagFrames, "frames", 300, "Number of frames to simulate")
	runCmd.Flags().StringVar(&flagScript, "script", "", "Looping input script")
	runCmd.Flags().StringVar(&flagSaveSlot, "save", "", "Store the final state in this quick-save slot")
	runCmd.Flags().StringVar(&flagLoadSlot, "load", "", "Resume from this quick-save slot")
	runCmd.Flags().BoolVar(&flagNoScore, "no-score", false, "Do not record the run score")
}

func runRun(_ *cobra.Command, args []string) {
	cfg, logger := setup()

	script, err := parseScript(flagScript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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

	var store *storage.Store
	if flagSaveSlot != "" || flagLoadSlot != "" || !flagNoScore {
		store = openStore(cfg, logger)
	}
	if store != nil {
		defer store.Close()
	}

	if flagLoadSlot != "" {
		if err := restoreSlot(ctx, store, flagLoadSlot); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("resumed", "slot", flagLoadSlot, "frame", ctx.FrameNumber())
	}

	start := ctx.FrameNumber()
	var runErr error
	for i := 0; i < flagFrames; i++ {
		if _, runErr = ctx.UpdateFrame(script.At(i)); runErr != nil {
			break
		}
		if ctx.Player().Exited() {
			logger.Info("level exited", "frame", ctx.FrameNumber())
			break
		}
	}

	printSummary(ctx, ctx.FrameNumber()-start)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Simulation stopped: %v\n", runErr)
		os.Exit(1)
	}

	if store == nil {
		return
	}
	if flagSaveSlot != "" {
		snap := ctx.Snapshot()
		blob, err := sim.EncodeSnapshot(snap)
		if err == nil {
			err = store.SaveSlot(flagSaveSlot, snap.LevelID, snap.Frame, blob)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving slot %s: %v\n", flagSaveSlot, err)
			os.Exit(1)
		}
		fmt.Printf("Saved slot:   %s (%d bytes)\n", flagSaveSlot, len(blob))
	}
	if !flagNoScore && ctx.Player().Score > 0 {
		runID, err := store.SaveScore(ctx.LevelID(), ctx.Player().Score, ctx.FrameNumber())
		if err != nil {
			logger.Warn("score not saved", "err", err)
			return
		}
		fmt.Printf("Run ID:       %s\n", runID)
	}
}

func restoreSlot(ctx *sim.Context, store *storage.Store, slot string) error {
	if store == nil {
		return errors.New("no database to load from")
	}
	entry, err := store.LoadSlot(slot)
	if err != nil {
		return err
	}
	if entry.LevelID != ctx.LevelID() {
		return fmt.Errorf("slot %s holds level %s, not %s", slot, entry.LevelID, ctx.LevelID())
	}
	snap, err := sim.DecodeSnapshot(entry.Blob)
	if err != nil {
		return fmt.Errorf("slot %s: %w", slot, err)
	}
	return ctx.Restore(snap)
}

func printSummary(ctx *sim.Context, frames uint64) {
	p := ctx.Player()
	a := ctx.Arena()
	fmt.Printf("Level:        %s\n", ctx.LevelID())
	fmt.Printf("Frames run:   %d (now at %d)\n", frames, ctx.FrameNumber())
	fmt.Printf("Player:       %s at (%d,%d), health %d\n", p.State, p.X, p.Y, p.Health)
	fmt.Printf("Score:        %d\n", p.Score)
	fmt.Printf("Actors alive: %d of %d slots\n", ctx.AliveCount(), ctx.ActorCount())
	fmt.Printf("RNG index:    %d\n", ctx.RNG().Index)
	fmt.Printf("Arena:        %d/%d bytes, %d/%d chunks\n", a.Used(), a.Capacity(), a.ChunkCount(), a.MaxChunks())
	fmt.Printf("Hash:         %016x\n", ctx.Hash())
}
