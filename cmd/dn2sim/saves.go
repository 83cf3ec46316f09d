package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dn2sim/internal/storage"
)

var flagDeleteSlot string

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List quick-save slots",
	Long: `Show the quick-save slots stored in the database.

Examples:
  dn2sim saves
  dn2sim saves --delete checkpoint`,
	Run: runSaves,
}

func init() {
	savesCmd.Flags().StringVar(&flagDeleteSlot, "delete", "", "Delete this slot")
}

func runSaves(_ *cobra.Command, _ []string) {
	cfg, _ := setup()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDeleteSlot != "" {
		if _, err := store.LoadSlot(flagDeleteSlot); errors.Is(err, storage.ErrSlotNotFound) {
			fmt.Fprintf(os.Stderr, "No slot named %q\n", flagDeleteSlot)
			os.Exit(1)
		}
		if err := store.DeleteSlot(flagDeleteSlot); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting slot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted slot %s\n", flagDeleteSlot)
		return
	}

	slots, err := store.ListSlots()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing slots: %v\n", err)
		os.Exit(1)
	}

	if len(slots) == 0 {
		fmt.Println("No quick-saves stored.")
		fmt.Println()
		fmt.Println("Press F5 in 'dn2sim view' or pass --save to 'dn2sim run'.")
		return
	}

	fmt.Printf("  %-16s  %-12s  %-8s  %s\n", "Slot", "Level", "Frame", "Saved")
	fmt.Printf("  %-16s  %-12s  %-8s  %s\n", "----", "-----", "-----", "-----")
	for _, s := range slots {
		fmt.Printf("  %-16s  %-12s  %-8d  %s\n", s.Slot, s.LevelID, s.Frame, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}
