package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dn2sim/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve <level>",
	Short: "Start the viewer SSH server",
	Long: `Start an SSH server that lets users connect and play a level.

Each SSH connection gets its own simulation of the level.
Scores and quick-saves go to the shared database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dn2sim/host_key

Examples:
  dn2sim serve training                         # Listen on :23234
  dn2sim serve training --ssh :2222             # Listen on port 2222
  dn2sim serve outpost --host-key ./my_host_key # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.ExactArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, args []string) {
	cfg, logger := setup()

	lvl, err := resolveLevel(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Fail before listening if the level cannot load with this config.
	if _, err := newSimulation(cfg, logger, &lvl); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level %s: %v\n", lvl.ID, err)
		os.Exit(1)
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Level:       lvl,
		Engine:      cfg,
	}, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving level %s on %s\n", lvl.ID, server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
