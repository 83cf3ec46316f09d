// dn2sim runs the deterministic DN2 actor simulation headless or in a terminal viewer.
//
// Usage:
//
//	dn2sim levels              - List available levels
//	dn2sim run <level>         - Simulate a level headless and print a summary
//	dn2sim view <level>        - Watch and play a level in the terminal
//	dn2sim serve <level>       - Serve the viewer over SSH
//	dn2sim saves               - List stored quick-save slots
//	dn2sim scores [level]      - Show recorded run scores
//
// Global flags:
//
//	--config <path>       - Engine config YAML (default: search ~/.dn2sim/configs, ./configs)
//	--difficulty <name>   - easy, medium or hard
//	--db <path>           - Database path (default from config: ~/.dn2sim/dn2sim.db)
//	--log-level <level>   - debug, info, warn or error
//	--levels-dir <path>   - Extra directory searched for level files
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dn2sim/internal/config"
	"github.com/vovakirdan/dn2sim/internal/levels"
	"github.com/vovakirdan/dn2sim/internal/sim"
	"github.com/vovakirdan/dn2sim/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogLevel   string
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dn2sim",
	Short: "dn2sim - deterministic DN2 actor simulation",
	Long: `dn2sim loads DN2 levels into a deterministic simulation context and
steps it frame by frame, either headless or in a terminal viewer.

Available commands:
  levels   - Show all available levels
  run      - Simulate a level headless
  view     - Play a level in the terminal
  serve    - Start SSH server for remote viewing
  saves    - List quick-save slots
  scores   - View recorded scores

Examples:
  dn2sim levels
  dn2sim run training --frames 600 --save demo
  dn2sim view outpost --difficulty hard
  dn2sim serve training --ssh :2222
  dn2sim scores training`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to saves and scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Extra directory with level files")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadEngineConfig loads the config file and applies the global flag overrides.
func loadEngineConfig() (config.EngineConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		if err := config.ApplyDifficultyPreset(&cfg, flagDifficulty); err != nil {
			return cfg, err
		}
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the process logger at the configured level.
func newLogger(cfg config.EngineConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dn2sim",
	})
	if lvl, err := log.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openStore opens the database, or returns nil with a warning so the
// simulation still runs without persistence.
func openStore(cfg config.EngineConfig, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open database", "path", cfg.Storage.DBPath, "err", err)
		return nil
	}
	return store
}

// resolveLevel finds a level by ID or path in the embedded set and --levels-dir.
func resolveLevel(ref string) (levels.Level, error) {
	dir, err := config.ExpandHome(flagLevelsDir)
	if err != nil {
		return levels.Level{}, err
	}
	return levels.Resolve(ref, dir)
}

// newSimulation creates a context sized from the config and loads lvl.
func newSimulation(cfg config.EngineConfig, logger *log.Logger, lvl *levels.Level) (*sim.Context, error) {
	ctx, err := sim.New(
		sim.WithLogger(logger),
		sim.WithArena(cfg.Memory.ArenaBytes, cfg.Memory.MaxChunks),
		sim.WithDifficulty(cfg.Simulation.Difficulty.Level()),
	)
	if err != nil {
		return nil, err
	}
	if err := ctx.LoadLevel(lvl); err != nil {
		return nil, err
	}
	return ctx, nil
}

// setup is the common prologue of every command.
func setup() (config.EngineConfig, *log.Logger) {
	cfg, err := loadEngineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, newLogger(cfg)
}
