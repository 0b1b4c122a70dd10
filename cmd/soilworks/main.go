package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"soilworks/internal/config"
	"soilworks/internal/logging"
	"soilworks/internal/store"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string

	// Loaded workspace configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "soilworks",
	Short: "soilworks - geotechnical analysis toolkit",
	Long: `soilworks analyzes soils for foundation design.

It classifies soils by the AASHTO and USCS systems, reduces and corrects
SPT blow counts, estimates soil parameters from empirical correlations,
and computes ultimate and allowable bearing capacities of shallow
foundations. Results can be archived to a local SQLite database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if workspace == "" {
			workspace, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve workspace: %w", err)
			}
		}

		path := configPath
		if path == "" {
			path = filepath.Join(workspace, ".soilworks", "config.yaml")
		}
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}

		return logging.Initialize(workspace, logging.Options{
			DebugMode:  cfg.Logging.DebugMode,
			Level:      cfg.Logging.Level,
			Categories: cfg.Logging.Categories,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// statusCmd shows workspace status
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show soilworks workspace status",
	RunE:  showStatus,
}

func showStatus(cmd *cobra.Command, args []string) error {
	fmt.Printf("Workspace:      %s\n", workspace)
	fmt.Printf("Config name:    %s (v%s)\n", cfg.Name, cfg.Version)
	fmt.Printf("Archive:        %s\n", storePath())
	fmt.Printf("ABC method:     %s\n", cfg.Analysis.ABCMethod)
	fmt.Printf("OPC method:     %s\n", cfg.Analysis.OPCMethod)
	fmt.Printf("Tol settlement: %.1f mm\n", cfg.Analysis.TolSettlement)
	fmt.Printf("Debug logging:  %v\n", logging.IsDebugMode())

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	classifications, err := s.ListClassifications(0)
	if err != nil {
		return err
	}
	bearings, err := s.ListBearingRuns(0)
	if err != nil {
		return err
	}
	fmt.Printf("Archived runs:  %d classifications, %d bearing\n",
		len(classifications), len(bearings))
	return nil
}

// storePath resolves the archive path relative to the workspace.
func storePath() string {
	if filepath.IsAbs(cfg.Store.Path) || cfg.Store.Path == ":memory:" {
		return cfg.Store.Path
	}
	return filepath.Join(workspace, cfg.Store.Path)
}

func openStore() (*store.Store, error) {
	return store.NewStore(storePath())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/.soilworks/config.yaml)")

	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
