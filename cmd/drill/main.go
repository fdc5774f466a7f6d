package main

import (
	"fmt"
	"os"

	"officerdrill/cmd/drill/app"
	"officerdrill/cmd/drill/ui"
	"officerdrill/internal/config"
	"officerdrill/internal/exercise"
	"officerdrill/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	configPath  string
	catalogPath string
	darkMode    bool
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "drill",
	Short: "Fire Officer Role Exercise",
	Long: `drill is a terminal card-sorting exercise for company officers.

Sort six scenario cards into the three officer responsibilities, two cards
per responsibility, then check your answers.

Run without arguments to start the interactive exercise.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExercise()
	},
}

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the drill version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "drill %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Config file path")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Exercise catalog YAML (default: built-in)")
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "Force the dark theme")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug logs to the configured log file")

	catalogCmd.Flags().BoolVar(&showAnswers, "answers", false, "Include the correct responsibility and feedback for each card")
	catalogCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print raw markdown instead of rendering it")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if catalogPath != "" {
		cfg.Exercise.CatalogPath = catalogPath
	}
	if darkMode {
		cfg.UI.DarkMode = true
	}
	if verbose {
		cfg.Logging.DebugMode = true
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadCatalog returns the configured catalog or the built-in one.
func loadCatalog(cfg *config.Config) (*exercise.Catalog, error) {
	if cfg.Exercise.CatalogPath == "" {
		return exercise.DefaultCatalog()
	}
	return exercise.LoadCatalog(cfg.Exercise.CatalogPath)
}

func themeFor(cfg *config.Config) ui.Theme {
	if cfg.UI.DarkMode {
		return ui.DarkTheme()
	}
	return ui.DetectTheme()
}

// runExercise launches the interactive exercise.
func runExercise() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Close()
	log := logging.Get(logging.CategoryBoot)

	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Error("catalog load failed", zap.Error(err))
		return err
	}
	log.Info("catalog loaded",
		zap.String("title", cat.Title),
		zap.String("path", cfg.Exercise.CatalogPath))

	model, err := app.New(cat, app.Options{
		Theme:          themeFor(cfg),
		TrayCapacity:   cfg.UI.TrayCapacity,
		ResetDuration:  cfg.GetResetDuration(),
		ResultDuration: cfg.GetResultDuration(),
		ShowHelp:       cfg.UI.ShowHelp,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("exercise: %w", err)
	}

	if m, ok := final.(app.Model); ok {
		ctrl := m.Controller()
		placed := len(ctrl.Placements())
		log.Info("session ended",
			zap.String("session", ctrl.SessionID()),
			zap.Int("placed", placed),
			zap.Bool("checked", ctrl.Checked()))
		fmt.Println(sessionSummary(ctrl))
	}
	return nil
}

// sessionSummary is printed after the screen closes.
func sessionSummary(ctrl *exercise.Controller) string {
	total := ctrl.Catalog().TotalCards()
	if ctrl.Checked() {
		return fmt.Sprintf("Score: %s", ctrl.Score())
	}
	return fmt.Sprintf("%d of %d cards placed; answers not checked.", len(ctrl.Placements()), total)
}
