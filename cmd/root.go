package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chris-regnier/caldiary/internal/app"
	"github.com/chris-regnier/caldiary/internal/config"
	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/logger"
	"github.com/chris-regnier/caldiary/internal/storage"
	"github.com/chris-regnier/caldiary/internal/storage/kv"
	"github.com/chris-regnier/caldiary/internal/storage/markdown"
	"github.com/chris-regnier/caldiary/internal/storage/sqlite"
	"github.com/chris-regnier/caldiary/internal/ui"
)

var (
	cfgFile        string
	storageBackend string
	jsonOutput     bool
	appConfig      *config.Config
	store          storage.Store
)

var rootCmd = &cobra.Command{
	Use:   "caldiary",
	Short: "A calendar diary for the terminal",
	Long: `caldiary keeps one diary entry per day. Run it without arguments to pick a
date on the month calendar and write in a modal editor.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		if err := logger.Init(logger.ParseLevel(appConfig.Log.Level), appConfig.Log.File); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		store, err = openStore(appConfig.Storage, appConfig.DataDir)
		if err != nil {
			return err
		}
		logger.Info("storage ready", "backend", appConfig.Storage, "data_dir", appConfig.DataDir)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Close()
		if store == nil {
			return nil
		}
		return store.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return todayRun(cmd.OutOrStdout(), store, day.Today())
		}
		weekStart, err := appConfig.FirstWeekday()
		if err != nil {
			return err
		}
		return ui.RunTUI(store, ui.TUIConfig{
			MaxWidth: appConfig.MaxWidth,
			Theme:    ui.ResolveTheme(appConfig.Theme),
			Options: app.Options{
				SystemClipboard: appConfig.SystemClipboard,
				WeekStart:       weekStart,
			},
		})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (markdown|sqlite|diskv)")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// openStore opens the named storage backend rooted at dataDir.
func openStore(backend, dataDir string) (storage.Store, error) {
	switch backend {
	case "markdown":
		s, err := markdown.New(dataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing markdown storage: %w", err)
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.New(dataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing sqlite storage: %w", err)
		}
		return s, nil
	case "diskv":
		s, err := kv.New(dataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing diskv storage: %w", err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown storage backend: %s", backend)
}
