package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/app"
	"github.com/infectieradar-dashboard/internal/config"
	"github.com/infectieradar-dashboard/internal/pkg/logger"
)

// rootFlags - общие флаги всех подкоманд
type rootFlags struct {
	dataDir     string
	symptomWeek string
	verbose     bool
	timeout     time.Duration
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the Infectieradar dashboard to static files",
		Long: `Build dashboard pages without running the HTTP server.

Configuration is read the same way as the server (.env and environment);
--data-dir and --symptom-week override DATA_DIR and SYMPTOM_WEEK.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Data directory (default: DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&flags.symptomWeek, "symptom-week", "", "Only chart symptom rows of this week (default: SYMPTOM_WEEK)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable logging")
	rootCmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 2*time.Minute, "Operation timeout")

	rootCmd.AddCommand(newPagesCmd(flags))
	rootCmd.AddCommand(newFigureCmd(flags))

	return rootCmd
}

// openDashboard loads configuration and wires the use case for one command run.
func openDashboard(ctx context.Context, flags *rootFlags) (*app.Dashboard, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if flags.dataDir != "" {
		cfg.Data.Dir = flags.dataDir
	}

	log := zap.NewNop()
	if flags.verbose {
		if log, err = logger.New(cfg.Log.Level); err != nil {
			return nil, nil, fmt.Errorf("init logger: %w", err)
		}
	}

	// Статическая сборка всегда читает исходные данные, кеш не нужен
	dashboard, err := app.NewDashboard(ctx, cfg, app.Options{
		DisableCache: true,
		SymptomWeek:  flags.symptomWeek,
	}, log)
	if err != nil {
		return nil, nil, err
	}
	return dashboard, log, nil
}
