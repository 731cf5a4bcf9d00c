package main

import (
	"database/sql"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/server"
	"github.com/de-tools/growth-scorecard/pkg/services/config"
	"github.com/de-tools/growth-scorecard/pkg/services/preferences"
	"github.com/de-tools/growth-scorecard/pkg/services/recommendation"
	"github.com/de-tools/growth-scorecard/pkg/services/scorecard"
	"github.com/de-tools/growth-scorecard/pkg/services/snapshot"
	"github.com/de-tools/growth-scorecard/pkg/store"
	"github.com/de-tools/growth-scorecard/pkg/store/duckdb"
	"github.com/de-tools/growth-scorecard/pkg/store/duckdb/runs"
	"github.com/de-tools/growth-scorecard/pkg/store/seed"
	"github.com/de-tools/growth-scorecard/pkg/telemetry"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the growth scorecard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML config file (SCORECARD_* environment variables override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	level, err := cfg.Log.ZerologLevel()
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	c := clock.System()
	registry, err := store.NewRegistry(c, cfg.Store.WindowDays)
	if err != nil {
		return fmt.Errorf("failed to create store registry: %w", err)
	}

	src, err := registry.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return err
	}
	defer src.Close()

	prefsRegistry, err := preferences.NewRegistry(cfg.Preferences.Path)
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}
	prefs, err := prefsRegistry.GetPreferences(ctx, cfg.Preferences.Profile)
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}

	promRegistry := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(promRegistry)

	engine := recommendation.NewEngine(cfg.Rules, cfg.Signals, c)
	service := scorecard.NewService(src, engine, c)
	board := recommendation.NewBoard(src, seed.NewShuffler(seed.NewRand(uint64(time.Now().UnixNano()))))

	if cfg.Snapshot.Enabled {
		var runLog runs.Store
		if cfg.Store.Driver == duckdb.DriverName {
			if withDB, ok := src.(interface{ DB() *sql.DB }); ok {
				if runLog, err = runs.NewStore(withDB.DB()); err != nil {
					return fmt.Errorf("failed to create snapshot run store: %w", err)
				}
			}
		}

		snapshotter := snapshot.NewSnapshotter(src, runLog, c).WithObserver(metrics)
		scheduler := snapshot.NewScheduler(snapshotter, cfg.Snapshot.Schedule)
		if err := scheduler.Start(ctx); err != nil {
			return err
		}
		defer func() { <-scheduler.Stop().Done() }()
		logger.Info().Str("schedule", cfg.Snapshot.Schedule).Msg("metric snapshots scheduled")
	}

	logger.Info().
		Str("driver", cfg.Store.Driver).
		Str("profile", cfg.Preferences.Profile).
		Int("period_days", prefs.PeriodDays).
		Msg("configuration loaded")

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Dependencies: server.Dependencies{
			Scorecard:   service,
			Store:       src,
			Board:       board,
			Preferences: prefs,
			Metrics:     metrics,
			Registry:    promRegistry,
			Clock:       c,
			Logger:      logger,
		},
	})

	return api.Start()
}
