package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skuledger/skuledger/internal/config"
)

const envPrefix = "SKULEDGER"

func NewRootCommand() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	root := &cobra.Command{
		Use:           "skuledger",
		Short:         "Track per-SKU inventory snapshots and their day-over-day movement",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := syncEnv(cmd.Flags()); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if err := setupLogger(cfg); err != nil {
				return err
			}
			zap.S().Named("config").Debugw("configuration", "config", cfg.DebugMap())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	registerFlags(root.PersistentFlags(), cfg)

	root.AddCommand(
		newServeCommand(cfg),
		newIngestCommand(cfg),
		newRefreshCommand(cfg),
		newMetricsCommand(cfg),
		newCleanupCommand(cfg),
		newMigrateCommand(cfg),
	)
	return root
}

func registerFlags(flags *pflag.FlagSet, cfg *config.Configuration) {
	flags.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "Server mode: dev or prod")
	flags.IntVar(&cfg.Server.HTTPPort, "http-port", cfg.Server.HTTPPort, "HTTP listen port")
	flags.BoolVar(&cfg.Server.MetricsEnabled, "metrics-enabled", cfg.Server.MetricsEnabled, "Expose prometheus metrics on /metrics")

	flags.StringVar(&cfg.Storage.Driver, "db-driver", cfg.Storage.Driver, "Database driver: duckdb or sqlite")
	flags.StringVar(&cfg.Storage.DataFolder, "data-folder", cfg.Storage.DataFolder, "Folder of the database file; empty keeps it in memory")
	flags.StringVar(&cfg.Storage.DBFile, "db-file", cfg.Storage.DBFile, "Database file name inside the data folder")
	flags.DurationVar(&cfg.Storage.OpenTimeout, "db-open-timeout", cfg.Storage.OpenTimeout, "How long to retry opening a locked database")

	flags.IntVar(&cfg.Ingest.LowStockThreshold, "low-stock-threshold", cfg.Ingest.LowStockThreshold, "Low stock bound used by daily metrics")

	flags.IntVar(&cfg.Query.DefaultPageSize, "default-page-size", cfg.Query.DefaultPageSize, "Page size when none is requested")
	flags.IntVar(&cfg.Query.MaxPageSize, "max-page-size", cfg.Query.MaxPageSize, "Largest accepted page size; 0 accepts any")
	flags.IntVar(&cfg.Query.StatsLowStockThreshold, "stats-low-stock-threshold", cfg.Query.StatsLowStockThreshold, "Low stock bound of the view stats")
	flags.IntVar(&cfg.Query.LowStockDefault, "low-stock-default", cfg.Query.LowStockDefault, "Default threshold of the low stock listing")
	flags.IntVar(&cfg.Query.SearchDefaultLimit, "search-limit", cfg.Query.SearchDefaultLimit, "Default number of search results")
	flags.IntVar(&cfg.Query.TopMoversDefaultLimit, "top-movers-limit", cfg.Query.TopMoversDefaultLimit, "Default number of top movers")

	flags.IntVar(&cfg.Jobs.MaxFinishedJobs, "max-finished-jobs", cfg.Jobs.MaxFinishedJobs, "Finished jobs kept for GET /jobs/{id}")
	flags.IntVar(&cfg.Retention.SnapshotRetentionDays, "retention-days", cfg.Retention.SnapshotRetentionDays, "Days of history kept by cleanup; 0 keeps everything")

	flags.BoolVar(&cfg.Auth.Enabled, "auth-enabled", cfg.Auth.Enabled, "Require a bearer token on mutating routes")
	flags.StringVar(&cfg.Auth.JWTSecret, "jwt-secret", cfg.Auth.JWTSecret, "HS256 secret used to verify bearer tokens")

	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or json")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
}

// syncEnv copies SKULEDGER_<FLAG_NAME> environment values into every flag
// the command line left unset.
func syncEnv(flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		if bindErr := v.BindEnv(f.Name); bindErr != nil {
			err = bindErr
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		if setErr := flags.Set(f.Name, v.GetString(f.Name)); setErr != nil {
			err = fmt.Errorf("invalid value for %s_%s: %w", envPrefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), setErr)
		}
	})
	return err
}

func setupLogger(cfg *config.Configuration) error {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if cfg.LogFormat == "json" {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = level

	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}
