// Package config defines the runtime configuration of skuledger.
//
// Values come from three places, later ones winning: the `default` struct tags
// (applied by creasty/defaults through NewConfigurationWithOptionsAndDefaults),
// environment variables prefixed with SKULEDGER_ (a .env file is loaded
// first), and command line flags.
//
// # Configuration Structure
//
//	Configuration
//	├── Server     - HTTP listener and /metrics exposition
//	├── Storage    - embedded database driver and location
//	├── Ingest     - thresholds used while aggregating snapshots
//	├── Query      - paging limits and read defaults
//	├── Jobs       - background job workers
//	├── Retention  - history kept by the cleanup job
//	├── Auth       - bearer token check on mutating routes
//	├── LogFormat  - console | json
//	└── LogLevel   - zap level name
//
// # Storage
//
//	┌─────────────┬────────────────────┬──────────────────────────────────────┐
//	│ Field       │ Default            │ Description                          │
//	├─────────────┼────────────────────┼──────────────────────────────────────┤
//	│ Driver      │ "duckdb"           │ duckdb or sqlite                     │
//	│ DataFolder  │ ""                 │ empty keeps the database in memory   │
//	│ DBFile      │ "skuledger.duckdb" │ file name inside DataFolder          │
//	│ OpenTimeout │ 30s                │ retry window for a locked file       │
//	└─────────────┴────────────────────┴──────────────────────────────────────┘
//
// # Query
//
//	┌────────────────────────┬─────────┬──────────────────────────────────────┐
//	│ Field                  │ Default │ Description                          │
//	├────────────────────────┼─────────┼──────────────────────────────────────┤
//	│ DefaultPageSize        │ 100     │ limit when the caller sends none     │
//	│ MaxPageSize            │ 0       │ larger limits are rejected; 0 = none │
//	│ StatsLowStockThreshold │ 20      │ low stock bound of view stats        │
//	│ LowStockDefault        │ 10      │ threshold of /inventory/low-stock    │
//	│ SearchDefaultLimit     │ 10      │ rows returned by search              │
//	│ TopMoversDefaultLimit  │ 10      │ rows returned by top movers          │
//	└────────────────────────┴─────────┴──────────────────────────────────────┘
//
// Ingest.LowStockThreshold (default 5) is the bound stored in daily metrics;
// it is independent from the query-side thresholds above.
//
// # Code Generation
//
// zz_generated.configuration.go is produced by optgen and provides
// New<T>WithOptions, New<T>WithOptionsAndDefaults, With<Field> options and
// DebugMap for every struct listed in the go:generate line. Auth.JWTSecret is
// tagged `debugmap:"hidden"` and never appears in DebugMap output:
//
//	zap.S().Infow("configuration", "config", cfg.DebugMap())
package config
