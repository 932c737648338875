// Package store implements the data access layer for skuledger.
//
// Storage is an embedded SQL database: DuckDB by default, SQLite (modernc) as an
// alternative driver. Every table is created by the local migrations in
// internal/store/migrations/sql/.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                    Store (facade, writer lock)                  │
//	├─────────────────────────────────────────────────────────────────┤
//	│  ProductStore   SnapshotStore  │  ChangeStore     MetricsStore  │
//	│       ▼              ▼         │       ▼              ▼         │
//	│   products   inventory_snapshots│ daily_changes  daily_metrics  │
//	├────────────────────────────────┴────────────────────────────────┤
//	│          ViewStore                 AnalyticsStore               │
//	│              ▼                           ▼                      │
//	│    current_inventory_view          daily_changes (ranges)       │
//	├─────────────────────────────────────────────────────────────────┤
//	│  RetentionStore ──► snapshots, changes, metrics older than N    │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Tables
//
//	┌────────────────────────┬───────────────────────────────────────────┐
//	│  Table                 │  Purpose                                  │
//	├────────────────────────┼───────────────────────────────────────────┤
//	│  products              │  SKU master (title, upc, categories)      │
//	│  inventory_snapshots   │  Quantity and cost per (date, sku)        │
//	│  daily_changes         │  Day-over-day movement per (date, sku)    │
//	│  current_inventory_view│  One row per SKU as of one snapshot date  │
//	│  daily_metrics         │  Summary statistics per date              │
//	│  schema_migrations     │  Migration version tracking               │
//	└────────────────────────┴───────────────────────────────────────────┘
//
// Dates are stored as YYYY-MM-DD strings so both drivers compare them the
// same way.
//
// # Transactions
//
//	NewStore(db)
//	    └── sub-stores bound to the *sql.DB through a QueryInterceptor
//
//	Store.WriteTx(ctx, fn)
//	    ├── takes the writer lock (one mutating operation at a time)
//	    ├── BEGIN
//	    ├── fn(ctx, tx)   tx.Snapshot(), tx.Change(), ... bound to the *sql.Tx
//	    └── COMMIT, or ROLLBACK on error or panic
//
//	Store.ReadTx(ctx, fn)
//	    └── same without the lock; reads inside fn see one consistent snapshot
//
// Sub-stores reached through the Store itself (s.View(), s.Metrics(), ...)
// run each statement on its own.
//
// # ViewStore
//
// Rebuild deletes the view and re-inserts it from the snapshot of one date,
// joined with products and that date's change records. Missing products give
// empty attributes, missing changes give 0/0/"N/A". Callers run it inside
// WriteTx so the two statements commit together.
//
// List uses the functional options pattern. Each ListOption modifies the
// squirrel.SelectBuilder:
//
//	rows, err := tx.View().List(ctx,
//	    store.WithFilters(store.ViewFilter{Column: models.ViewColumnQuantity, Type: models.FilterTypeGreaterThan, Number: 100}),
//	    store.WithSearch("bolt"),
//	    store.WithSort(models.ViewColumnEstimatedCost, true),
//	    store.WithLimit(50),
//	    store.WithOffset(100),
//	)
//	total, err := tx.View().Count(ctx, filterOpts...)
//
// Filtering Options:
//
//   - WithFilters(filters ...ViewFilter)
//     contains: LOWER(col) LIKE %value% (wildcards in value are escaped)
//     equals: col = value, numeric or text by column kind
//     greaterThan / lessThan: col > value / col < value
//
//   - WithSearch(term string)
//     case-insensitive substring on sku, title or upc
//
//   - ByMovement()
//     absolute_change > 0
//
//   - ByLowStock(threshold int)
//     0 < quantity <= threshold
//
// Sorting Options:
//
//   - WithSort(column, desc) appends sku ASC as tie-breaker
//   - WithDefaultSort() sorts by sku ascending
//
// Count must only be given filtering options.
//
// Column names never come from the caller: every filter and sort goes through
// the closed models.ViewColumn set.
//
// # QueryInterceptor
//
// All database operations go through a QueryInterceptor. It logs each
// statement at debug level under the "sql" logger and records its duration in
// the skuledger_store_query_duration_seconds histogram.
//
// # Design Patterns
//
// Replace-by-date:
//   - Re-ingesting a date deletes its snapshot rows first
//   - Delta recomputation deletes the date's change records first
//   - Metrics use UPSERT: INSERT ... ON CONFLICT (date) DO UPDATE
//
// Functional Options:
//   - ViewStore and ChangeStore take ListOption functions
//   - Options can be combined for complex queries
package store
