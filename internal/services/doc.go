// Package services implements the business logic layer of skuledger.
//
// Services sit between the HTTP handlers / CLI and the store. Each one owns
// one step of the inventory pipeline and runs its mutations through
// store.WriteTx, so a step either fully commits or leaves nothing behind.
//
// # Service Dependency Graph
//
//	Handlers / CLI
//	    │
//	    ▼
//	JobService ──► Scheduler (single worker)
//	    │
//	    ▼
//	PipelineService
//	    ├── IngestService ───► Store (products, inventory_snapshots)
//	    ├── DeltaService ────► Store (daily_changes)
//	    ├── MetricsService ──► Store (daily_metrics)
//	    └── ViewService ─────► Store (current_inventory_view)
//
//	InventoryService ─► Store (read only)
//	AnalyticsService ─► Store (read only)
//	RetentionService ─► Store
//
// # Pipeline
//
// One export of date D goes through:
//
//	┌────────┐    ┌───────────────────┐    ┌─────────────┐    ┌──────────────┐
//	│ Ingest │───►│ Delta (D vs prev) │───►│ Metrics (D) │───►│ View refresh │
//	└────────┘    └───────────────────┘    └─────────────┘    │  (latest)    │
//	                                                          └──────────────┘
//
// prev is the greatest snapshot date before D. When a later date already
// exists, its delta and metrics are recomputed against D before the refresh.
// Each step commits on its own.
//
// # IngestService
//
// Replaces the snapshot of a date. Rows without a SKU are skipped and
// reported as ParseErrors. Quantity and cost cells are coerced:
//
//	"1,234"     → 1234      "$1,299.99" → 1299.99
//	"3.9"       → 3         "-5"        → 0
//	""  "n/a"   → 0         ""          → 0
//
// A storage fault rolls back the whole date and returns a TransactionError.
//
// # DeltaService
//
// Compares two snapshots over the union of their SKUs. A SKU missing on one
// side counts as 0 there, so a delisted SKU shows up as a drop to 0. Only
// SKUs that moved are stored. percent_change is "N/A" when the previous
// quantity is 0.
//
// # InventoryService
//
// Validated reads over the current view:
//   - GetPaginated: page/limit, search, per-column filters, sort
//   - GetPage: limit/offset ordered by SKU
//   - Search, TopMovers, LowStock, Stats, DailyStats
//
// Validation failures are ValidationErrors naming the offending field, e.g.
// "filter.foo" or "sort.column". Page rows and the total come from one read
// transaction with the same predicate.
//
// # JobService
//
// Long mutating operations (pipeline, refresh, retention) are submitted to
// the scheduler and tracked by job id:
//
//	┌─────────┐    ┌─────────┐    ┌───────────┐
//	│ pending │───►│ running │───►│ succeeded │
//	└─────────┘    └─────────┘    └───────────┘
//	                    │
//	                    ▼
//	               ┌────────┐
//	               │ failed │
//	               └────────┘
//
// Usage:
//
//	job, err := jobs.SubmitPipeline("2025-08-09", rows)
//	done, err := jobs.Wait(ctx, job.ID)
//
// # Thread Safety
//
// JobService:
//   - Job table protected by sync.RWMutex
//   - One tracking goroutine per job
//
// Other services:
//   - Stateless (only hold store reference and settings)
//   - Writes serialized by the store writer lock
package services
