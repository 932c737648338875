// Package handlers implements the HTTP API of skuledger.
//
// Handlers parse and validate request parameters, call the services layer and
// convert the results into the api/v1 wire types. They hold no state of their
// own.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │  v1.ServerInterfaceWrapper binds
//	                              ▼  query and path parameters
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request body decoding (JSON rows, multipart export files)    │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  Inventory │ Metrics │ Delta │ Analytics │ Jobs                 │
//	└─────────────────────────────────────────────────────────────────┘
//
// The Handler satisfies v1.ServerInterface and is mounted with:
//
//	v1.RegisterHandlers(router, handlers.New(inventory, metrics, delta, analytics, jobs))
//
// # API Endpoints
//
// Inventory (inventory.go), reads over the current view:
//
//	┌────────┬─────────────────────────┬───────────────────────────────────────┐
//	│ Method │ Endpoint                │ Description                           │
//	├────────┼─────────────────────────┼───────────────────────────────────────┤
//	│ GET    │ /inventory/paginated    │ Filtered, sorted, paginated rows      │
//	│ GET    │ /inventory/current      │ Plain limit/offset page               │
//	│ GET    │ /inventory/search       │ SKU prefix or title substring         │
//	│ GET    │ /inventory/top-movers   │ Largest absolute changes              │
//	│ GET    │ /inventory/low-stock    │ Rows at or under a threshold          │
//	│ GET    │ /inventory/stats        │ Totals over the view                  │
//	└────────┴─────────────────────────┴───────────────────────────────────────┘
//
// Metrics and changes (metrics.go):
//
//	┌────────┬─────────────────────────┬───────────────────────────────────────┐
//	│ GET    │ /metrics/daily          │ Metrics rows, optional from/to        │
//	│ GET    │ /metrics/daily/{date}   │ Metrics of one date                   │
//	│ GET    │ /changes                │ Change records between from and to    │
//	│ GET    │ /changes/daily/{date}   │ Change records of one date            │
//	│ GET    │ /analytics              │ Trends, top movers, categories        │
//	└────────┴─────────────────────────┴───────────────────────────────────────┘
//
// Jobs (jobs.go), every mutation runs on the job scheduler and answers
// 202 Accepted with {"jobId": "..."}:
//
//	┌────────┬─────────────────────────┬───────────────────────────────────────┐
//	│ POST   │ /snapshots/{date}       │ Ingest an export, then deltas,        │
//	│        │                         │ metrics and a view refresh            │
//	│ POST   │ /inventory/refresh-view │ Rebuild the view ({"date"} optional)  │
//	│ POST   │ /retention              │ Prune data past the retention window  │
//	│ GET    │ /jobs/{id}              │ Job state and result                  │
//	└────────┴─────────────────────────┴───────────────────────────────────────┘
//
// # Paginated inventory
//
// GET /inventory/paginated takes page, limit, search, sort and filter. sort is
// either JSON ({"column":"quantity","direction":"desc"}) or the short form
// "quantity:desc". filter is a JSON object keyed by column:
//
//	/inventory/paginated?page=2&limit=50&filter={"quantity":{"type":"greaterThan","value":"100"}}
//
// Response:
//
//	{
//	    "data": [ { "sku": "ABC-1", "quantity": 120, ... } ],
//	    "total": 321,
//	    "page": 2,
//	    "limit": 50,
//	    "totalPages": 7
//	}
//
// # Snapshot upload
//
// POST /snapshots/{date} accepts either a multipart form with a "file" field
// (csv or xlsx, chosen by extension) or a JSON body:
//
//	{ "rows": [ { "sku": "ABC-1", "title": "Bolt", "quantity": "1,200", "estimatedCost": "$2.50" } ] }
//
// # Error Handling
//
// Every error is answered as:
//
//	{ "error": "error message" }
//
//	┌─────────────────────────────┬────────┬──────────────────────────────────┐
//	│ Error Type                  │ Status │ When                             │
//	├─────────────────────────────┼────────┼──────────────────────────────────┤
//	│ ValidationError             │ 400    │ Bad date, filter, sort, limit    │
//	│ Parameter binding error     │ 400    │ Non-numeric page, missing "to"   │
//	│ ResourceNotFoundError       │ 404    │ Unknown date or job              │
//	│ Anything else               │ 500    │ Storage faults                   │
//	└─────────────────────────────┴────────┴──────────────────────────────────┘
//
// # Model Conversion
//
// Conversions live in api/v1/extension.go:
//
//   - v1.NewPaginatedInventory(*models.PaginatedResult) → v1.PaginatedInventory
//   - v1.NewDailyMetricsFromModel(models.DailyMetrics) → v1.DailyMetrics
//   - v1.NewChangeList([]models.ChangeRecord) → v1.ChangeList
//   - v1.NewJobFromModel(models.Job) → v1.Job
//   - v1.GetPaginatedInventoryParams.ToQuery() → models.InventoryQuery
package handlers
