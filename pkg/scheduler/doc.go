// Package scheduler is a small FIFO worker pool that hands back futures.
//
// skuledger uses it to move long mutating jobs (export pipelines, view
// refreshes, retention prunes) off the request path. The job service builds it
// with a single worker, so jobs never overlap and run in the order they were
// submitted.
//
// # Layout
//
//	AddWork(name, fn)
//	       │
//	       ▼
//	┌──────────────┐   run() loop   ┌───────────────────────────┐
//	│  work chan   │ ─────────────► │ workQueue  [r1] [r2] ...  │
//	└──────────────┘                └─────────────┬─────────────┘
//	                                              │ dispatch()
//	                                              ▼
//	                                ┌───────────────────────────┐
//	                                │ idle workers [w1] ... [wN]│
//	                                └─────────────┬─────────────┘
//	                                              │ go worker.Work(r)
//	                                              ▼
//	                                fn(ctx) ──► Result{Data, Err} ──► future.C()
//
// A finished worker signals on the done channel; the loop puts a fresh worker
// back in the idle queue and dispatches whatever is waiting.
//
// # Futures
//
// AddWork never blocks on the work itself. The returned Future carries a
// one-slot result channel:
//
//	f := sched.AddWork("pipeline 2025-08-09", func(ctx context.Context) (any, error) {
//	    return pipeline.Run(ctx, date, rows)
//	})
//	res, err := f.Wait(ctx) // err is ctx.Err() when the caller gives up
//	if err == nil && res.Err != nil {
//	    // the work failed
//	}
//
// Stop cancels the context handed to the work function. Work that already
// opened a store transaction is not interrupted by it; the transaction still
// commits or rolls back as a whole.
//
// # Failure handling
//
//   - a panic inside fn is recovered and delivered as Result.Err
//   - AddWork after Close answers immediately with context.Canceled
//   - Close cancels every work context, waits for in-flight work and is idempotent
//
// Every start, finish and failure is logged under the "scheduler" logger with
// the work name and its duration. Pending reports accepted work that has not
// finished yet.
package scheduler
