package store

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/skuledger/skuledger/internal/telemetry"
)

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// QueryInterceptor logs and times every statement before handing it to the
// underlying Querier.
type QueryInterceptor struct {
	q   Querier
	log *zap.SugaredLogger
}

func NewQueryInterceptor(q Querier) QueryInterceptor {
	return QueryInterceptor{q: q, log: zap.S().Named("sql")}
}

func (qi QueryInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := qi.q.ExecContext(ctx, query, args...)
	qi.trace("exec", query, args, start, err)
	return res, err
}

func (qi QueryInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := qi.q.QueryContext(ctx, query, args...)
	qi.trace("query", query, args, start, err)
	return rows, err
}

func (qi QueryInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := qi.q.QueryRowContext(ctx, query, args...)
	qi.trace("query_row", query, args, start, row.Err())
	return row
}

func (qi QueryInterceptor) trace(op, query string, args []any, start time.Time, err error) {
	elapsed := time.Since(start)
	telemetry.ObserveQuery(op, elapsed)
	if err != nil {
		qi.log.Debugw(op, "query", query, "args", args, "duration", elapsed, "error", err)
		return
	}
	qi.log.Debugw(op, "query", query, "args", args, "duration", elapsed)
}
