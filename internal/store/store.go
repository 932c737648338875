package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/skuledger/skuledger/internal/telemetry"
)

// Repositories groups the sub-stores bound to one Querier.
type Repositories struct {
	product   *ProductStore
	snapshot  *SnapshotStore
	change    *ChangeStore
	view      *ViewStore
	metrics   *MetricsStore
	analytics *AnalyticsStore
	retention *RetentionStore
}

func newRepositories(q Querier) Repositories {
	qi := NewQueryInterceptor(q)
	return Repositories{
		product:   NewProductStore(qi),
		snapshot:  NewSnapshotStore(qi),
		change:    NewChangeStore(qi),
		view:      NewViewStore(qi),
		metrics:   NewMetricsStore(qi),
		analytics: NewAnalyticsStore(qi),
		retention: NewRetentionStore(qi),
	}
}

func (r Repositories) Product() *ProductStore {
	return r.product
}

func (r Repositories) Snapshot() *SnapshotStore {
	return r.snapshot
}

func (r Repositories) Change() *ChangeStore {
	return r.change
}

func (r Repositories) View() *ViewStore {
	return r.view
}

func (r Repositories) Metrics() *MetricsStore {
	return r.metrics
}

func (r Repositories) Analytics() *AnalyticsStore {
	return r.analytics
}

func (r Repositories) Retention() *RetentionStore {
	return r.retention
}

// Tx exposes the sub-stores bound to one open transaction.
type Tx struct {
	Repositories
}

// Store provides access to all storage repositories. Sub-stores reached
// directly from Store run each statement on its own; use ReadTx or WriteTx
// to group statements.
type Store struct {
	Repositories
	db     *sql.DB
	writer sync.Mutex
	log    *zap.SugaredLogger
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		Repositories: newRepositories(db),
		db:           db,
		log:          zap.S().Named("store"),
	}
}

// WriteTx runs fn inside one transaction while holding the writer lock.
// Mutating operations never interleave; fn's work is committed as a whole or
// rolled back as a whole.
func (s *Store) WriteTx(ctx context.Context, fn func(ctx context.Context, tx *Tx) error) error {
	s.writer.Lock()
	defer s.writer.Unlock()
	return s.runTx(ctx, "write", fn)
}

// ReadTx runs fn inside one transaction so every statement observes the same
// snapshot. Readers do not take the writer lock.
func (s *Store) ReadTx(ctx context.Context, fn func(ctx context.Context, tx *Tx) error) error {
	return s.runTx(ctx, "read", fn)
}

func (s *Store) runTx(ctx context.Context, kind string, fn func(ctx context.Context, tx *Tx) error) (err error) {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin %s transaction: %w", kind, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			telemetry.CountTransaction(kind, fmt.Errorf("panic: %v", p))
			panic(p)
		}
		telemetry.CountTransaction(kind, err)
	}()

	if err = fn(ctx, &Tx{Repositories: newRepositories(sqlTx)}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			s.log.Errorw("rollback failed", "kind", kind, "error", rbErr)
		}
		return err
	}

	if err = sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s transaction: %w", kind, err)
	}
	return nil
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}
