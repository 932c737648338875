package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skuledger/skuledger/internal/config"
	"github.com/skuledger/skuledger/internal/services"
	"github.com/skuledger/skuledger/internal/store"
	"github.com/skuledger/skuledger/internal/store/migrations"
)

// app holds the store and the services shared by every command.
type app struct {
	db    *sql.DB
	store *store.Store

	ingest    *services.IngestService
	delta     *services.DeltaService
	metrics   *services.MetricsService
	view      *services.ViewService
	pipeline  *services.PipelineService
	inventory *services.InventoryService
	analytics *services.AnalyticsService
	retention *services.RetentionService
}

func newApp(ctx context.Context, cfg *config.Configuration) (*app, error) {
	db, err := store.NewDBWithDriver(ctx, cfg.Storage.Driver, cfg.Storage.DatabasePath(), cfg.Storage.OpenTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	st := store.NewStore(db)
	a := &app{
		db:        db,
		store:     st,
		ingest:    services.NewIngestService(st),
		delta:     services.NewDeltaService(st),
		metrics:   services.NewMetricsService(st, cfg.Ingest.LowStockThreshold),
		view:      services.NewViewService(st),
		inventory: services.NewInventoryService(st, cfg.Query),
		analytics: services.NewAnalyticsService(st),
		retention: services.NewRetentionService(st, cfg.Retention.SnapshotRetentionDays),
	}
	a.pipeline = services.NewPipelineService(st, a.ingest, a.delta, a.metrics, a.view)
	return a, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
