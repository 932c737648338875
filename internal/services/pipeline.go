package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/store"
)

// PipelineService chains the per-date steps run after every export:
// ingest, delta against the previous date, metrics and a view refresh.
type PipelineService struct {
	store   *store.Store
	ingest  *IngestService
	delta   *DeltaService
	metrics *MetricsService
	view    *ViewService
	log     *zap.SugaredLogger
}

func NewPipelineService(st *store.Store, ingest *IngestService, delta *DeltaService, metrics *MetricsService, view *ViewService) *PipelineService {
	return &PipelineService{
		store:   st,
		ingest:  ingest,
		delta:   delta,
		metrics: metrics,
		view:    view,
		log:     zap.S().Named("pipeline_service"),
	}
}

// Run ingests rows as the snapshot of date and brings every derived table up
// to date. When date lands before an existing snapshot, the following date's
// delta and metrics are recomputed against it. Each step commits on its own;
// a failing step stops the run and earlier steps stay committed.
func (s *PipelineService) Run(ctx context.Context, date string, rows []models.ExportRow) (*models.PipelineResult, error) {
	ingested, err := s.ingest.Ingest(ctx, date, rows)
	if err != nil {
		return nil, err
	}
	date = ingested.Date
	result := &models.PipelineResult{Ingest: *ingested}

	prev, err := s.store.Snapshot().PreviousDate(ctx, date)
	if err != nil {
		return result, fmt.Errorf("failed to resolve previous snapshot of %s: %w", date, err)
	}
	result.PreviousDate = prev

	if result.Delta, err = s.delta.Compute(ctx, date, prev); err != nil {
		return result, err
	}
	if result.Metrics, err = s.metrics.Compute(ctx, date); err != nil {
		return result, err
	}

	next, err := s.store.Snapshot().NextDate(ctx, date)
	if err != nil {
		return result, fmt.Errorf("failed to resolve next snapshot of %s: %w", date, err)
	}
	if next != "" {
		s.log.Infow("recomputing following date", "date", next, "previous_date", date)
		if _, err := s.delta.Compute(ctx, next, date); err != nil {
			return result, err
		}
		if _, err := s.metrics.Compute(ctx, next); err != nil {
			return result, err
		}
	}

	if result.ViewDate, result.ViewRows, err = s.view.RefreshLatest(ctx); err != nil {
		return result, err
	}

	s.log.Infow("pipeline finished", "date", date, "previous_date", prev,
		"saved", ingested.Saved, "skipped", ingested.Skipped, "view_date", result.ViewDate)
	return result, nil
}

// Backfill runs the pipeline for every export in date order and stops at the
// first failure.
func (s *PipelineService) Backfill(ctx context.Context, exports []models.DatedExport) ([]models.PipelineResult, error) {
	sorted := append([]models.DatedExport(nil), exports...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	results := make([]models.PipelineResult, 0, len(sorted))
	for _, e := range sorted {
		r, err := s.Run(ctx, e.Date, e.Rows)
		if err != nil {
			return results, fmt.Errorf("backfill stopped at %s (%s): %w", e.Date, e.Source, err)
		}
		results = append(results, *r)
	}
	return results, nil
}
