package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/store"
	"github.com/skuledger/skuledger/internal/telemetry"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

type MetricsService struct {
	store             *store.Store
	lowStockThreshold int
	log               *zap.SugaredLogger
}

func NewMetricsService(st *store.Store, lowStockThreshold int) *MetricsService {
	return &MetricsService{
		store:             st,
		lowStockThreshold: lowStockThreshold,
		log:               zap.S().Named("metrics_service"),
	}
}

// Compute aggregates the snapshot and change records of date and stores the
// result, overwriting any earlier computation for that date.
func (s *MetricsService) Compute(ctx context.Context, date string) (*models.DailyMetrics, error) {
	date, err := models.ParseDate("date", date)
	if err != nil {
		return nil, err
	}
	defer telemetry.Timer("metrics")()

	var m *models.DailyMetrics
	err = s.store.WriteTx(ctx, func(ctx context.Context, tx *store.Tx) error {
		agg, err := tx.Metrics().Aggregate(ctx, date, s.lowStockThreshold)
		if err != nil {
			return err
		}
		if err := tx.Metrics().Upsert(ctx, *agg); err != nil {
			return err
		}
		m, err = tx.Metrics().Get(ctx, date)
		return err
	})
	if err != nil {
		return nil, srvErrors.NewTransactionError("metrics "+date, 0, 0, err)
	}

	s.log.Infow("daily metrics computed", "date", date, "products", m.TotalProducts,
		"increases", m.Increases, "decreases", m.Decreases, "low_stock", m.LowStock)
	return m, nil
}

func (s *MetricsService) Get(ctx context.Context, date string) (*models.DailyMetrics, error) {
	date, err := models.ParseDate("date", date)
	if err != nil {
		return nil, err
	}
	return s.store.Metrics().Get(ctx, date)
}

// List returns stored metrics within [from, to]. Either bound may be empty.
func (s *MetricsService) List(ctx context.Context, from, to string) ([]models.DailyMetrics, error) {
	var err error
	if from != "" {
		if from, err = models.ParseDate("from", from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if to, err = models.ParseDate("to", to); err != nil {
			return nil, err
		}
	}
	if from != "" && to != "" && from > to {
		return nil, srvErrors.NewValidationErrorf("from", "%s is after %s", from, to)
	}
	return s.store.Metrics().List(ctx, from, to)
}
