package services

import (
	"context"

	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/store"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

const defaultPeriodMovers = 20

type AnalyticsService struct {
	store *store.Store
}

func NewAnalyticsService(st *store.Store) *AnalyticsService {
	return &AnalyticsService{store: st}
}

// Period aggregates the change records dated within [from, to]: per-day
// trends, the SKUs with the most total movement and a per-category breakdown.
func (s *AnalyticsService) Period(ctx context.Context, from, to string, topMovers int) (*models.Analytics, error) {
	from, to, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}
	if topMovers == 0 {
		topMovers = defaultPeriodMovers
	}
	if topMovers < 0 {
		return nil, srvErrors.NewValidationError("limit", "must not be negative")
	}

	result := &models.Analytics{From: from, To: to}
	err = s.store.ReadTx(ctx, func(ctx context.Context, tx *store.Tx) error {
		var err error
		if result.DailyTrends, err = tx.Analytics().DailyTrends(ctx, from, to); err != nil {
			return err
		}
		if result.TopMovers, err = tx.Analytics().TopMovers(ctx, from, to, uint64(topMovers)); err != nil {
			return err
		}
		result.CategoryBreakdown, err = tx.Analytics().CategoryBreakdown(ctx, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
