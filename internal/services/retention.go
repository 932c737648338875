package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/store"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

type RetentionService struct {
	store *store.Store
	days  int
	now   func() time.Time
	log   *zap.SugaredLogger
}

func NewRetentionService(st *store.Store, days int) *RetentionService {
	return &RetentionService{
		store: st,
		days:  days,
		now:   time.Now,
		log:   zap.S().Named("retention_service"),
	}
}

// WithClock replaces the clock used to derive the cutoff date.
func (s *RetentionService) WithClock(now func() time.Time) *RetentionService {
	s.now = now
	return s
}

// Prune removes snapshots, change records and metrics dated before the given
// date in its own transaction.
func (s *RetentionService) Prune(ctx context.Context, before string) (*models.RetentionResult, error) {
	before, err := models.ParseDate("before", before)
	if err != nil {
		return nil, err
	}

	var result *models.RetentionResult
	err = s.store.WriteTx(ctx, func(ctx context.Context, tx *store.Tx) error {
		r, err := tx.Retention().Prune(ctx, before)
		result = r
		return err
	})
	if err != nil {
		return nil, srvErrors.NewTransactionError("retention "+before, 0, 0, err)
	}

	s.log.Infow("history pruned", "before", before, "snapshots", result.SnapshotsDeleted,
		"changes", result.ChangesDeleted, "metrics", result.MetricsDeleted)
	return result, nil
}

// PruneExpired prunes everything older than the configured number of days.
// A non-positive day count keeps the full history.
func (s *RetentionService) PruneExpired(ctx context.Context) (*models.RetentionResult, error) {
	if s.days <= 0 {
		s.log.Debugw("retention disabled")
		return &models.RetentionResult{}, nil
	}
	cutoff := s.now().AddDate(0, 0, -s.days).Format(models.DateLayout)
	return s.Prune(ctx, cutoff)
}
