package store

import (
	"context"

	"github.com/skuledger/skuledger/internal/models"
)

// RetentionStore removes history older than a cutoff date.
type RetentionStore struct {
	db QueryInterceptor
}

func NewRetentionStore(db QueryInterceptor) *RetentionStore {
	return &RetentionStore{db: db}
}

// Prune deletes snapshots, change records and metrics dated before cutoff.
// The current view is left untouched.
func (s *RetentionStore) Prune(ctx context.Context, cutoff string) (*models.RetentionResult, error) {
	result := &models.RetentionResult{Cutoff: cutoff}

	steps := []struct {
		query string
		count *int64
	}{
		{queryPruneSnapshots, &result.SnapshotsDeleted},
		{queryPruneChanges, &result.ChangesDeleted},
		{queryPruneMetrics, &result.MetricsDeleted},
	}

	for _, step := range steps {
		res, err := s.db.ExecContext(ctx, step.query, cutoff)
		if err != nil {
			return nil, err
		}
		if *step.count, err = res.RowsAffected(); err != nil {
			return nil, err
		}
	}
	return result, nil
}
