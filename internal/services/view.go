package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/store"
	"github.com/skuledger/skuledger/internal/telemetry"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

type ViewService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewViewService(st *store.Store) *ViewService {
	return &ViewService{store: st, log: zap.S().Named("view_service")}
}

// Refresh rebuilds the current view as of asOfDate. The delete and the insert
// commit together, so readers see either the old view or the new one. A date
// without a snapshot leaves the view untouched.
func (s *ViewService) Refresh(ctx context.Context, asOfDate string) (int, error) {
	asOfDate, err := models.ParseDate("date", asOfDate)
	if err != nil {
		return 0, err
	}
	defer telemetry.Timer("refresh")()

	var rows int64
	err = s.store.WriteTx(ctx, func(ctx context.Context, tx *store.Tx) error {
		count, err := tx.Snapshot().CountByDate(ctx, asOfDate)
		if err != nil {
			return err
		}
		if count == 0 {
			return srvErrors.NewSnapshotNotFoundError(asOfDate)
		}
		rows, err = tx.View().Rebuild(ctx, asOfDate)
		return err
	})
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			return 0, err
		}
		return 0, srvErrors.NewTransactionError("refresh "+asOfDate, 0, 0, err)
	}

	telemetry.SetViewRows(int(rows))
	s.log.Infow("view refreshed", "as_of", asOfDate, "rows", rows)
	return int(rows), nil
}

// RefreshLatest rebuilds the view as of the most recent snapshot date and
// returns that date. With no snapshot at all it does nothing and returns "".
func (s *ViewService) RefreshLatest(ctx context.Context) (string, int, error) {
	latest, err := s.store.Snapshot().LatestDate(ctx)
	if err != nil {
		return "", 0, err
	}
	if latest == "" {
		s.log.Infow("no snapshot ingested yet, view left empty")
		return "", 0, nil
	}
	rows, err := s.Refresh(ctx, latest)
	return latest, rows, err
}
