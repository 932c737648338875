package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/store"
	"github.com/skuledger/skuledger/internal/telemetry"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

type DeltaService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewDeltaService(st *store.Store) *DeltaService {
	return &DeltaService{store: st, log: zap.S().Named("delta_service")}
}

// Compute derives the change records of date against previousDate and
// replaces the stored records of date with them, in one transaction. An empty
// previousDate means there is nothing to compare against: the call is logged
// and returns an empty result.
func (s *DeltaService) Compute(ctx context.Context, date, previousDate string) (*models.DeltaResult, error) {
	date, err := models.ParseDate("date", date)
	if err != nil {
		return nil, err
	}
	if previousDate == "" {
		s.log.Infow("no previous snapshot, skipping delta", "date", date)
		return &models.DeltaResult{Date: date, Changes: []models.ChangeRecord{}}, nil
	}
	previousDate, err = models.ParseDate("previousDate", previousDate)
	if err != nil {
		return nil, err
	}
	if previousDate >= date {
		return nil, srvErrors.NewValidationErrorf("previousDate", "%s is not before %s", previousDate, date)
	}
	defer telemetry.Timer("delta")()

	var changes []models.ChangeRecord
	err = s.store.WriteTx(ctx, func(ctx context.Context, tx *store.Tx) error {
		today, err := tx.Snapshot().ByDate(ctx, date)
		if err != nil {
			return err
		}
		yesterday, err := tx.Snapshot().ByDate(ctx, previousDate)
		if err != nil {
			return err
		}
		products, err := tx.Product().ForDates(ctx, date, previousDate)
		if err != nil {
			return err
		}

		changes = ComputeChanges(date, today, yesterday, products)
		return tx.Change().ReplaceDate(ctx, date, changes)
	})
	if err != nil {
		return nil, srvErrors.NewTransactionError("delta "+date, 0, 0, err)
	}

	result := &models.DeltaResult{Date: date, PreviousDate: previousDate, Changes: changes}
	for _, c := range changes {
		if c.ChangeType == models.ChangeTypeIncrease {
			result.Increases++
		} else {
			result.Decreases++
		}
	}

	telemetry.SetChangesComputed(len(changes))
	s.log.Infow("delta computed", "date", date, "previous_date", previousDate,
		"changes", len(changes), "increases", result.Increases, "decreases", result.Decreases)
	return result, nil
}

// ComputeChanges compares two snapshots keyed by SKU. Every SKU of either
// snapshot is considered; a SKU missing from one side counts as quantity 0
// there. Only SKUs whose quantity moved are returned, largest absolute change
// first and SKU ascending on ties.
func ComputeChanges(date string, today, yesterday map[string]models.SnapshotRecord, products map[string]models.Product) []models.ChangeRecord {
	skus := make(map[string]struct{}, len(today)+len(yesterday))
	for sku := range today {
		skus[sku] = struct{}{}
	}
	for sku := range yesterday {
		skus[sku] = struct{}{}
	}

	changes := make([]models.ChangeRecord, 0)
	for sku := range skus {
		t, inToday := today[sku]
		y, inYesterday := yesterday[sku]

		change := t.Quantity - y.Quantity
		abs := change
		if abs < 0 {
			abs = -abs
		}
		if abs == 0 {
			continue
		}

		changeType := models.ChangeTypeIncrease
		if change < 0 {
			changeType = models.ChangeTypeDecrease
		}

		var cost float64
		switch {
		case inToday:
			cost = t.EstimatedCost
		case inYesterday:
			cost = y.EstimatedCost
		}

		p := products[sku]
		changes = append(changes, models.ChangeRecord{
			Date:           date,
			SKU:            sku,
			Title:          p.Title,
			UPC:            p.UPC,
			Category1:      p.Category1,
			Category2:      p.Category2,
			YesterdayQty:   y.Quantity,
			TodayQty:       t.Quantity,
			QuantityChange: change,
			AbsoluteChange: abs,
			PercentChange:  PercentChange(change, y.Quantity),
			ChangeType:     changeType,
			EstimatedCost:  cost,
			TotalValue:     float64(t.Quantity) * cost,
		})
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].AbsoluteChange != changes[j].AbsoluteChange {
			return changes[i].AbsoluteChange > changes[j].AbsoluteChange
		}
		return changes[i].SKU < changes[j].SKU
	})
	return changes
}

func (s *DeltaService) ListByDate(ctx context.Context, date string) ([]models.ChangeRecord, error) {
	date, err := models.ParseDate("date", date)
	if err != nil {
		return nil, err
	}
	return s.store.Change().ListByDate(ctx, date)
}

func (s *DeltaService) ListRange(ctx context.Context, from, to string) ([]models.ChangeRecord, error) {
	from, to, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}
	return s.store.Change().ListRange(ctx, from, to)
}

func parseRange(from, to string) (string, string, error) {
	from, err := models.ParseDate("from", from)
	if err != nil {
		return "", "", err
	}
	to, err = models.ParseDate("to", to)
	if err != nil {
		return "", "", err
	}
	if from > to {
		return "", "", srvErrors.NewValidationErrorf("from", "%s is after %s", from, to)
	}
	return from, to, nil
}
