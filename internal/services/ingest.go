package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/store"
	"github.com/skuledger/skuledger/internal/telemetry"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

type IngestService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewIngestService(st *store.Store) *IngestService {
	return &IngestService{store: st, log: zap.S().Named("ingest_service")}
}

// Ingest makes rows the snapshot of date, dropping SKUs of an earlier ingest
// of the same date that rows no longer contain. Rows without a SKU are
// skipped and reported; every other row upserts its product and writes one
// snapshot record. The whole ingest is one transaction: a storage fault rolls
// everything back and returns a TransactionError.
func (s *IngestService) Ingest(ctx context.Context, date string, rows []models.ExportRow) (*models.IngestResult, error) {
	date, err := models.ParseDate("date", date)
	if err != nil {
		return nil, err
	}
	defer telemetry.Timer("ingest")()

	result := &models.IngestResult{Date: date}

	err = s.store.WriteTx(ctx, func(ctx context.Context, tx *store.Tx) error {
		result.Saved, result.Skipped, result.Errors = 0, 0, nil
		seen := make(map[string]struct{}, len(rows))

		for i, row := range rows {
			sku := strings.TrimSpace(row.SKU)
			if sku == "" {
				result.Skipped++
				result.Errors = append(result.Errors, srvErrors.NewParseError(i+1, "sku", "sku is empty").Error())
				continue
			}

			product := models.Product{
				SKU:       sku,
				Title:     strings.TrimSpace(row.Title),
				UPC:       strings.TrimSpace(row.UPC),
				Category1: strings.TrimSpace(row.Category1),
				Category2: strings.TrimSpace(row.Category2),
			}
			if err := tx.Product().Upsert(ctx, product); err != nil {
				return err
			}

			record := models.SnapshotRecord{
				Date:          date,
				SKU:           sku,
				Quantity:      ParseQuantity(row.Quantity),
				EstimatedCost: ParseCost(row.EstimatedCost),
			}
			if err := tx.Snapshot().Upsert(ctx, record); err != nil {
				return err
			}
			seen[sku] = struct{}{}
			result.Saved++
		}

		removed, err := tx.Snapshot().DeleteExcept(ctx, date, seen)
		if err != nil {
			return err
		}
		if removed > 0 {
			s.log.Infow("dropped skus missing from the new export", "date", date, "rows", removed)
		}
		return nil
	})
	if err != nil {
		s.log.Errorw("ingest rolled back", "date", date, "saved", result.Saved, "skipped", result.Skipped, "error", err)
		return nil, srvErrors.NewTransactionError("ingest "+date, result.Saved, result.Skipped, err)
	}

	telemetry.CountIngestedRows(result.Saved, result.Skipped)
	s.log.Infow("snapshot ingested", "date", date, "saved", result.Saved, "skipped", result.Skipped)
	return result, nil
}
