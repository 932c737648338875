package services_test

import (
	"context"
	"database/sql"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/services"
	"github.com/skuledger/skuledger/internal/store"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

var _ = Describe("IngestService", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
		svc *services.IngestService
	)

	BeforeEach(func() {
		ctx = context.Background()
		s, db = newTestStore(ctx)
		svc = services.NewIngestService(s)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	// Given rows with one blank sku and messy numeric cells
	// When we ingest them
	// Then the blank row should be skipped and counted and the others coerced
	It("should skip blank skus and coerce numbers", func() {
		rows := []models.ExportRow{
			row("A", "Widget", "1,200", "$2.50"),
			row("  ", "No sku", "5", "1"),
			row("B", "", "oops", "-3"),
			row("C", "Overflow", "18446744073709551615", "1"),
		}

		result, err := svc.Ingest(ctx, "2025-08-08", rows)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Saved).To(Equal(3))
		Expect(result.Skipped).To(Equal(1))
		Expect(result.Errors).To(ConsistOf(ContainSubstring("row 2")))

		snap, err := s.Snapshot().ByDate(ctx, "2025-08-08")
		Expect(err).NotTo(HaveOccurred())
		Expect(snap).To(HaveLen(3))
		Expect(snap["C"].Quantity).To(BeEquivalentTo(0))
		Expect(snap["A"].Quantity).To(BeEquivalentTo(1200))
		Expect(snap["A"].EstimatedCost).To(BeNumerically("~", 2.5))
		Expect(snap["B"].Quantity).To(BeEquivalentTo(0))
		Expect(snap["B"].EstimatedCost).To(BeNumerically("==", 0))

		p, err := s.Product().Get(ctx, "B")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Title).To(Equal(models.UnknownTitle))
	})

	// Given a date already ingested
	// When we ingest the same rows again
	// Then the snapshot set should be identical, with no duplication
	It("should be idempotent for identical rows", func() {
		rows := []models.ExportRow{row("A", "Widget", "3", "1"), row("B", "Gadget", "4", "2")}

		_, err := svc.Ingest(ctx, "2025-08-08", rows)
		Expect(err).NotTo(HaveOccurred())
		first, err := s.Snapshot().ListByDate(ctx, "2025-08-08")
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.Ingest(ctx, "2025-08-08", rows)
		Expect(err).NotTo(HaveOccurred())
		second, err := s.Snapshot().ListByDate(ctx, "2025-08-08")
		Expect(err).NotTo(HaveOccurred())

		Expect(second).To(Equal(first))
	})

	// Given a date already ingested with three skus
	// When we re-ingest it with one sku
	// Then only the new final state should remain
	It("should replace the snapshot of a re-ingested date", func() {
		_, err := svc.Ingest(ctx, "2025-08-08", []models.ExportRow{row("A", "a", "1", "1"), row("B", "b", "1", "1"), row("C", "c", "1", "1")})
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.Ingest(ctx, "2025-08-08", []models.ExportRow{row("B", "b", "9", "1")})
		Expect(err).NotTo(HaveOccurred())

		snap, err := s.Snapshot().ByDate(ctx, "2025-08-08")
		Expect(err).NotTo(HaveOccurred())
		Expect(snap).To(HaveLen(1))
		Expect(snap["B"].Quantity).To(BeEquivalentTo(9))
	})

	It("should reject a malformed date", func() {
		_, err := svc.Ingest(ctx, "08/08/2025", nil)
		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
	})

	// Given a store whose snapshot table is gone
	// When we ingest
	// Then nothing should be written and a TransactionError should report the counts
	It("should roll back and report a TransactionError on a storage fault", func() {
		_, err := svc.Ingest(ctx, "2025-08-07", []models.ExportRow{row("KEEP", "k", "1", "1")})
		Expect(err).NotTo(HaveOccurred())

		_, err = db.ExecContext(ctx, `DROP INDEX idx_snapshots_sku`)
		Expect(err).NotTo(HaveOccurred())
		_, err = db.ExecContext(ctx, `DROP TABLE inventory_snapshots`)
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.Ingest(ctx, "2025-08-08", []models.ExportRow{row("NEW", "n", "1", "1")})
		Expect(err).To(HaveOccurred())
		Expect(srvErrors.IsTransactionError(err)).To(BeTrue())

		var txErr *srvErrors.TransactionError
		Expect(errors.As(err, &txErr)).To(BeTrue())
		Expect(txErr.Saved).To(Equal(0))

		_, err = s.Product().Get(ctx, "NEW")
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})

	// Given a date already ingested and a products table that refuses one sku
	// When a re-ingest of that date fails after writing two rows
	// Then the earlier snapshot and product rows should be back as they were
	It("should revert rows written before the fault", func() {
		_, err := svc.Ingest(ctx, "2025-08-08", []models.ExportRow{row("A", "Alpha", "1", "1"), row("B", "Beta", "2", "1")})
		Expect(err).NotTo(HaveOccurred())

		for _, stmt := range []string{
			`CREATE TABLE products_checked (
				sku VARCHAR PRIMARY KEY CHECK (sku <> 'BOOM'),
				title VARCHAR NOT NULL DEFAULT 'Unknown',
				upc VARCHAR,
				category1 VARCHAR,
				category2 VARCHAR,
				created_at TIMESTAMP,
				updated_at TIMESTAMP
			)`,
			`INSERT INTO products_checked SELECT sku, title, upc, category1, category2, created_at, updated_at FROM products`,
			`DROP TABLE products`,
			`ALTER TABLE products_checked RENAME TO products`,
		} {
			_, err = db.ExecContext(ctx, stmt)
			Expect(err).NotTo(HaveOccurred(), stmt)
		}

		_, err = svc.Ingest(ctx, "2025-08-08", []models.ExportRow{
			row("A", "Alpha v2", "10", "1"),
			row("C", "Gamma", "3", "1"),
			row("BOOM", "Broken", "1", "1"),
		})
		var txErr *srvErrors.TransactionError
		Expect(errors.As(err, &txErr)).To(BeTrue())
		Expect(txErr.Saved).To(Equal(2))

		snap, err := s.Snapshot().ByDate(ctx, "2025-08-08")
		Expect(err).NotTo(HaveOccurred())
		Expect(snap).To(HaveLen(2))
		Expect(snap["A"].Quantity).To(BeEquivalentTo(1))
		Expect(snap["B"].Quantity).To(BeEquivalentTo(2))

		a, err := s.Product().Get(ctx, "A")
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Title).To(Equal("Alpha"))

		_, err = s.Product().Get(ctx, "C")
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})
})
