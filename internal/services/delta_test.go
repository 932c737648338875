package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/services"
	"github.com/skuledger/skuledger/internal/store"
)

var _ = Describe("DeltaService", func() {
	var (
		ctx    context.Context
		s      *store.Store
		db     *sql.DB
		ingest *services.IngestService
		delta  *services.DeltaService
	)

	BeforeEach(func() {
		ctx = context.Background()
		s, db = newTestStore(ctx)
		ingest = services.NewIngestService(s)
		delta = services.NewDeltaService(s)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	mustIngest := func(date string, rows ...models.ExportRow) {
		_, err := ingest.Ingest(ctx, date, rows)
		Expect(err).NotTo(HaveOccurred())
	}

	// Given SKU1 at 10 then 15 units with cost 2.0
	// When we compute deltas for the second day
	// Then one increase record with 50.00% and total value 30 should be stored
	It("should compute the documented increase scenario", func() {
		mustIngest("2025-08-08", row("SKU1", "Widget", "10", "2.0"))
		mustIngest("2025-08-09", row("SKU1", "Widget", "15", "2.0"))

		result, err := delta.Compute(ctx, "2025-08-09", "2025-08-08")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Increases).To(Equal(1))

		stored, err := s.Change().ListByDate(ctx, "2025-08-09")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(HaveLen(1))

		c := stored[0]
		Expect(c.SKU).To(Equal("SKU1"))
		Expect(c.Title).To(Equal("Widget"))
		Expect(c.YesterdayQty).To(BeEquivalentTo(10))
		Expect(c.TodayQty).To(BeEquivalentTo(15))
		Expect(c.QuantityChange).To(BeEquivalentTo(5))
		Expect(c.AbsoluteChange).To(BeEquivalentTo(5))
		Expect(c.PercentChange).To(Equal("50.00%"))
		Expect(c.ChangeType).To(Equal(models.ChangeTypeIncrease))
		Expect(c.TotalValue).To(BeNumerically("~", 30.0))
	})

	// Given a SKU with 5 units that disappears from the next export
	// When we compute deltas
	// Then it should be recorded as a decrease to 0 with the previous cost
	It("should treat a delisted sku as dropping to zero", func() {
		mustIngest("2025-08-08", row("GONE", "Old", "5", "4"), row("STAY", "s", "1", "1"))
		mustIngest("2025-08-09", row("STAY", "s", "1", "1"))

		result, err := delta.Compute(ctx, "2025-08-09", "2025-08-08")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Changes).To(HaveLen(1))

		c := result.Changes[0]
		Expect(c.SKU).To(Equal("GONE"))
		Expect(c.YesterdayQty).To(BeEquivalentTo(5))
		Expect(c.TodayQty).To(BeEquivalentTo(0))
		Expect(c.QuantityChange).To(BeEquivalentTo(-5))
		Expect(c.AbsoluteChange).To(BeEquivalentTo(5))
		Expect(c.ChangeType).To(Equal(models.ChangeTypeDecrease))
		Expect(c.PercentChange).To(Equal("-100.00%"))
		Expect(c.EstimatedCost).To(BeNumerically("~", 4.0))
		Expect(c.TotalValue).To(BeNumerically("==", 0))
	})

	// Given a SKU that appears with 10 units
	// When we compute deltas
	// Then the percent change should be N/A
	It("should report N/A for a new sku", func() {
		mustIngest("2025-08-08", row("OLD", "o", "1", "1"))
		mustIngest("2025-08-09", row("OLD", "o", "1", "1"), row("NEW", "n", "10", "3"))

		result, err := delta.Compute(ctx, "2025-08-09", "2025-08-08")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Changes).To(HaveLen(1))
		Expect(result.Changes[0].PercentChange).To(Equal(models.PercentNotAvailable))
		Expect(result.Changes[0].TotalValue).To(BeNumerically("~", 30.0))
	})

	// Given two snapshots with many overlapping and disjoint skus
	// When we compute deltas
	// Then the sum of changes should equal the difference of the snapshot totals
	It("should preserve the quantity sum identity", func() {
		mustIngest("2025-08-08",
			row("A", "a", "10", "1"), row("B", "b", "0", "1"), row("C", "c", "7", "1"), row("D", "d", "3", "1"))
		mustIngest("2025-08-09",
			row("A", "a", "4", "1"), row("B", "b", "12", "1"), row("D", "d", "3", "1"), row("E", "e", "8", "1"))

		result, err := delta.Compute(ctx, "2025-08-09", "2025-08-08")
		Expect(err).NotTo(HaveOccurred())

		var sumChange int64
		for _, c := range result.Changes {
			sumChange += c.QuantityChange
		}

		sum := func(date string) int64 {
			records, err := s.Snapshot().ListByDate(ctx, date)
			Expect(err).NotTo(HaveOccurred())
			var total int64
			for _, r := range records {
				total += r.Quantity
			}
			return total
		}
		Expect(sumChange).To(Equal(sum("2025-08-09") - sum("2025-08-08")))
	})

	It("should order by absolute change then sku", func() {
		mustIngest("2025-08-08", row("B", "b", "1", "1"), row("A", "a", "1", "1"), row("C", "c", "1", "1"))
		mustIngest("2025-08-09", row("B", "b", "4", "1"), row("A", "a", "4", "1"), row("C", "c", "11", "1"))

		result, err := delta.Compute(ctx, "2025-08-09", "2025-08-08")
		Expect(err).NotTo(HaveOccurred())

		var skus []string
		for _, c := range result.Changes {
			skus = append(skus, c.SKU)
		}
		Expect(skus).To(Equal([]string{"C", "A", "B"}))
	})

	It("should replace stored changes on recompute", func() {
		mustIngest("2025-08-08", row("A", "a", "1", "1"))
		mustIngest("2025-08-09", row("A", "a", "2", "1"))
		_, err := delta.Compute(ctx, "2025-08-09", "2025-08-08")
		Expect(err).NotTo(HaveOccurred())

		mustIngest("2025-08-09", row("A", "a", "1", "1"))
		_, err = delta.Compute(ctx, "2025-08-09", "2025-08-08")
		Expect(err).NotTo(HaveOccurred())

		count, err := s.Change().CountByDate(ctx, "2025-08-09")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(0))
	})

	It("should return an empty result without a previous date", func() {
		result, err := delta.Compute(ctx, "2025-08-09", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Changes).To(BeEmpty())
		Expect(result.PreviousDate).To(BeEmpty())
	})

	Context("ComputeChanges", func() {
		It("should leave product attributes empty for unknown skus", func() {
			today := map[string]models.SnapshotRecord{"X": {SKU: "X", Quantity: 2}}
			changes := services.ComputeChanges("2025-08-09", today, nil, nil)

			Expect(changes).To(HaveLen(1))
			Expect(changes[0].Title).To(BeEmpty())
			Expect(changes[0].Date).To(Equal("2025-08-09"))
		})
	})
})
