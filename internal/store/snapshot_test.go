package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skuledger/skuledger/internal/store"
)

var _ = Describe("SnapshotStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()
		s, db = newTestStore(ctx, store.DriverDuckDB)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	// Given a snapshot for one date
	// When we upsert the same sku again
	// Then the date should still hold a single row with the latest values
	It("should keep one record per date and sku", func() {
		seedSnapshot(ctx, s, "2025-08-08", rec("A", 1, 2))
		seedSnapshot(ctx, s, "2025-08-08", rec("A", 7, 3))

		records, err := s.Snapshot().ListByDate(ctx, "2025-08-08")
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].Quantity).To(BeEquivalentTo(7))
		Expect(records[0].EstimatedCost).To(BeNumerically("~", 3.0))
	})

	It("should delete only the requested date", func() {
		seedSnapshot(ctx, s, "2025-08-08", rec("A", 1, 0), rec("B", 2, 0))
		seedSnapshot(ctx, s, "2025-08-09", rec("A", 1, 0))

		n, err := s.Snapshot().DeleteExcept(ctx, "2025-08-08", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeEquivalentTo(2))

		count, err := s.Snapshot().CountByDate(ctx, "2025-08-09")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))
	})

	It("should keep the listed skus of a date", func() {
		seedSnapshot(ctx, s, "2025-08-08", rec("A", 1, 0), rec("B", 2, 0), rec("C", 3, 0))

		n, err := s.Snapshot().DeleteExcept(ctx, "2025-08-08", map[string]struct{}{"B": {}})
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeEquivalentTo(2))

		snap, err := s.Snapshot().ByDate(ctx, "2025-08-08")
		Expect(err).NotTo(HaveOccurred())
		Expect(snap).To(HaveLen(1))
		Expect(snap).To(HaveKey("B"))
	})

	Context("date navigation", func() {
		BeforeEach(func() {
			seedSnapshot(ctx, s, "2025-08-07", rec("A", 1, 0))
			seedSnapshot(ctx, s, "2025-08-09", rec("A", 1, 0))
			seedSnapshot(ctx, s, "2025-08-12", rec("A", 1, 0))
		})

		It("should resolve latest, previous and next dates", func() {
			latest, err := s.Snapshot().LatestDate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest).To(Equal("2025-08-12"))

			prev, err := s.Snapshot().PreviousDate(ctx, "2025-08-09")
			Expect(err).NotTo(HaveOccurred())
			Expect(prev).To(Equal("2025-08-07"))

			next, err := s.Snapshot().NextDate(ctx, "2025-08-09")
			Expect(err).NotTo(HaveOccurred())
			Expect(next).To(Equal("2025-08-12"))

			dates, err := s.Snapshot().Dates(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(dates).To(Equal([]string{"2025-08-07", "2025-08-09", "2025-08-12"}))
		})

		It("should return an empty date at either end", func() {
			prev, err := s.Snapshot().PreviousDate(ctx, "2025-08-07")
			Expect(err).NotTo(HaveOccurred())
			Expect(prev).To(BeEmpty())

			next, err := s.Snapshot().NextDate(ctx, "2025-08-12")
			Expect(err).NotTo(HaveOccurred())
			Expect(next).To(BeEmpty())
		})
	})

	It("should return an empty latest date on an empty store", func() {
		latest, err := s.Snapshot().LatestDate(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(latest).To(BeEmpty())
	})
})
