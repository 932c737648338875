package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/store"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

var _ = Describe("ProductStore", func() {
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

	Context("Upsert", func() {
		// Given a product with an empty SKU
		// When we upsert it
		// Then it should return a ParseError
		It("should reject an empty sku", func() {
			err := s.Product().Upsert(ctx, models.Product{SKU: "  ", Title: "x"})

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsParseError(err)).To(BeTrue())
		})

		// Given a product with a blank title
		// When we upsert it
		// Then the stored title should be "Unknown"
		It("should store Unknown for a blank title", func() {
			err := s.Product().Upsert(ctx, models.Product{SKU: "A-1"})
			Expect(err).NotTo(HaveOccurred())

			p, err := s.Product().Get(ctx, "A-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Title).To(Equal(models.UnknownTitle))
		})

		// Given a stored product with upc and categories
		// When we upsert the same sku with blank upc and categories and a new title
		// Then the title should change and the other attributes should be preserved
		It("should preserve upc and categories when the new values are blank", func() {
			err := s.Product().Upsert(ctx, models.Product{SKU: "A-1", Title: "Old", UPC: "0001", Category1: "Tools", Category2: "Hand"})
			Expect(err).NotTo(HaveOccurred())

			err = s.Product().Upsert(ctx, models.Product{SKU: "A-1", Title: "New"})
			Expect(err).NotTo(HaveOccurred())

			p, err := s.Product().Get(ctx, "A-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Title).To(Equal("New"))
			Expect(p.UPC).To(Equal("0001"))
			Expect(p.Category1).To(Equal("Tools"))
			Expect(p.Category2).To(Equal("Hand"))
		})

		// Given a stored product
		// When we upsert it with a non-blank upc
		// Then the upc should be overwritten
		It("should overwrite non-blank attributes", func() {
			Expect(s.Product().Upsert(ctx, models.Product{SKU: "A-1", Title: "T", UPC: "0001"})).To(Succeed())
			Expect(s.Product().Upsert(ctx, models.Product{SKU: "A-1", Title: "T", UPC: "0002"})).To(Succeed())

			p, err := s.Product().Get(ctx, "A-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.UPC).To(Equal("0002"))

			count, err := s.Product().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})
	})

	Context("Get", func() {
		It("should return ResourceNotFoundError for an unknown sku", func() {
			_, err := s.Product().Get(ctx, "missing")

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("ForDates", func() {
		// Given products present in two different snapshots and one in neither
		// When we load products for both dates
		// Then only the snapshot products should be returned
		It("should return products of either snapshot", func() {
			seedSnapshot(ctx, s, "2025-08-08", rec("A", 1, 1))
			seedSnapshot(ctx, s, "2025-08-09", rec("B", 1, 1))
			Expect(s.Product().Upsert(ctx, models.Product{SKU: "C", Title: "Other"})).To(Succeed())

			products, err := s.Product().ForDates(ctx, "2025-08-09", "2025-08-08")
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(2))
			Expect(products).To(HaveKey("A"))
			Expect(products).To(HaveKey("B"))
		})
	})
})
