package services_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skuledger/skuledger/internal/config"
	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/services"
	"github.com/skuledger/skuledger/internal/store"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

var _ = Describe("InventoryService", func() {
	var (
		ctx       context.Context
		s         *store.Store
		db        *sql.DB
		ingest    *services.IngestService
		delta     *services.DeltaService
		view      *services.ViewService
		inventory *services.InventoryService
	)

	BeforeEach(func() {
		ctx = context.Background()
		s, db = newTestStore(ctx)
		ingest = services.NewIngestService(s)
		delta = services.NewDeltaService(s)
		view = services.NewViewService(s)
		inventory = services.NewInventoryService(s, *config.NewQueryWithOptionsAndDefaults())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	load := func(date string, rows []models.ExportRow) {
		_, err := ingest.Ingest(ctx, date, rows)
		Expect(err).NotTo(HaveOccurred())
		_, err = view.Refresh(ctx, date)
		Expect(err).NotTo(HaveOccurred())
	}

	// Given 25 SKUs SKU-01..SKU-25 refreshed into the view
	// When we request page 2 with limit 10 sorted by sku
	// Then rows 11 to 20 are returned with total 25 and 3 pages
	It("should paginate the view", func() {
		rows := make([]models.ExportRow, 0, 25)
		for i := 1; i <= 25; i++ {
			rows = append(rows, row(fmt.Sprintf("SKU-%02d", i), fmt.Sprintf("Item %d", i), "1", "1"))
		}
		load("2025-08-09", rows)

		result, err := inventory.GetPaginated(ctx, models.InventoryQuery{
			Page:  2,
			Limit: 10,
			Sort:  &models.SortSpec{Column: "sku", Direction: models.SortAsc},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Total).To(Equal(25))
		Expect(result.TotalPages).To(Equal(3))
		Expect(result.Page).To(Equal(2))
		Expect(result.Limit).To(Equal(10))
		Expect(result.Data).To(HaveLen(10))
		Expect(result.Data[0].SKU).To(Equal("SKU-11"))
		Expect(result.Data[9].SKU).To(Equal("SKU-20"))
	})

	// Given 1200 SKUs refreshed into the view
	// When we request one page with the limit set to the total
	// Then every row comes back on a single page
	It("should return a page as large as the view", func() {
		rows := make([]models.ExportRow, 0, 1200)
		for i := 1; i <= 1200; i++ {
			rows = append(rows, row(fmt.Sprintf("SKU-%04d", i), fmt.Sprintf("Item %d", i), "1", "1"))
		}
		load("2025-08-09", rows)

		result, err := inventory.GetPaginated(ctx, models.InventoryQuery{Limit: 1200})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Total).To(Equal(1200))
		Expect(result.TotalPages).To(Equal(1))
		Expect(result.Data).To(HaveLen(1200))
	})

	It("should reject a limit above a configured maximum", func() {
		capped := services.NewInventoryService(s, *config.NewQueryWithOptionsAndDefaults(config.WithMaxPageSize(1000)))

		_, err := capped.GetPaginated(ctx, models.InventoryQuery{Limit: 1001})
		Expect(err).To(HaveOccurred())
		var vErr *srvErrors.ValidationError
		Expect(errors.As(err, &vErr)).To(BeTrue())
		Expect(vErr.Field).To(Equal("limit"))
	})

	It("should list the queryable columns when a sort column is unknown", func() {
		_, err := inventory.GetPaginated(ctx, models.InventoryQuery{
			Sort: &models.SortSpec{Column: "password", Direction: models.SortAsc},
		})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("expected one of sku, title, upc"))
		Expect(err.Error()).To(ContainSubstring("last_updated"))
	})

	// Given quantities 50, 150 and 300
	// When we filter quantity greaterThan 100
	// Then total is 2 and every row exceeds 100
	It("should count with the same predicate as the page", func() {
		load("2025-08-09", []models.ExportRow{
			row("A", "a", "50", "1"),
			row("B", "b", "150", "1"),
			row("C", "c", "300", "1"),
		})

		result, err := inventory.GetPaginated(ctx, models.InventoryQuery{
			Limit:   1,
			Filters: map[string]models.FilterCondition{"quantity": {Type: models.FilterTypeGreaterThan, Value: "100"}},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Total).To(Equal(2))
		Expect(result.TotalPages).To(Equal(2))
		Expect(result.Data).To(HaveLen(1))
		Expect(result.Data[0].Quantity).To(BeNumerically(">", 100))
	})

	It("should combine search, filters and a descending sort", func() {
		load("2025-08-09", []models.ExportRow{
			row("BLUE-1", "Blue mug", "5", "1"),
			row("BLUE-2", "Blue cup", "9", "1"),
			row("RED-1", "Red mug", "7", "1"),
		})

		result, err := inventory.GetPaginated(ctx, models.InventoryQuery{
			Search:  "blue",
			Sort:    &models.SortSpec{Column: "quantity", Direction: models.SortDesc},
			Filters: map[string]models.FilterCondition{"category1": {Type: models.FilterTypeEquals, Value: "General"}},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Total).To(Equal(2))
		Expect(result.Data[0].SKU).To(Equal("BLUE-2"))
		Expect(result.Data[1].SKU).To(Equal("BLUE-1"))
	})

	It("should return an empty page past the end", func() {
		load("2025-08-09", []models.ExportRow{row("A", "a", "1", "1")})

		result, err := inventory.GetPaginated(ctx, models.InventoryQuery{Page: 5, Limit: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Data).To(BeEmpty())
		Expect(result.Total).To(Equal(1))
		Expect(result.TotalPages).To(Equal(1))
	})

	It("should report zero pages on an empty view", func() {
		result, err := inventory.GetPaginated(ctx, models.InventoryQuery{})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Total).To(Equal(0))
		Expect(result.TotalPages).To(Equal(0))
		Expect(result.Limit).To(Equal(100))
	})

	DescribeTable("should reject an invalid query",
		func(q models.InventoryQuery, field string) {
			_, err := inventory.GetPaginated(ctx, q)
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())

			var vErr *srvErrors.ValidationError
			Expect(errors.As(err, &vErr)).To(BeTrue())
			Expect(vErr.Field).To(Equal(field))
		},
		Entry("unknown filter column", models.InventoryQuery{
			Filters: map[string]models.FilterCondition{"foo": {Type: models.FilterTypeEquals, Value: "x"}},
		}, "filter.foo"),
		Entry("unknown sort column", models.InventoryQuery{
			Sort: &models.SortSpec{Column: "password", Direction: models.SortAsc},
		}, "sort.column"),
		Entry("unknown sort direction", models.InventoryQuery{
			Sort: &models.SortSpec{Column: "sku", Direction: "sideways"},
		}, "sort.direction"),
		Entry("contains on a numeric column", models.InventoryQuery{
			Filters: map[string]models.FilterCondition{"quantity": {Type: models.FilterTypeContains, Value: "1"}},
		}, "filter.quantity"),
		Entry("non numeric greaterThan", models.InventoryQuery{
			Filters: map[string]models.FilterCondition{"quantity": {Type: models.FilterTypeGreaterThan, Value: "lots"}},
		}, "filter.quantity"),
		Entry("lessThan on a text column", models.InventoryQuery{
			Filters: map[string]models.FilterCondition{"title": {Type: models.FilterTypeLessThan, Value: "5"}},
		}, "filter.title"),
		Entry("unknown filter type", models.InventoryQuery{
			Filters: map[string]models.FilterCondition{"title": {Type: "startsWith", Value: "a"}},
		}, "filter.title"),
		Entry("empty contains", models.InventoryQuery{
			Filters: map[string]models.FilterCondition{"title": {Type: models.FilterTypeContains}},
		}, "filter.title"),
		Entry("negative page", models.InventoryQuery{Page: -1}, "page"),
		Entry("negative limit", models.InventoryQuery{Limit: -1}, "limit"),
	)

	Context("other reads", func() {
		BeforeEach(func() {
			_, err := ingest.Ingest(ctx, "2025-08-08", []models.ExportRow{
				row("ABC-1", "Steel bolt", "10", "1.5"),
				row("ABC-2", "Copper nut", "4", "2"),
				row("XYZ-9", "Bolt cutter", "0", "30"),
			})
			Expect(err).NotTo(HaveOccurred())
			load("2025-08-09", []models.ExportRow{
				row("ABC-1", "Steel bolt", "16", "1.5"),
				row("ABC-2", "Copper nut", "3", "2"),
				row("XYZ-9", "Bolt cutter", "0", "30"),
			})
			_, err = delta.Compute(ctx, "2025-08-09", "2025-08-08")
			Expect(err).NotTo(HaveOccurred())
			_, err = view.Refresh(ctx, "2025-08-09")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should page the view by offset", func() {
			result, err := inventory.GetPage(ctx, 2, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(Equal(3))
			Expect(result.Offset).To(Equal(1))
			Expect(result.Data).To(HaveLen(2))
			Expect(result.Data[0].SKU).To(Equal("ABC-2"))
		})

		It("should search by sku prefix or title", func() {
			results, err := inventory.Search(ctx, "bolt", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))

			results, err = inventory.Search(ctx, "abc", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))

			results, err = inventory.Search(ctx, "  ", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(BeEmpty())
		})

		It("should list top movers largest first", func() {
			movers, err := inventory.TopMovers(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(movers).To(HaveLen(2))
			Expect(movers[0].SKU).To(Equal("ABC-1"))
			Expect(movers[0].AbsoluteChange).To(BeEquivalentTo(6))
			Expect(movers[0].PercentChange).To(Equal("60.00%"))
			Expect(movers[1].SKU).To(Equal("ABC-2"))
		})

		It("should list low stock without out of stock rows", func() {
			result, err := inventory.LowStock(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Threshold).To(Equal(10))
			Expect(result.Count).To(Equal(1))
			Expect(result.Items[0].SKU).To(Equal("ABC-2"))

			threshold := 20
			result, err = inventory.LowStock(ctx, &threshold)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Count).To(Equal(2))
			Expect(result.Items[0].SKU).To(Equal("ABC-2"))
		})

		It("should summarize the view", func() {
			st, err := inventory.Stats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.AsOfDate).To(Equal("2025-08-09"))
			Expect(st.TotalProducts).To(BeEquivalentTo(3))
			Expect(st.TotalValue).To(BeNumerically("~", 30.0))
			Expect(st.OutOfStock).To(BeEquivalentTo(1))
			Expect(st.LowStock).To(BeEquivalentTo(2))
			Expect(st.ChangedToday).To(BeEquivalentTo(2))
			Expect(st.AvgValue).To(BeNumerically("~", 10.0))
		})

		It("should return not found for daily stats never computed", func() {
			_, err := inventory.DailyStats(ctx, "2025-08-09")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})
})
