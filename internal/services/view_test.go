package services_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skuledger/skuledger/internal/config"
	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/services"
	"github.com/skuledger/skuledger/internal/store"
)

var _ = Describe("ViewService with concurrent readers", func() {
	const (
		bigDate   = "2025-08-08"
		smallDate = "2025-08-09"
		bigSize   = 400
		smallSize = 250
		readers   = 4
		refreshes = 15
	)

	var (
		ctx       context.Context
		s         *store.Store
		db        *sql.DB
		view      *services.ViewService
		inventory *services.InventoryService
	)

	BeforeEach(func() {
		ctx = context.Background()
		s, db = newTestStore(ctx)
		view = services.NewViewService(s)
		inventory = services.NewInventoryService(s, *config.NewQueryWithOptionsAndDefaults())

		ingest := services.NewIngestService(s)
		for date, size := range map[string]int{bigDate: bigSize, smallDate: smallSize} {
			rows := make([]models.ExportRow, 0, size)
			for i := 0; i < size; i++ {
				rows = append(rows, row(fmt.Sprintf("S%05d", i), fmt.Sprintf("Item %d", i), "5", "1"))
			}
			_, err := ingest.Ingest(ctx, date, rows)
			Expect(err).NotTo(HaveOccurred())
		}

		_, err := view.Refresh(ctx, bigDate)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	// Given readers paging through the whole view in a loop
	// When the view is refreshed back and forth between two dates
	// Then every refresh should commit and every read should see one complete date
	It("should refresh while readers run and never expose a partial view", func() {
		stop := make(chan struct{})
		readErrs := make(chan error, readers)
		var wg sync.WaitGroup

		for i := 0; i < readers; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				for {
					select {
					case <-stop:
						return
					default:
					}

					result, err := inventory.GetPaginated(ctx, models.InventoryQuery{Limit: bigSize})
					if err != nil {
						readErrs <- err
						return
					}
					want := map[int]string{bigSize: bigDate, smallSize: smallDate}[result.Total]
					if want == "" || len(result.Data) != result.Total {
						readErrs <- fmt.Errorf("read %d rows, total %d", len(result.Data), result.Total)
						return
					}
					for _, r := range result.Data {
						if r.LastUpdated != want {
							readErrs <- fmt.Errorf("row %s dated %s in a view of %s", r.SKU, r.LastUpdated, want)
							return
						}
					}
				}
			}()
		}

		var refreshErrs []error
		for i := 0; i < refreshes; i++ {
			date := smallDate
			if i%2 == 1 {
				date = bigDate
			}
			if _, err := view.Refresh(ctx, date); err != nil {
				refreshErrs = append(refreshErrs, err)
			}
		}

		close(stop)
		wg.Wait()
		close(readErrs)

		Expect(refreshErrs).To(BeEmpty())
		var errs []error
		for err := range readErrs {
			errs = append(errs, err)
		}
		Expect(errs).To(BeEmpty())

		count, err := s.View().Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(smallSize))
	})
})
