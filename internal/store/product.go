package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/skuledger/skuledger/internal/models"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

// ProductStore handles the SKU master table.
type ProductStore struct {
	db QueryInterceptor
}

func NewProductStore(db QueryInterceptor) *ProductStore {
	return &ProductStore{db: db}
}

// Upsert inserts or updates a product. Title is always overwritten (blank
// becomes "Unknown"); a blank UPC or category keeps the stored value.
func (s *ProductStore) Upsert(ctx context.Context, p models.Product) error {
	sku := strings.TrimSpace(p.SKU)
	if sku == "" {
		return srvErrors.NewParseError(0, "sku", "sku is empty")
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = models.UnknownTitle
	}

	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, queryUpsertProduct,
		sku, title, nullIfBlank(p.UPC), nullIfBlank(p.Category1), nullIfBlank(p.Category2), now, now)
	return err
}

func (s *ProductStore) Get(ctx context.Context, sku string) (*models.Product, error) {
	rows, err := s.db.QueryContext(ctx, queryGetProduct, sku)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	if err := sqlx.StructScan(rows, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, srvErrors.NewResourceNotFoundError("product", sku)
	}
	return &products[0], nil
}

func (s *ProductStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, queryCountProducts).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return count, err
}

// ForDates returns the products of every SKU present in either snapshot, keyed by SKU.
func (s *ProductStore) ForDates(ctx context.Context, date, other string) (map[string]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, queryProductsForDates, date, other)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	if err := sqlx.StructScan(rows, &products); err != nil {
		return nil, err
	}

	out := make(map[string]models.Product, len(products))
	for _, p := range products {
		out[p.SKU] = p
	}
	return out, nil
}

func nullIfBlank(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
