package store

// Product queries
const (
	queryUpsertProduct = `
		INSERT INTO products (sku, title, upc, category1, category2, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (sku) DO UPDATE SET
			title = EXCLUDED.title,
			upc = COALESCE(EXCLUDED.upc, upc),
			category1 = COALESCE(EXCLUDED.category1, category1),
			category2 = COALESCE(EXCLUDED.category2, category2),
			updated_at = EXCLUDED.updated_at`

	queryGetProduct = `
		SELECT sku, title, COALESCE(upc, '') AS upc, COALESCE(category1, '') AS category1,
		       COALESCE(category2, '') AS category2, created_at, updated_at
		FROM products WHERE sku = ?`

	queryCountProducts = `SELECT COUNT(*) FROM products`

	queryProductsForDates = `
		SELECT sku, title, COALESCE(upc, '') AS upc, COALESCE(category1, '') AS category1,
		       COALESCE(category2, '') AS category2, created_at, updated_at
		FROM products
		WHERE sku IN (SELECT sku FROM inventory_snapshots WHERE date = ? OR date = ?)`
)

// Snapshot queries
const (
	queryDeleteSnapshot = `DELETE FROM inventory_snapshots WHERE date = ? AND sku = ?`

	querySnapshotSkus = `SELECT sku FROM inventory_snapshots WHERE date = ?`

	queryInsertSnapshot = `
		INSERT INTO inventory_snapshots (date, sku, quantity, estimated_cost)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (date, sku) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			estimated_cost = EXCLUDED.estimated_cost`

	querySnapshotByDate = `
		SELECT date, sku, quantity, estimated_cost
		FROM inventory_snapshots WHERE date = ?
		ORDER BY sku`

	queryCountSnapshotDate = `SELECT COUNT(*) FROM inventory_snapshots WHERE date = ?`

	queryLatestSnapshotDate = `SELECT COALESCE(MAX(date), '') FROM inventory_snapshots`

	queryPreviousSnapshotDate = `SELECT COALESCE(MAX(date), '') FROM inventory_snapshots WHERE date < ?`

	queryNextSnapshotDate = `SELECT COALESCE(MIN(date), '') FROM inventory_snapshots WHERE date > ?`

	querySnapshotDates = `SELECT DISTINCT date FROM inventory_snapshots ORDER BY date`
)

// Change queries
const (
	queryDeleteChange = `DELETE FROM daily_changes WHERE date = ? AND sku = ?`

	queryChangeSkus = `SELECT sku FROM daily_changes WHERE date = ?`

	queryUpsertChange = `
		INSERT INTO daily_changes (
			date, sku, title, upc, category1, category2,
			yesterday_qty, today_qty, quantity_change, absolute_change,
			percent_change, change_type, estimated_cost, total_value
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (date, sku) DO UPDATE SET
			title = EXCLUDED.title,
			upc = EXCLUDED.upc,
			category1 = EXCLUDED.category1,
			category2 = EXCLUDED.category2,
			yesterday_qty = EXCLUDED.yesterday_qty,
			today_qty = EXCLUDED.today_qty,
			quantity_change = EXCLUDED.quantity_change,
			absolute_change = EXCLUDED.absolute_change,
			percent_change = EXCLUDED.percent_change,
			change_type = EXCLUDED.change_type,
			estimated_cost = EXCLUDED.estimated_cost,
			total_value = EXCLUDED.total_value`
)

// View queries
const (
	queryDropViewStaging = `DROP TABLE IF EXISTS current_inventory_view_next`

	queryCreateViewStaging = `
		CREATE TABLE current_inventory_view_next (
			sku VARCHAR NOT NULL,
			title VARCHAR NOT NULL DEFAULT '',
			upc VARCHAR NOT NULL DEFAULT '',
			category1 VARCHAR NOT NULL DEFAULT '',
			category2 VARCHAR NOT NULL DEFAULT '',
			quantity BIGINT NOT NULL DEFAULT 0,
			estimated_cost DOUBLE NOT NULL DEFAULT 0,
			quantity_change BIGINT NOT NULL DEFAULT 0,
			absolute_change BIGINT NOT NULL DEFAULT 0,
			percent_change VARCHAR NOT NULL DEFAULT 'N/A',
			last_updated VARCHAR NOT NULL
		)`

	queryDropView = `DROP TABLE current_inventory_view`

	querySwapView = `ALTER TABLE current_inventory_view_next RENAME TO current_inventory_view`

	queryFillViewStaging = `
		INSERT INTO current_inventory_view_next (
			sku, title, upc, category1, category2, quantity, estimated_cost,
			quantity_change, absolute_change, percent_change, last_updated
		)
		SELECT
			s.sku,
			COALESCE(p.title, ''),
			COALESCE(p.upc, ''),
			COALESCE(p.category1, ''),
			COALESCE(p.category2, ''),
			s.quantity,
			s.estimated_cost,
			COALESCE(c.quantity_change, 0),
			COALESCE(c.absolute_change, 0),
			COALESCE(c.percent_change, 'N/A'),
			s.date
		FROM inventory_snapshots s
		LEFT JOIN products p ON p.sku = s.sku
		LEFT JOIN daily_changes c ON c.sku = s.sku AND c.date = s.date
		WHERE s.date = ?`

	queryViewStats = `
		SELECT
			COUNT(*),
			COALESCE(SUM(quantity * estimated_cost), 0),
			CAST(COALESCE(SUM(CASE WHEN quantity = 0 THEN 1 ELSE 0 END), 0) AS BIGINT),
			CAST(COALESCE(SUM(CASE WHEN quantity > 0 AND quantity <= ? THEN 1 ELSE 0 END), 0) AS BIGINT),
			CAST(COALESCE(SUM(CASE WHEN absolute_change > 0 THEN 1 ELSE 0 END), 0) AS BIGINT),
			COALESCE(MAX(last_updated), '')
		FROM current_inventory_view`
)

// Metrics queries
const (
	querySnapshotAggregates = `
		SELECT
			COUNT(*),
			COALESCE(SUM(quantity * estimated_cost), 0),
			CAST(COALESCE(SUM(CASE WHEN quantity = 0 THEN 1 ELSE 0 END), 0) AS BIGINT),
			CAST(COALESCE(SUM(CASE WHEN quantity > 0 AND quantity <= ? THEN 1 ELSE 0 END), 0) AS BIGINT)
		FROM inventory_snapshots WHERE date = ?`

	queryChangeAggregates = `
		SELECT
			CAST(COALESCE(SUM(CASE WHEN change_type = 'increase' THEN 1 ELSE 0 END), 0) AS BIGINT),
			CAST(COALESCE(SUM(CASE WHEN change_type = 'decrease' THEN 1 ELSE 0 END), 0) AS BIGINT),
			CAST(COALESCE(SUM(quantity_change), 0) AS BIGINT),
			CAST(COALESCE(SUM(absolute_change), 0) AS BIGINT),
			COALESCE(SUM(absolute_change * estimated_cost), 0)
		FROM daily_changes WHERE date = ?`

	queryUpsertMetrics = `
		INSERT INTO daily_metrics (
			date, total_products, total_value, out_of_stock, low_stock,
			increases, decreases, net_change_units, total_abs_change_units,
			total_abs_change_usd, generated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (date) DO UPDATE SET
			total_products = EXCLUDED.total_products,
			total_value = EXCLUDED.total_value,
			out_of_stock = EXCLUDED.out_of_stock,
			low_stock = EXCLUDED.low_stock,
			increases = EXCLUDED.increases,
			decreases = EXCLUDED.decreases,
			net_change_units = EXCLUDED.net_change_units,
			total_abs_change_units = EXCLUDED.total_abs_change_units,
			total_abs_change_usd = EXCLUDED.total_abs_change_usd,
			generated_at = EXCLUDED.generated_at`
)

// Retention queries
const (
	queryPruneSnapshots = `DELETE FROM inventory_snapshots WHERE date < ?`
	queryPruneChanges   = `DELETE FROM daily_changes WHERE date < ?`
	queryPruneMetrics   = `DELETE FROM daily_metrics WHERE date < ?`
)
