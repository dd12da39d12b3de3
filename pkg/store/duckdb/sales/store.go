package sales

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/store"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/store/duckdb"
)

// Store ingests cleaned sales records and answers aggregate queries over
// them. It backs the market/category summary; the database lives for a
// single analysis run.
type Store interface {
	Add(ctx context.Context, records []store.SalesRecord) error
	SummarizeByMarketCategory(ctx context.Context) ([]store.MarketCategoryRow, error)
	Categories(ctx context.Context) ([]string, error)
}

type salesStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &salesStore{db: db}, nil
}

func (s *salesStore) Add(ctx context.Context, records []store.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx := duckdb.GetTransaction(ctx)
	query := `
		INSERT INTO sales_records (
			market, category, product, unit_price, quantity, revenue
		) VALUES (?, ?, ?, ?, ?, ?)`

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = s.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			r.Market, r.Category, r.Product, r.UnitPrice, r.Quantity, r.Revenue)
		if err != nil {
			return fmt.Errorf("insert sales record: %w", err)
		}
	}
	return nil
}

func (s *salesStore) SummarizeByMarketCategory(ctx context.Context) ([]store.MarketCategoryRow, error) {
	query := `
		SELECT market, category, SUM(quantity)::DOUBLE AS total_sales, SUM(revenue) AS total_revenue
		FROM sales_records
		GROUP BY market, category
		ORDER BY market, category`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query market/category summary: %w", err)
	}
	defer rows.Close()

	var out []store.MarketCategoryRow
	for rows.Next() {
		var r store.MarketCategoryRow
		if err := rows.Scan(&r.Market, &r.Category, &r.TotalSales, &r.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary rows: %w", err)
	}
	return out, nil
}

func (s *salesStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM sales_records ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}
