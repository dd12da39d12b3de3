package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
)

// WriteCleaned exports the cleaned record set, the retail_clean.csv shape.
func WriteCleaned(path string, txs []domain.Transaction) error {
	rows := make([][]string, 0, len(txs)+1)
	rows = append(rows, []string{"Market", "Category", "Product", "Price", "Quantity", "Revenue"})
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.Market,
			tx.Category,
			tx.Product,
			strconv.FormatFloat(tx.UnitPrice, 'f', -1, 64),
			strconv.FormatInt(tx.Quantity, 10),
			strconv.FormatFloat(tx.Revenue, 'f', -1, 64),
		})
	}
	return write(path, rows)
}

// WriteAggregates exports category aggregates, the for_abc.csv shape.
func WriteAggregates(path string, aggs []domain.CategoryAggregate) error {
	rows := make([][]string, 0, len(aggs)+1)
	rows = append(rows, []string{"Category", "total_sales", "total_revenue"})
	for _, a := range aggs {
		rows = append(rows, []string{
			a.Category,
			strconv.FormatFloat(a.TotalSales, 'f', -1, 64),
			strconv.FormatFloat(a.TotalRevenue, 'f', -1, 64),
		})
	}
	return write(path, rows)
}

func write(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}
