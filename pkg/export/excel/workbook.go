package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
)

// WorkbookData bundles everything the analysis workbook contains.
type WorkbookData struct {
	Transactions   []domain.Transaction
	Classification []domain.ClassEntry
	Mix            []domain.MixEntry
	Markets        []domain.MarketCategorySummary
}

// Write produces a single xlsx workbook with one sheet per artifact:
// the cleaned record set, the ABC classification, the product mix, and the
// market/category summary.
func Write(path string, data WorkbookData) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeTransactions(f, data.Transactions); err != nil {
		return err
	}
	if err := writeClassification(f, data.Classification); err != nil {
		return err
	}
	if err := writeMix(f, data.Mix); err != nil {
		return err
	}
	if err := writeMarkets(f, data.Markets); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeTransactions(f *excelize.File, txs []domain.Transaction) error {
	const sheet = "Cleaned Data"
	rows := make([][]interface{}, 0, len(txs)+1)
	rows = append(rows, []interface{}{"Market", "Category", "Product", "Price", "Quantity", "Revenue"})
	for _, tx := range txs {
		rows = append(rows, []interface{}{tx.Market, tx.Category, tx.Product, tx.UnitPrice, tx.Quantity, tx.Revenue})
	}
	return writeSheet(f, sheet, rows)
}

func writeClassification(f *excelize.File, entries []domain.ClassEntry) error {
	const sheet = "ABC Classification"
	rows := make([][]interface{}, 0, len(entries)+1)
	rows = append(rows, []interface{}{"Category", "Total Impact", "Impact Share", "Cumulative Share", "Class"})
	for _, e := range entries {
		rows = append(rows, []interface{}{e.Category, e.TotalImpact, e.ImpactShare, e.CumulativeShare, string(e.Class)})
	}
	return writeSheet(f, sheet, rows)
}

func writeMix(f *excelize.File, entries []domain.MixEntry) error {
	const sheet = "Product Mix"
	rows := make([][]interface{}, 0, len(entries)+1)
	rows = append(rows, []interface{}{"Category", "Sales Class", "Revenue Class", "Mix"})
	for _, e := range entries {
		rows = append(rows, []interface{}{e.Category, string(e.SalesClass), string(e.RevenueClass), e.Mix})
	}
	return writeSheet(f, sheet, rows)
}

func writeMarkets(f *excelize.File, summaries []domain.MarketCategorySummary) error {
	const sheet = "Market Summary"
	rows := make([][]interface{}, 0, len(summaries)+1)
	rows = append(rows, []interface{}{"Market", "Category", "Total Sales", "Total Revenue"})
	for _, s := range summaries {
		rows = append(rows, []interface{}{s.Market, s.Category, s.TotalSales, s.TotalRevenue})
	}
	return writeSheet(f, sheet, rows)
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %q: %w", i+1, sheet, err)
		}
	}
	return nil
}
