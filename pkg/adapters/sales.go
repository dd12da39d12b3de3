package adapters

import (
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/store"
)

func MapDomainTransactionToSalesRecord(tx domain.Transaction) store.SalesRecord {
	return store.SalesRecord{
		Market:    tx.Market,
		Category:  tx.Category,
		Product:   tx.Product,
		UnitPrice: tx.UnitPrice,
		Quantity:  tx.Quantity,
		Revenue:   tx.Revenue,
	}
}

func MapDomainTransactionsToSalesRecords(txs []domain.Transaction) []store.SalesRecord {
	records := make([]store.SalesRecord, 0, len(txs))
	for _, tx := range txs {
		records = append(records, MapDomainTransactionToSalesRecord(tx))
	}
	return records
}

func MapSalesRowToDomainSummary(row store.MarketCategoryRow) domain.MarketCategorySummary {
	return domain.MarketCategorySummary{
		Market:       row.Market,
		Category:     row.Category,
		TotalSales:   row.TotalSales,
		TotalRevenue: row.TotalRevenue,
	}
}

func MapSalesRowsToDomainSummaries(rows []store.MarketCategoryRow) []domain.MarketCategorySummary {
	summaries := make([]domain.MarketCategorySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, MapSalesRowToDomainSummary(row))
	}
	return summaries
}
