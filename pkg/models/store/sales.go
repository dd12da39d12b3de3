package store

// SalesRecord is the storage-level shape of a cleaned transaction.
type SalesRecord struct {
	Market    string
	Category  string
	Product   string
	UnitPrice float64
	Quantity  int64
	Revenue   float64
}

// MarketCategoryRow is one aggregated row of the market/category summary.
type MarketCategoryRow struct {
	Market       string
	Category     string
	TotalSales   float64
	TotalRevenue float64
}
