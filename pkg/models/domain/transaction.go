package domain

// Transaction represents a single cleaned market price record.
type Transaction struct {
	Market    string
	Category  string
	Product   string
	UnitPrice float64
	Quantity  int64
	Revenue   float64 // UnitPrice * Quantity, computed during cleaning
}

// CleanStats describes what the loader dropped while cleaning a file.
type CleanStats struct {
	RowsRead          int
	RowsKept          int
	DuplicatesRemoved int
	ZeroQuantity      int
	Malformed         int
}
