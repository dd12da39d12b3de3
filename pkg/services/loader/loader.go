package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
)

// Columns maps the logical fields to their header names in the input file.
type Columns struct {
	Market   string `mapstructure:"market"`
	Category string `mapstructure:"category"`
	Product  string `mapstructure:"product"`
	Price    string `mapstructure:"price"`
	Quantity string `mapstructure:"quantity"`
}

func DefaultColumns() Columns {
	return Columns{
		Market:   "Market",
		Category: "Category",
		Product:  "Product",
		Price:    "Price",
		Quantity: "Quantity",
	}
}

// MalformedRecordError reports a row that could not be recovered by cleaning.
// The loader logs it and drops the row; the run continues.
type MalformedRecordError struct {
	Line  int
	Field string
	Cause error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d, field %q: %v", e.Line, e.Field, e.Cause)
}

func (e *MalformedRecordError) Unwrap() error { return e.Cause }

// CleanResult holds the cleaned record set and the drop statistics.
type CleanResult struct {
	Transactions []domain.Transaction
	Stats        domain.CleanStats
}

// Loader reads raw market price CSVs and produces cleaned transactions.
type Loader struct {
	columns Columns
}

func New(columns Columns) *Loader {
	return &Loader{columns: columns}
}

// Load opens and cleans a CSV file. Missing files and missing required
// columns are fatal; individual bad rows are dropped and counted.
func (l *Loader) Load(ctx context.Context, path string) (*CleanResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	res, err := l.Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return res, nil
}

// Read cleans CSV data from r. Cleaning drops exact duplicate rows, strips
// the " DA" currency suffix and thousands separators from prices, filters
// rows with zero quantity, and skips rows that stay unparseable.
func (l *Loader) Read(ctx context.Context, r io.Reader) (*CleanResult, error) {
	logger := zerolog.Ctx(ctx)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx, err := l.mapHeader(header)
	if err != nil {
		return nil, err
	}

	res := &CleanResult{}
	seen := make(map[string]struct{})
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.Stats.RowsRead++
			res.Stats.Malformed++
			logger.Warn().Int("line", line).Err(err).Msg("dropping unparseable row")
			continue
		}
		res.Stats.RowsRead++

		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			res.Stats.DuplicatesRemoved++
			continue
		}
		seen[key] = struct{}{}

		tx, err := l.cleanRow(row, idx, line)
		if err != nil {
			var malformed *MalformedRecordError
			if errors.As(err, &malformed) {
				res.Stats.Malformed++
				logger.Warn().
					Int("line", malformed.Line).
					Str("field", malformed.Field).
					Err(malformed.Cause).
					Msg("dropping malformed record")
				continue
			}
			return nil, err
		}

		if tx.Quantity == 0 {
			res.Stats.ZeroQuantity++
			continue
		}

		res.Stats.RowsKept++
		res.Transactions = append(res.Transactions, tx)
	}

	logger.Info().
		Int("read", res.Stats.RowsRead).
		Int("kept", res.Stats.RowsKept).
		Int("duplicates", res.Stats.DuplicatesRemoved).
		Int("zero_quantity", res.Stats.ZeroQuantity).
		Int("malformed", res.Stats.Malformed).
		Msg("finished cleaning input")

	return res, nil
}

func (l *Loader) mapHeader(header []string) (map[string]int, error) {
	required := map[string]string{
		"market":   l.columns.Market,
		"category": l.columns.Category,
		"product":  l.columns.Product,
		"price":    l.columns.Price,
		"quantity": l.columns.Quantity,
	}

	idx := make(map[string]int, len(required))
	for field, name := range required {
		found := -1
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				found = i
				break
			}
		}
		if found == -1 {
			return nil, fmt.Errorf("required column %q not found in input", name)
		}
		idx[field] = found
	}
	return idx, nil
}

func (l *Loader) cleanRow(row []string, idx map[string]int, line int) (domain.Transaction, error) {
	get := func(field string) (string, error) {
		i := idx[field]
		if i >= len(row) {
			return "", &MalformedRecordError{Line: line, Field: field, Cause: fmt.Errorf("column missing")}
		}
		v := strings.TrimSpace(row[i])
		if v == "" {
			return "", &MalformedRecordError{Line: line, Field: field, Cause: fmt.Errorf("value missing")}
		}
		return v, nil
	}

	var tx domain.Transaction
	var err error

	if tx.Market, err = get("market"); err != nil {
		return tx, err
	}
	if tx.Category, err = get("category"); err != nil {
		return tx, err
	}
	if tx.Product, err = get("product"); err != nil {
		return tx, err
	}

	rawPrice, err := get("price")
	if err != nil {
		return tx, err
	}
	tx.UnitPrice, err = normalizePrice(rawPrice)
	if err != nil {
		return tx, &MalformedRecordError{Line: line, Field: "price", Cause: err}
	}

	rawQuantity, err := get("quantity")
	if err != nil {
		return tx, err
	}
	tx.Quantity, err = parseQuantity(rawQuantity)
	if err != nil {
		return tx, &MalformedRecordError{Line: line, Field: "quantity", Cause: err}
	}

	tx.Revenue = tx.UnitPrice * float64(tx.Quantity)
	return tx, nil
}

// normalizePrice strips thousands separators and the " DA" currency suffix
// before parsing, e.g. "1,250 DA" -> 1250.
func normalizePrice(raw string) (float64, error) {
	s := strings.ReplaceAll(raw, ",", "")
	s = strings.ReplaceAll(s, " DA", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("value missing after normalization")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative price %q", raw)
	}
	return v, nil
}

func parseQuantity(raw string) (int64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable quantity %q", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative quantity %q", raw)
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("non-integer quantity %q", raw)
	}
	return int64(v), nil
}
