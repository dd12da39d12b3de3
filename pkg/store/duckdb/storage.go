package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const SalesTableSchema = `
	CREATE TABLE IF NOT EXISTS sales_records (
		market VARCHAR NOT NULL,
		category VARCHAR NOT NULL,
		product VARCHAR NOT NULL,
		unit_price DOUBLE NOT NULL,
		quantity BIGINT NOT NULL,
		revenue DOUBLE NOT NULL
	);
`

var bootQueries = []string{
	SalesTableSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens a DuckDB database and applies the boot schema. An empty path
// defaults to an in-memory database, which is the normal mode: the store is
// an aggregation engine for a single run, not persistent state.
func NewDB(settings Settings) (*sql.DB, error) {
	path := settings.DbPath
	if path == "" {
		path = ":memory:"
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", path), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
