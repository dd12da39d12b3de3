package sales

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/store"
)

// Error paths are exercised against sqlmock so failures can be injected
// without a real database.
func TestSalesStore_QueryErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("error - summary query fails", func(t *testing.T) {
		mock.ExpectQuery("SELECT market, category").
			WillReturnError(fmt.Errorf("connection closed"))

		_, err := s.SummarizeByMarketCategory(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "market/category summary")
	})

	t.Run("error - insert fails", func(t *testing.T) {
		mock.ExpectPrepare("INSERT INTO sales_records").
			ExpectExec().
			WillReturnError(fmt.Errorf("table dropped"))

		err := s.Add(ctx, []store.SalesRecord{
			{Market: "Algiers", Category: "Vegetables", Product: "Tomato"},
		})
		require.Error(t, err)
	})

	t.Run("error - categories scan fails", func(t *testing.T) {
		mock.ExpectQuery("SELECT DISTINCT category").
			WillReturnRows(sqlmock.NewRows([]string{"category", "extra"}).AddRow("Fruits", 1))

		_, err := s.Categories(ctx)
		require.Error(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
