package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
)

func TestAggregateByCategory(t *testing.T) {
	records := []domain.Transaction{
		{Market: "Algiers", Category: "Vegetables", Product: "Tomato", UnitPrice: 120, Quantity: 10, Revenue: 1200},
		{Market: "Oran", Category: "Vegetables", Product: "Potato", UnitPrice: 80, Quantity: 5, Revenue: 400},
		{Market: "Algiers", Category: "Fruits", Product: "Orange", UnitPrice: 200, Quantity: 3, Revenue: 600},
	}

	aggs := AggregateByCategory(records)
	require.Len(t, aggs, 2)

	// Sorted by category name.
	assert.Equal(t, "Fruits", aggs[0].Category)
	assert.InDelta(t, 3, aggs[0].TotalSales, 1e-9)
	assert.InDelta(t, 600, aggs[0].TotalRevenue, 1e-9)

	assert.Equal(t, "Vegetables", aggs[1].Category)
	assert.InDelta(t, 15, aggs[1].TotalSales, 1e-9)
	assert.InDelta(t, 1600, aggs[1].TotalRevenue, 1e-9)
}

func TestAggregateByCategory_Empty(t *testing.T) {
	assert.Empty(t, AggregateByCategory(nil))
}
