package abc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
)

func aggregates(impacts map[string]float64) []domain.CategoryAggregate {
	aggs := make([]domain.CategoryAggregate, 0, len(impacts))
	for category, revenue := range impacts {
		aggs = append(aggs, domain.CategoryAggregate{
			Category:     category,
			TotalRevenue: revenue,
			TotalSales:   revenue / 10,
		})
	}
	return aggs
}

func TestClassify_BoundaryScenario(t *testing.T) {
	// Impacts [50, 30, 20] with cutoffs 0.8/0.95 must produce cumulative
	// shares [0.5, 0.8, 1.0] and classes [A, A, C]: a cumulative share
	// landing exactly on the A cutoff stays in A.
	aggs := aggregates(map[string]float64{
		"vegetables": 50,
		"fruits":     30,
		"grains":     20,
	})

	entries, err := Classify(aggs, domain.DefaultThresholds(), MeasureRevenue)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "vegetables", entries[0].Category)
	assert.Equal(t, "fruits", entries[1].Category)
	assert.Equal(t, "grains", entries[2].Category)

	assert.InDelta(t, 0.5, entries[0].ImpactShare, 1e-9)
	assert.InDelta(t, 0.3, entries[1].ImpactShare, 1e-9)
	assert.InDelta(t, 0.2, entries[2].ImpactShare, 1e-9)

	assert.InDelta(t, 0.5, entries[0].CumulativeShare, 1e-9)
	assert.InDelta(t, 0.8, entries[1].CumulativeShare, 1e-9)
	assert.InDelta(t, 1.0, entries[2].CumulativeShare, 1e-9)

	assert.Equal(t, domain.ClassA, entries[0].Class)
	assert.Equal(t, domain.ClassA, entries[1].Class)
	assert.Equal(t, domain.ClassC, entries[2].Class)
}

func TestClassify_Properties(t *testing.T) {
	aggs := aggregates(map[string]float64{
		"vegetables": 412.5,
		"fruits":     231,
		"grains":     180.25,
		"dairy":      95,
		"meat":       540,
		"spices":     12.75,
		"oils":       33,
	})

	entries, err := Classify(aggs, domain.DefaultThresholds(), MeasureRevenue)
	require.NoError(t, err)
	require.Len(t, entries, len(aggs))

	t.Run("cumulative share is non-decreasing and ends at 1.0", func(t *testing.T) {
		prev := 0.0
		for _, e := range entries {
			assert.GreaterOrEqual(t, e.CumulativeShare, prev)
			prev = e.CumulativeShare
		}
		assert.InDelta(t, 1.0, entries[len(entries)-1].CumulativeShare, 1e-9)
	})

	t.Run("each category appears exactly once", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, e := range entries {
			assert.False(t, seen[e.Category], "category %q appears twice", e.Category)
			seen[e.Category] = true
		}
		assert.Len(t, seen, len(aggs))
	})

	t.Run("entries are ordered by impact share descending", func(t *testing.T) {
		for i := 1; i < len(entries); i++ {
			assert.GreaterOrEqual(t, entries[i-1].ImpactShare, entries[i].ImpactShare)
		}
	})

	t.Run("classify is idempotent", func(t *testing.T) {
		again, err := Classify(aggs, domain.DefaultThresholds(), MeasureRevenue)
		require.NoError(t, err)
		assert.Equal(t, entries, again)
	})
}

func TestClassify_TieBreak(t *testing.T) {
	// Equal impacts rank by category name ascending.
	aggs := []domain.CategoryAggregate{
		{Category: "zucchini", TotalRevenue: 100},
		{Category: "apples", TotalRevenue: 100},
		{Category: "melons", TotalRevenue: 100},
	}

	entries, err := Classify(aggs, domain.DefaultThresholds(), MeasureRevenue)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "apples", entries[0].Category)
	assert.Equal(t, "melons", entries[1].Category)
	assert.Equal(t, "zucchini", entries[2].Category)
}

func TestClassify_SingleCategory(t *testing.T) {
	aggs := []domain.CategoryAggregate{{Category: "vegetables", TotalRevenue: 42}}

	entries, err := Classify(aggs, domain.DefaultThresholds(), MeasureRevenue)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ClassA, entries[0].Class)
	assert.InDelta(t, 1.0, entries[0].CumulativeShare, 1e-9)
}

func TestClassify_SalesMeasure(t *testing.T) {
	aggs := []domain.CategoryAggregate{
		{Category: "fruits", TotalSales: 10, TotalRevenue: 900},
		{Category: "vegetables", TotalSales: 90, TotalRevenue: 100},
	}

	entries, err := Classify(aggs, domain.DefaultThresholds(), MeasureSales)
	require.NoError(t, err)
	require.Equal(t, "vegetables", entries[0].Category)
	assert.InDelta(t, 0.9, entries[0].ImpactShare, 1e-9)
}

func TestClassify_Errors(t *testing.T) {
	t.Run("error - empty input", func(t *testing.T) {
		_, err := Classify(nil, domain.DefaultThresholds(), MeasureRevenue)
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("error - zero total impact", func(t *testing.T) {
		aggs := []domain.CategoryAggregate{
			{Category: "fruits"},
			{Category: "vegetables"},
		}
		_, err := Classify(aggs, domain.DefaultThresholds(), MeasureRevenue)
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("error - negative impact", func(t *testing.T) {
		aggs := []domain.CategoryAggregate{
			{Category: "fruits", TotalRevenue: 50},
			{Category: "vegetables", TotalRevenue: -10},
		}
		_, err := Classify(aggs, domain.DefaultThresholds(), MeasureRevenue)
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Contains(t, invalid.Reason, "vegetables")
	})

	t.Run("error - invalid thresholds", func(t *testing.T) {
		_, err := Classify(
			aggregates(map[string]float64{"fruits": 1}),
			domain.Thresholds{ACutoff: 0.9, BCutoff: 0.5},
			MeasureRevenue,
		)
		require.Error(t, err)
	})

	t.Run("error - unsupported measure", func(t *testing.T) {
		_, err := Classify(
			aggregates(map[string]float64{"fruits": 1}),
			domain.DefaultThresholds(),
			Measure("volume"),
		)
		require.Error(t, err)
	})
}
