package productmix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
)

func TestAnalyze(t *testing.T) {
	// High sales but low revenue for vegetables, the inverse for meat: the
	// mix labels must disagree between the two criteria.
	aggs := []domain.CategoryAggregate{
		{Category: "vegetables", TotalSales: 800, TotalRevenue: 50},
		{Category: "meat", TotalSales: 50, TotalRevenue: 800},
		{Category: "grains", TotalSales: 100, TotalRevenue: 100},
		{Category: "spices", TotalSales: 50, TotalRevenue: 50},
	}

	entries, err := Analyze(aggs, domain.DefaultThresholds())
	require.NoError(t, err)
	require.Len(t, entries, 4)

	byCategory := make(map[string]domain.MixEntry)
	for _, e := range entries {
		byCategory[e.Category] = e
	}

	veg := byCategory["vegetables"]
	assert.Equal(t, domain.ClassA, veg.SalesClass)
	assert.NotEqual(t, domain.ClassA, veg.RevenueClass)
	assert.Equal(t, string(veg.SalesClass)+"_"+string(veg.RevenueClass), veg.Mix)

	meat := byCategory["meat"]
	assert.Equal(t, domain.ClassA, meat.RevenueClass)

	// Entries follow the sales ranking.
	assert.Equal(t, "vegetables", entries[0].Category)
}

func TestAnalyze_Errors(t *testing.T) {
	t.Run("error - empty input", func(t *testing.T) {
		_, err := Analyze(nil, domain.DefaultThresholds())
		require.Error(t, err)
	})

	t.Run("error - zero revenue total", func(t *testing.T) {
		aggs := []domain.CategoryAggregate{{Category: "fruits", TotalSales: 10}}
		_, err := Analyze(aggs, domain.DefaultThresholds())
		require.Error(t, err)
	})
}

func TestTopCombinations(t *testing.T) {
	entries := []domain.MixEntry{
		{Category: "a", Mix: "A_A"},
		{Category: "b", Mix: "B_B"},
		{Category: "c", Mix: "A_A"},
		{Category: "d", Mix: "C_C"},
		{Category: "e", Mix: "B_B"},
		{Category: "f", Mix: "A_A"},
	}

	t.Run("ranked descending by count", func(t *testing.T) {
		got := TopCombinations(entries, 0)
		require.Len(t, got, 3)
		assert.Equal(t, domain.CombinationCount{Mix: "A_A", Count: 3}, got[0])
		assert.Equal(t, domain.CombinationCount{Mix: "B_B", Count: 2}, got[1])
		assert.Equal(t, domain.CombinationCount{Mix: "C_C", Count: 1}, got[2])
	})

	t.Run("n limits the result", func(t *testing.T) {
		got := TopCombinations(entries, 2)
		require.Len(t, got, 2)
		assert.Equal(t, "A_A", got[0].Mix)
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		tied := []domain.MixEntry{
			{Category: "a", Mix: "B_A"},
			{Category: "b", Mix: "A_B"},
			{Category: "c", Mix: "B_A"},
			{Category: "d", Mix: "A_B"},
		}
		got := TopCombinations(tied, 0)
		require.Len(t, got, 2)
		assert.Equal(t, "B_A", got[0].Mix)
		assert.Equal(t, "A_B", got[1].Mix)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, TopCombinations(nil, 5))
	})
}
