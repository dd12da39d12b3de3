package productmix

import (
	"fmt"
	"sort"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/services/abc"
)

// Analyze performs the multi-criterion product mix analysis: each category is
// classified once by total sales quantity and once by total revenue, and the
// two classes are combined into a mix label such as "A_B". Entries come back
// in sales-rank order.
func Analyze(aggregates []domain.CategoryAggregate, t domain.Thresholds) ([]domain.MixEntry, error) {
	bySales, err := abc.Classify(aggregates, t, abc.MeasureSales)
	if err != nil {
		return nil, fmt.Errorf("failed to classify by sales: %w", err)
	}
	byRevenue, err := abc.Classify(aggregates, t, abc.MeasureRevenue)
	if err != nil {
		return nil, fmt.Errorf("failed to classify by revenue: %w", err)
	}

	revenueClass := make(map[string]domain.Class, len(byRevenue))
	for _, e := range byRevenue {
		revenueClass[e.Category] = e.Class
	}

	entries := make([]domain.MixEntry, 0, len(bySales))
	for _, e := range bySales {
		rc := revenueClass[e.Category]
		entries = append(entries, domain.MixEntry{
			Category:     e.Category,
			SalesClass:   e.Class,
			RevenueClass: rc,
			Mix:          fmt.Sprintf("%s_%s", e.Class, rc),
		})
	}
	return entries, nil
}

// TopCombinations counts categories per mix label and returns the n largest
// combinations, ranked descending. Ties keep first-seen order. n <= 0 returns
// all combinations.
func TopCombinations(entries []domain.MixEntry, n int) []domain.CombinationCount {
	counts := make(map[string]int, len(entries))
	var order []string
	for _, e := range entries {
		if _, ok := counts[e.Mix]; !ok {
			order = append(order, e.Mix)
		}
		counts[e.Mix]++
	}

	out := make([]domain.CombinationCount, 0, len(order))
	for _, mix := range order {
		out = append(out, domain.CombinationCount{Mix: mix, Count: counts[mix]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
