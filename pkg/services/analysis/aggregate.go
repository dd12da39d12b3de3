package analysis

import (
	"sort"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
)

// AggregateByCategory sums quantity and revenue per distinct category.
// Aggregates come back sorted by category name for deterministic output.
func AggregateByCategory(records []domain.Transaction) []domain.CategoryAggregate {
	byCategory := make(map[string]*domain.CategoryAggregate)
	for _, r := range records {
		agg, ok := byCategory[r.Category]
		if !ok {
			agg = &domain.CategoryAggregate{Category: r.Category}
			byCategory[r.Category] = agg
		}
		agg.TotalSales += float64(r.Quantity)
		agg.TotalRevenue += r.Revenue
	}

	out := make([]domain.CategoryAggregate, 0, len(byCategory))
	for _, agg := range byCategory {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}
