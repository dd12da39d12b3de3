package abc

import (
	"fmt"
	"sort"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
)

// Measure selects which aggregate column drives the ranking.
type Measure string

const (
	MeasureRevenue Measure = "revenue"
	MeasureSales   Measure = "sales"
)

// InvalidInputError reports classification input that cannot be ranked.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid classification input: %s", e.Reason)
}

// Classify ranks category aggregates by the chosen impact measure and assigns
// each one a Pareto class. The result is ordered by impact share descending,
// ties broken by category name ascending. Cumulative shares are
// non-decreasing and reach 1.0 on the last entry.
//
// A cumulative share landing exactly on a cutoff keeps the stricter class:
// with the default cutoffs, a category whose cumulative share is exactly 0.80
// is still classed A.
func Classify(aggregates []domain.CategoryAggregate, t domain.Thresholds, m Measure) ([]domain.ClassEntry, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	impact, err := impactFunc(m)
	if err != nil {
		return nil, err
	}

	if len(aggregates) == 0 {
		return nil, &InvalidInputError{Reason: "no aggregates to classify"}
	}

	total := 0.0
	for _, a := range aggregates {
		v := impact(a)
		if v < 0 {
			return nil, &InvalidInputError{
				Reason: fmt.Sprintf("negative %s impact for category %q", m, a.Category),
			}
		}
		total += v
	}
	if total == 0 {
		return nil, &InvalidInputError{Reason: "total impact is zero"}
	}

	ranked := make([]domain.CategoryAggregate, len(aggregates))
	copy(ranked, aggregates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if impact(ranked[i]) != impact(ranked[j]) {
			return impact(ranked[i]) > impact(ranked[j])
		}
		return ranked[i].Category < ranked[j].Category
	})

	entries := make([]domain.ClassEntry, 0, len(ranked))
	cumulative := 0.0
	for _, a := range ranked {
		share := impact(a) / total
		cumulative += share
		entries = append(entries, domain.ClassEntry{
			Category:        a.Category,
			TotalImpact:     impact(a),
			ImpactShare:     share,
			CumulativeShare: cumulative,
			Class:           t.ClassFor(cumulative),
		})
	}
	return entries, nil
}

func impactFunc(m Measure) (func(domain.CategoryAggregate) float64, error) {
	switch m {
	case MeasureRevenue:
		return func(a domain.CategoryAggregate) float64 { return a.TotalRevenue }, nil
	case MeasureSales:
		return func(a domain.CategoryAggregate) float64 { return a.TotalSales }, nil
	default:
		return nil, fmt.Errorf("unsupported measure: %q", m)
	}
}
