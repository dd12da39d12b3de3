package domain

import "fmt"

// Class is a Pareto tier assigned by the ABC classification.
type Class string

const (
	ClassA Class = "A"
	ClassB Class = "B"
	ClassC Class = "C"
)

// CategoryAggregate holds per-category totals derived from cleaned records.
// One aggregate exists per distinct category within a single run.
type CategoryAggregate struct {
	Category     string
	TotalSales   float64 // summed quantity
	TotalRevenue float64 // summed unit price * quantity
}

// Thresholds are the cumulative-share cutoffs between ABC classes.
type Thresholds struct {
	ACutoff float64
	BCutoff float64
}

// DefaultThresholds returns the standard Pareto cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{ACutoff: 0.80, BCutoff: 0.95}
}

func (t Thresholds) Validate() error {
	if t.ACutoff <= 0 || t.ACutoff >= t.BCutoff || t.BCutoff > 1 {
		return fmt.Errorf("invalid thresholds: require 0 < A (%.3f) < B (%.3f) <= 1", t.ACutoff, t.BCutoff)
	}
	return nil
}

// ClassFor maps a cumulative share to its class. A cumulative share landing
// exactly on a cutoff stays in the band below it.
func (t Thresholds) ClassFor(cumulative float64) Class {
	switch {
	case cumulative <= t.ACutoff:
		return ClassA
	case cumulative <= t.BCutoff:
		return ClassB
	default:
		return ClassC
	}
}

// ClassEntry is one row of a classification result, ordered by impact share
// descending.
type ClassEntry struct {
	Category        string
	TotalImpact     float64
	ImpactShare     float64
	CumulativeShare float64
	Class           Class
}

// MixEntry is the multi-criterion (sales x revenue) class combination for a
// single category.
type MixEntry struct {
	Category     string
	SalesClass   Class
	RevenueClass Class
	Mix          string // e.g. "A_B"
}

// CombinationCount is the number of categories sharing a mix label.
type CombinationCount struct {
	Mix   string
	Count int
}

// MarketCategorySummary holds totals for one market/category pair.
type MarketCategorySummary struct {
	Market       string
	Category     string
	TotalSales   float64
	TotalRevenue float64
}
