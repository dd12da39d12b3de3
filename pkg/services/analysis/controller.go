package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/adapters"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/services/abc"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/services/productmix"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/store/duckdb/sales"
)

// Controller runs the full analysis over a cleaned record set: category
// aggregation, ABC classification by revenue, product mix, and the
// market/category summary through the sales store.
type Controller struct {
	thresholds domain.Thresholds
	topN       int
	sales      sales.Store
}

func NewController(thresholds domain.Thresholds, topN int, salesStore sales.Store) (*Controller, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	if topN < 0 {
		return nil, fmt.Errorf("topN cannot be negative")
	}
	if salesStore == nil {
		return nil, fmt.Errorf("sales store is required")
	}
	return &Controller{thresholds: thresholds, topN: topN, sales: salesStore}, nil
}

// Result holds everything one analysis run produces.
type Result struct {
	Aggregates     []domain.CategoryAggregate
	Classification []domain.ClassEntry
	Mix            []domain.MixEntry
	Combinations   []domain.CombinationCount
	Markets        []domain.MarketCategorySummary
}

func (c *Controller) Run(ctx context.Context, records []domain.Transaction) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	aggregates := AggregateByCategory(records)

	classification, err := abc.Classify(aggregates, c.thresholds, abc.MeasureRevenue)
	if err != nil {
		return nil, fmt.Errorf("abc classification failed: %w", err)
	}

	mix, err := productmix.Analyze(aggregates, c.thresholds)
	if err != nil {
		return nil, fmt.Errorf("product mix analysis failed: %w", err)
	}
	combinations := productmix.TopCombinations(mix, c.topN)

	if err := c.sales.Add(ctx, adapters.MapDomainTransactionsToSalesRecords(records)); err != nil {
		return nil, fmt.Errorf("failed to load records into sales store: %w", err)
	}
	rows, err := c.sales.SummarizeByMarketCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize by market and category: %w", err)
	}

	logger.Info().
		Int("categories", len(aggregates)).
		Int("combinations", len(combinations)).
		Int("summary_rows", len(rows)).
		Msg("analysis complete")

	return &Result{
		Aggregates:     aggregates,
		Classification: classification,
		Mix:            mix,
		Combinations:   combinations,
		Markets:        adapters.MapSalesRowsToDomainSummaries(rows),
	}, nil
}

// GenerateReport runs the analysis and renders it into the report model.
func (c *Controller) GenerateReport(ctx context.Context, source string, records []domain.Transaction) (*domain.Report, error) {
	res, err := c.Run(ctx, records)
	if err != nil {
		return nil, err
	}
	return c.BuildReport(source, res), nil
}

func (c *Controller) BuildReport(source string, res *Result) *domain.Report {
	totalRevenue := 0.0
	for _, a := range res.Aggregates {
		totalRevenue += a.TotalRevenue
	}

	report := &domain.Report{
		Title:        "Food Market Price Analysis",
		Source:       source,
		GeneratedAt:  time.Now(),
		TotalRevenue: totalRevenue,
		Currency:     "DA",
	}

	report.Sections = append(report.Sections,
		c.classificationSection(res.Classification),
		c.mixSection(res.Mix, res.Combinations),
		marketSection(res.Markets),
	)
	return report
}

func (c *Controller) classificationSection(entries []domain.ClassEntry) domain.ReportSection {
	classCounts := make(map[domain.Class]int)
	for _, e := range entries {
		classCounts[e.Class]++
	}

	section := domain.ReportSection{
		Title: "ABC Classification",
		Summary: map[string]interface{}{
			"Categories": len(entries),
			"Class A":    classCounts[domain.ClassA],
			"Class B":    classCounts[domain.ClassB],
			"Class C":    classCounts[domain.ClassC],
			"Cutoffs":    fmt.Sprintf("A <= %.2f, B <= %.2f", c.thresholds.ACutoff, c.thresholds.BCutoff),
		},
	}
	for _, e := range entries {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  e.Category,
			Value: fmt.Sprintf("%.2f", e.TotalImpact),
			Unit:  "DA",
			Description: fmt.Sprintf("share %.1f%%, cumulative %.1f%%, class %s",
				e.ImpactShare*100, e.CumulativeShare*100, e.Class),
		})
	}
	return section
}

func (c *Controller) mixSection(entries []domain.MixEntry, combinations []domain.CombinationCount) domain.ReportSection {
	section := domain.ReportSection{
		Title: "Product Mix",
		Summary: map[string]interface{}{
			"Combinations": len(combinations),
		},
	}
	for _, combo := range combinations {
		section.Summary[fmt.Sprintf("Mix %s", combo.Mix)] = combo.Count
	}
	for _, e := range entries {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  e.Category,
			Value: e.Mix,
			Description: fmt.Sprintf("sales class %s, revenue class %s",
				e.SalesClass, e.RevenueClass),
		})
	}
	return section
}

// BuildMarketReport renders just the market/category summary, for runs that
// skip classification.
func BuildMarketReport(source string, summaries []domain.MarketCategorySummary) *domain.Report {
	totalRevenue := 0.0
	for _, s := range summaries {
		totalRevenue += s.TotalRevenue
	}
	return &domain.Report{
		Title:        "Market and Category Summary",
		Source:       source,
		GeneratedAt:  time.Now(),
		TotalRevenue: totalRevenue,
		Currency:     "DA",
		Sections:     []domain.ReportSection{marketSection(summaries)},
	}
}

func marketSection(summaries []domain.MarketCategorySummary) domain.ReportSection {
	markets := make(map[string]struct{})
	for _, s := range summaries {
		markets[s.Market] = struct{}{}
	}

	section := domain.ReportSection{
		Title: "Market and Category Summary",
		Summary: map[string]interface{}{
			"Markets": len(markets),
			"Rows":    len(summaries),
		},
	}
	for _, s := range summaries {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("%s / %s", s.Market, s.Category),
			Value:       fmt.Sprintf("%.2f", s.TotalRevenue),
			Unit:        "DA",
			Description: fmt.Sprintf("total sales %.0f", s.TotalSales),
		})
	}
	return section
}
