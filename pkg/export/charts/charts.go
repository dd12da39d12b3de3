package charts

import (
	"fmt"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
)

// Class palette mirrors the usual ABC convention: A green, B amber, C red.
var classColors = map[domain.Class]drawing.Color{
	domain.ClassA: drawing.ColorFromHex("2e7d32"),
	domain.ClassB: drawing.ColorFromHex("f9a825"),
	domain.ClassC: drawing.ColorFromHex("c62828"),
}

var mixColor = drawing.ColorFromHex("4f46e5")

// Renderer writes PNG chart artifacts into an output directory.
type Renderer struct {
	outputDir string
}

func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir}
}

// ABCCountPerClass renders the number of categories per class.
func (r *Renderer) ABCCountPerClass(entries []domain.ClassEntry) (string, error) {
	counts := make(map[domain.Class]int)
	for _, e := range entries {
		counts[e.Class]++
	}

	bars := make([]chart.Value, 0, 3)
	for _, class := range []domain.Class{domain.ClassA, domain.ClassB, domain.ClassC} {
		bars = append(bars, chart.Value{
			Label: string(class),
			Value: float64(counts[class]),
			Style: barStyle(classColors[class]),
		})
	}

	return r.render("abc_count_per_group.png", "Count of Categories per Class", bars)
}

// ABCImpactPerClass renders the summed impact (revenue) per class.
func (r *Renderer) ABCImpactPerClass(entries []domain.ClassEntry) (string, error) {
	totals := make(map[domain.Class]float64)
	for _, e := range entries {
		totals[e.Class] += e.TotalImpact
	}

	bars := make([]chart.Value, 0, 3)
	for _, class := range []domain.Class{domain.ClassA, domain.ClassB, domain.ClassC} {
		bars = append(bars, chart.Value{
			Label: string(class),
			Value: totals[class],
			Style: barStyle(classColors[class]),
		})
	}

	return r.render("abc_total_revenue_per_group.png", "Total Revenue per Class (DA)", bars)
}

// MixCombinationCounts renders the category count per product mix label.
func (r *Renderer) MixCombinationCounts(counts []domain.CombinationCount) (string, error) {
	bars := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, chart.Value{
			Label: c.Mix,
			Value: float64(c.Count),
			Style: barStyle(mixColor),
		})
	}

	return r.render("product_mix_counts.png", "Product Mix Combination Counts", bars)
}

func (r *Renderer) render(filename, title string, bars []chart.Value) (string, error) {
	if len(bars) == 0 {
		return "", fmt.Errorf("no data to chart for %s", filename)
	}

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	graph := chart.BarChart{
		Title:  title,
		Width:  800,
		Height: 512,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		BarWidth: 60,
		Bars:     bars,
	}

	path := filepath.Join(r.outputDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", filename, err)
	}
	return path, nil
}

func barStyle(color drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   color,
		StrokeColor: color,
		StrokeWidth: 0,
	}
}
