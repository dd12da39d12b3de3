package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/export/charts"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/export/csvout"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/export/excel"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/runtime/terminal/export"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/services/analysis"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/services/loader"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/store/duckdb"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/store/duckdb/sales"
)

type AnalyzeCmd struct {
	input      string
	configPath string
	outputDir  string
	aCutoff    float64
	bCutoff    float64
	topN       int
	xlsx       bool
	noCharts   bool
	reporter   *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full price analysis over a CSV file",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.input, "input", "", "Path to the input CSV file")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to a config file")
	cmd.Flags().StringVar(&ac.outputDir, "out", "", "Output directory for artifacts")
	cmd.Flags().Float64Var(&ac.aCutoff, "a-cutoff", 0.80, "Cumulative share cutoff for class A")
	cmd.Flags().Float64Var(&ac.bCutoff, "b-cutoff", 0.95, "Cumulative share cutoff for class B")
	cmd.Flags().IntVar(&ac.topN, "top", 10, "Number of product mix combinations to report")
	cmd.Flags().BoolVar(&ac.xlsx, "xlsx", false, "Also export an xlsx workbook")
	cmd.Flags().BoolVar(&ac.noCharts, "no-charts", false, "Skip rendering chart artifacts")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := ac.resolveConfig(cmd, &logger)
	if err != nil {
		return err
	}

	ldr := loader.New(cfg.Columns)
	cleaned, err := ldr.Load(ctx, ac.input)
	if err != nil {
		return err
	}
	if len(cleaned.Transactions) == 0 {
		return fmt.Errorf("no data left after cleaning %s", ac.input)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	if err != nil {
		return fmt.Errorf("failed to open analysis database: %w", err)
	}
	defer db.Close()

	salesStore, err := sales.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create sales store: %w", err)
	}

	ctrl, err := analysis.NewController(cfg.Thresholds(), cfg.TopN, salesStore)
	if err != nil {
		return err
	}

	result, err := ctrl.Run(ctx, cleaned.Transactions)
	if err != nil {
		return err
	}

	if err := ac.reporter.Handle(ctrl.BuildReport(ac.input, result)); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return ac.writeArtifacts(ctx, cfg, cleaned, result)
}

// resolveConfig loads the config file (or defaults) and applies flag
// overrides on top.
func (ac *AnalyzeCmd) resolveConfig(cmd *cobra.Command, logger *zerolog.Logger) (*analysis.Config, error) {
	cfg, err := analysis.LoadConfig(ac.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("a-cutoff") {
		cfg.ACutoff = ac.aCutoff
	}
	if flags.Changed("b-cutoff") {
		cfg.BCutoff = ac.bCutoff
	}
	if flags.Changed("a-cutoff") || flags.Changed("b-cutoff") {
		logger.Info().
			Float64("a_cutoff", cfg.ACutoff).
			Float64("b_cutoff", cfg.BCutoff).
			Msg("default cutoffs overridden")
	}
	if flags.Changed("top") {
		cfg.TopN = ac.topN
	}
	if flags.Changed("out") {
		cfg.OutputDir = ac.outputDir
	}
	if flags.Changed("xlsx") {
		cfg.ExportXLSX = ac.xlsx
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (ac *AnalyzeCmd) writeArtifacts(
	ctx context.Context,
	cfg *analysis.Config,
	cleaned *loader.CleanResult,
	result *analysis.Result,
) error {
	logger := zerolog.Ctx(ctx)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	if !ac.noCharts {
		renderer := charts.NewRenderer(cfg.OutputDir)
		renders := []func() (string, error){
			func() (string, error) { return renderer.ABCCountPerClass(result.Classification) },
			func() (string, error) { return renderer.ABCImpactPerClass(result.Classification) },
			func() (string, error) { return renderer.MixCombinationCounts(result.Combinations) },
		}
		for _, render := range renders {
			path, err := render()
			if err != nil {
				return err
			}
			logger.Info().Str("path", path).Msg("chart written")
		}
	}

	if cfg.ExportCSV {
		if err := csvout.WriteCleaned(filepath.Join(cfg.OutputDir, "retail_clean.csv"), cleaned.Transactions); err != nil {
			return err
		}
		if err := csvout.WriteAggregates(filepath.Join(cfg.OutputDir, "for_abc.csv"), result.Aggregates); err != nil {
			return err
		}
	}

	if cfg.ExportXLSX {
		if err := excel.Write(filepath.Join(cfg.OutputDir, "analysis.xlsx"), excel.WorkbookData{
			Transactions:   cleaned.Transactions,
			Classification: result.Classification,
			Mix:            result.Mix,
			Markets:        result.Markets,
		}); err != nil {
			return err
		}
	}

	return nil
}
