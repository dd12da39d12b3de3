package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/adapters"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/runtime/terminal/export"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/services/analysis"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/services/loader"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/store/duckdb"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/store/duckdb/sales"
)

type SummaryCmd struct {
	input      string
	configPath string
	reporter   *export.Reporter
}

// NewSummaryCmd builds the command that prints only the market/category
// summary.
func NewSummaryCmd(reporter *export.Reporter) *cobra.Command {
	sc := &SummaryCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the market and category summary for a CSV file",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.input, "input", "", "Path to the input CSV file")
	cmd.Flags().StringVar(&sc.configPath, "config", "", "Path to a config file")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := analysis.LoadConfig(sc.configPath)
	if err != nil {
		return err
	}

	ldr := loader.New(cfg.Columns)
	cleaned, err := ldr.Load(ctx, sc.input)
	if err != nil {
		return err
	}
	if len(cleaned.Transactions) == 0 {
		return fmt.Errorf("no data left after cleaning %s", sc.input)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	if err != nil {
		return fmt.Errorf("failed to open analysis database: %w", err)
	}
	defer db.Close()

	store, err := sales.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create sales store: %w", err)
	}

	if err := store.Add(ctx, adapters.MapDomainTransactionsToSalesRecords(cleaned.Transactions)); err != nil {
		return fmt.Errorf("failed to load records into sales store: %w", err)
	}
	rows, err := store.SummarizeByMarketCategory(ctx)
	if err != nil {
		return fmt.Errorf("failed to summarize by market and category: %w", err)
	}

	report := analysis.BuildMarketReport(sc.input, adapters.MapSalesRowsToDomainSummaries(rows))
	return sc.reporter.Handle(report)
}
