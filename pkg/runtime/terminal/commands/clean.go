package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/export/csvout"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/services/analysis"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/services/loader"
)

type CleanCmd struct {
	input      string
	configPath string
	outputDir  string
	output     io.Writer
}

// NewCleanCmd builds the command that only cleans the input and exports the
// cleaned record set.
func NewCleanCmd(output io.Writer) *cobra.Command {
	cc := &CleanCmd{output: output}
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean a CSV file and export the cleaned records",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.input, "input", "", "Path to the input CSV file")
	cmd.Flags().StringVar(&cc.configPath, "config", "", "Path to a config file")
	cmd.Flags().StringVar(&cc.outputDir, "out", "", "Output directory for artifacts")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (cc *CleanCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := analysis.LoadConfig(cc.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = cc.outputDir
	}

	ldr := loader.New(cfg.Columns)
	cleaned, err := ldr.Load(ctx, cc.input)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	path := filepath.Join(cfg.OutputDir, "retail_clean.csv")
	if err := csvout.WriteCleaned(path, cleaned.Transactions); err != nil {
		return err
	}

	stats := cleaned.Stats
	fmt.Fprintf(cc.output, "Cleaned data saved to %s\n", path)
	fmt.Fprintf(cc.output, "Rows read: %d, kept: %d, duplicates: %d, zero quantity: %d, malformed: %d\n",
		stats.RowsRead, stats.RowsKept, stats.DuplicatesRemoved, stats.ZeroQuantity, stats.Malformed)
	return nil
}
