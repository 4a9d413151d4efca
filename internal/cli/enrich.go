package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sparkline-data/martgen/internal/csvio"
	"github.com/sparkline-data/martgen/internal/logging"
	"github.com/sparkline-data/martgen/internal/mart"
)

var (
	enrichInputDir   string
	enrichOutputFile string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Join the exported tables and append derived KPIs",
	Long: `Read the four star schema CSV files, left-join the fact table against
the dimensions, and append the derived KPI columns (CPM, CTR, CPC,
Conversion_Rate) into a single denormalized master CSV.

Zero-impression and zero-click rows yield zero KPIs rather than
undefined values.

Example:
  martgen enrich --input-dir ./docs
  martgen enrich --input-dir ./docs --output-file master.csv`,
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().StringVar(&enrichInputDir, "input-dir", "",
		"directory holding the star schema CSV files (default: output dir)")
	enrichCmd.Flags().StringVar(&enrichOutputFile, "output-file", "",
		"master CSV file name, resolved against the input directory")
}

func runEnrich(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if enrichInputDir != "" {
		cfg.Enrich.InputDir = enrichInputDir
	}
	if enrichOutputFile != "" {
		cfg.Enrich.OutputFile = enrichOutputFile
	}

	if err := cfg.ValidateEnrich(); err != nil {
		return err
	}

	inputDir := cfg.EnrichInputDir()
	ds, err := csvio.ReadDataset(inputDir)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	// Shape check before joining.
	logging.Info().
		Str("fact_performance", shape(len(ds.Facts), len(csvio.FactHeader))).
		Str("dim_campaign", shape(len(ds.Campaigns), len(csvio.CampaignHeader))).
		Str("dim_source", shape(len(ds.Sources), len(csvio.SourceHeader))).
		Str("dim_date", shape(len(ds.Dates), len(csvio.DateHeader))).
		Msg("Loaded star schema tables")

	rows, err := mart.Enrich(ds)
	if err != nil {
		return fmt.Errorf("enriching dataset: %w", err)
	}

	outPath := cfg.EnrichOutputPath()
	if err := csvio.WriteMaster(outPath, rows); err != nil {
		return fmt.Errorf("exporting master table: %w", err)
	}

	absPath, err := filepath.Abs(outPath)
	if err != nil {
		absPath = outPath
	}

	logging.Info().
		Int("rows", len(rows)).
		Int("columns", len(csvio.MasterHeader)).
		Str("path", absPath).
		Msg("Export complete")

	return nil
}

func shape(rows, cols int) string {
	return fmt.Sprintf("(%d, %d)", rows, cols)
}
