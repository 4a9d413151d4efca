//-------------------------------------------------------------------------
//
// martgen - Marketing Data Mart Generator
//
// Copyright (c) 2025 - 2026, Sparkline Data
// This software is released under the MIT License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for martgen.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sparkline-data/martgen/internal/config"
	"github.com/sparkline-data/martgen/internal/logging"
	"github.com/sparkline-data/martgen/pkg/version"
)

var (
	// Global flags
	cfgFile   string
	outputDir string
	logLevel  string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "martgen",
		Short: "Synthetic marketing-analytics star schema generator",
		Long: `martgen synthesizes a marketing-analytics star schema: a fact table of
daily advertising performance metrics joined against date, source, and
campaign dimensions, exported as CSV flat files for BI tools such as
Tableau, Power BI, or Looker.

The generated data carries channel-specific statistical distributions and
two scripted anomalies (a volume spike and a cost-efficiency dip) so that
the dataset has realistic, analyzable patterns. The 'enrich' command joins
the exported tables back together and appends derived KPIs (CPM, CTR, CPC,
conversion rate) into a single master file.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./martgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "",
		"directory the star schema CSV files are written to")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(tablesCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the star schema tables",
	Long: `List the tables martgen generates, with their grain and the file
each one is exported to.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Star schema tables:")
		cmd.Println()
		cmd.Println("Dimensions:")
		cmd.Println("  dim_date.csv      - one row per calendar day (456 days by default)")
		cmd.Println("  dim_source.csv    - 8 advertising platforms mapped to 4 channels")
		cmd.Println("  dim_campaign.csv  - 8 campaigns x 2 ad-set tiers, scoped to a channel")
		cmd.Println()
		cmd.Println("Facts:")
		cmd.Println("  fact_performance.csv - one row per (campaign, source, day):")
		cmd.Println("                         impressions, clicks, spend, conversions,")
		cmd.Println("                         video views")
		cmd.Println()
		cmd.Println("Derived (enrich command):")
		cmd.Println("  marketing_analytics_master.csv - fact rows joined to all dimensions")
		cmd.Println("                                   with CPM, CTR, CPC, Conversion_Rate")
	},
}
