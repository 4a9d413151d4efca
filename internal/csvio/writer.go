//-------------------------------------------------------------------------
//
// martgen - Marketing Data Mart Generator
//
// Copyright (c) 2025 - 2026, Sparkline Data
// This software is released under the MIT License
//
//-------------------------------------------------------------------------

// Package csvio exports and imports the star schema tables as CSV flat
// files, the interchange format the downstream BI tools consume.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sparkline-data/martgen/internal/mart"
)

// File names of the exported tables.
const (
	DateFile     = "dim_date.csv"
	SourceFile   = "dim_source.csv"
	CampaignFile = "dim_campaign.csv"
	FactFile     = "fact_performance.csv"
)

// Column headers of the exported tables. The fact table carries only
// keys and metrics; the campaign dimension is exported without its
// internal channel-scope helper.
var (
	DateHeader     = []string{"date", "date_key", "year", "month", "month_name", "quarter", "is_weekend"}
	SourceHeader   = []string{"source_id", "source_name", "channel"}
	CampaignHeader = []string{"campaign_id", "campaign_name", "ad_set_name", "objective"}
	FactHeader     = []string{"date_key", "source_id", "campaign_id", "impressions", "clicks", "spend", "conversions", "video_views"}

	MasterHeader = []string{
		"date_key", "source_id", "campaign_id",
		"impressions", "clicks", "spend", "conversions", "video_views",
		"campaign_name", "ad_set_name", "objective",
		"source_name", "channel",
		"date", "year", "month", "month_name", "quarter", "is_weekend",
		"CPM", "CTR", "CPC", "Conversion_Rate",
	}
)

const dateLayout = "2006-01-02"

// WriteDataset writes the four star schema tables beneath dir, creating
// the directory if it does not exist.
func WriteDataset(dir string, ds *mart.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	err := writeTable(filepath.Join(dir, DateFile), DateHeader, len(ds.Dates), func(i int) []string {
		d := ds.Dates[i]
		return []string{
			d.Date.Format(dateLayout),
			strconv.Itoa(d.DateKey),
			strconv.Itoa(d.Year),
			strconv.Itoa(d.Month),
			d.MonthName,
			strconv.Itoa(d.Quarter),
			strconv.FormatBool(d.IsWeekend),
		}
	})
	if err != nil {
		return err
	}

	err = writeTable(filepath.Join(dir, SourceFile), SourceHeader, len(ds.Sources), func(i int) []string {
		s := ds.Sources[i]
		return []string{
			strconv.Itoa(s.SourceID),
			s.SourceName,
			s.Channel,
		}
	})
	if err != nil {
		return err
	}

	err = writeTable(filepath.Join(dir, CampaignFile), CampaignHeader, len(ds.Campaigns), func(i int) []string {
		c := ds.Campaigns[i]
		return []string{
			strconv.Itoa(c.CampaignID),
			c.CampaignName,
			c.AdSetName,
			c.Objective,
		}
	})
	if err != nil {
		return err
	}

	return writeTable(filepath.Join(dir, FactFile), FactHeader, len(ds.Facts), func(i int) []string {
		f := ds.Facts[i]
		return []string{
			strconv.Itoa(f.DateKey),
			strconv.Itoa(f.SourceID),
			strconv.Itoa(f.CampaignID),
			strconv.Itoa(f.Impressions),
			strconv.Itoa(f.Clicks),
			strconv.FormatFloat(f.Spend, 'f', 2, 64),
			strconv.Itoa(f.Conversions),
			strconv.Itoa(f.VideoViews),
		}
	})
}

// WriteMaster writes the enriched master table to path.
func WriteMaster(path string, rows []mart.MasterRow) error {
	return writeTable(path, MasterHeader, len(rows), func(i int) []string {
		m := rows[i]
		return []string{
			strconv.Itoa(m.DateKey),
			strconv.Itoa(m.SourceID),
			strconv.Itoa(m.CampaignID),
			strconv.Itoa(m.Impressions),
			strconv.Itoa(m.Clicks),
			strconv.FormatFloat(m.Spend, 'f', 2, 64),
			strconv.Itoa(m.Conversions),
			strconv.Itoa(m.VideoViews),
			m.CampaignName,
			m.AdSetName,
			m.Objective,
			m.SourceName,
			m.Channel,
			m.Date.Format(dateLayout),
			strconv.Itoa(m.Year),
			strconv.Itoa(m.Month),
			m.MonthName,
			strconv.Itoa(m.Quarter),
			strconv.FormatBool(m.IsWeekend),
			strconv.FormatFloat(m.CPM, 'f', -1, 64),
			strconv.FormatFloat(m.CTR, 'f', -1, 64),
			strconv.FormatFloat(m.CPC, 'f', -1, 64),
			strconv.FormatFloat(m.ConversionRate, 'f', -1, 64),
		}
	})
}

func writeTable(path string, header []string, n int, record func(i int) []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s header: %w", path, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(record(i)); err != nil {
			return fmt.Errorf("writing %s row %d: %w", path, i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
