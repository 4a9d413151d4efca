package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sparkline-data/martgen/internal/mart"
)

// ReadDataset loads the four star schema tables from dir. Header
// mismatches and malformed values fail the load; the enrichment stage
// has no use for partially parsed tables.
//
// Campaign rows read back from disk have no channel scope: the helper
// column is intentionally absent from the exported file.
func ReadDataset(dir string) (*mart.Dataset, error) {
	ds := &mart.Dataset{}

	records, err := readTable(filepath.Join(dir, DateFile), DateHeader)
	if err != nil {
		return nil, err
	}
	ds.Dates = make([]mart.DateRow, 0, len(records))
	for i, rec := range records {
		row, err := parseDateRow(rec)
		if err != nil {
			return nil, rowError(DateFile, i, err)
		}
		ds.Dates = append(ds.Dates, row)
	}

	records, err = readTable(filepath.Join(dir, SourceFile), SourceHeader)
	if err != nil {
		return nil, err
	}
	ds.Sources = make([]mart.SourceRow, 0, len(records))
	for i, rec := range records {
		row, err := parseSourceRow(rec)
		if err != nil {
			return nil, rowError(SourceFile, i, err)
		}
		ds.Sources = append(ds.Sources, row)
	}

	records, err = readTable(filepath.Join(dir, CampaignFile), CampaignHeader)
	if err != nil {
		return nil, err
	}
	ds.Campaigns = make([]mart.CampaignRow, 0, len(records))
	for i, rec := range records {
		row, err := parseCampaignRow(rec)
		if err != nil {
			return nil, rowError(CampaignFile, i, err)
		}
		ds.Campaigns = append(ds.Campaigns, row)
	}

	records, err = readTable(filepath.Join(dir, FactFile), FactHeader)
	if err != nil {
		return nil, err
	}
	ds.Facts = make([]mart.FactRow, 0, len(records))
	for i, rec := range records {
		row, err := parseFactRow(rec)
		if err != nil {
			return nil, rowError(FactFile, i, err)
		}
		ds.Facts = append(ds.Facts, row)
	}

	return ds, nil
}

// readTable reads a CSV file, checks its header, and returns the data
// records. encoding/csv enforces a uniform field count from the header.
func readTable(path string, wantHeader []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading %s: file is empty", path)
	}

	if err := checkHeader(records[0], wantHeader); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return records[1:], nil
}

func checkHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("expected column %d to be %q, got %q", i+1, want[i], got[i])
		}
	}
	return nil
}

func rowError(file string, i int, err error) error {
	// i is zero-based over data records; +2 accounts for the header and
	// one-based line numbering.
	return fmt.Errorf("%s line %d: %w", file, i+2, err)
}

func parseDateRow(rec []string) (mart.DateRow, error) {
	var row mart.DateRow
	var err error

	if row.Date, err = time.Parse(dateLayout, rec[0]); err != nil {
		return row, fmt.Errorf("date: %w", err)
	}
	if row.DateKey, err = strconv.Atoi(rec[1]); err != nil {
		return row, fmt.Errorf("date_key: %w", err)
	}
	if row.Year, err = strconv.Atoi(rec[2]); err != nil {
		return row, fmt.Errorf("year: %w", err)
	}
	if row.Month, err = strconv.Atoi(rec[3]); err != nil {
		return row, fmt.Errorf("month: %w", err)
	}
	row.MonthName = rec[4]
	if row.Quarter, err = strconv.Atoi(rec[5]); err != nil {
		return row, fmt.Errorf("quarter: %w", err)
	}
	if row.IsWeekend, err = strconv.ParseBool(rec[6]); err != nil {
		return row, fmt.Errorf("is_weekend: %w", err)
	}
	return row, nil
}

func parseSourceRow(rec []string) (mart.SourceRow, error) {
	var row mart.SourceRow
	var err error

	if row.SourceID, err = strconv.Atoi(rec[0]); err != nil {
		return row, fmt.Errorf("source_id: %w", err)
	}
	row.SourceName = rec[1]
	row.Channel = rec[2]
	return row, nil
}

func parseCampaignRow(rec []string) (mart.CampaignRow, error) {
	var row mart.CampaignRow
	var err error

	if row.CampaignID, err = strconv.Atoi(rec[0]); err != nil {
		return row, fmt.Errorf("campaign_id: %w", err)
	}
	row.CampaignName = rec[1]
	row.AdSetName = rec[2]
	row.Objective = rec[3]
	return row, nil
}

func parseFactRow(rec []string) (mart.FactRow, error) {
	var row mart.FactRow
	var err error

	if row.DateKey, err = strconv.Atoi(rec[0]); err != nil {
		return row, fmt.Errorf("date_key: %w", err)
	}
	if row.SourceID, err = strconv.Atoi(rec[1]); err != nil {
		return row, fmt.Errorf("source_id: %w", err)
	}
	if row.CampaignID, err = strconv.Atoi(rec[2]); err != nil {
		return row, fmt.Errorf("campaign_id: %w", err)
	}
	if row.Impressions, err = strconv.Atoi(rec[3]); err != nil {
		return row, fmt.Errorf("impressions: %w", err)
	}
	if row.Clicks, err = strconv.Atoi(rec[4]); err != nil {
		return row, fmt.Errorf("clicks: %w", err)
	}
	if row.Spend, err = strconv.ParseFloat(rec[5], 64); err != nil {
		return row, fmt.Errorf("spend: %w", err)
	}
	if row.Conversions, err = strconv.Atoi(rec[6]); err != nil {
		return row, fmt.Errorf("conversions: %w", err)
	}
	if row.VideoViews, err = strconv.Atoi(rec[7]); err != nil {
		return row, fmt.Errorf("video_views: %w", err)
	}
	return row, nil
}
