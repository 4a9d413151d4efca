package mart

import "fmt"

// Enrich joins every fact row against the three dimensions and appends
// the derived KPIs, producing the denormalized master table.
//
// Unresolvable foreign keys are an error: the enrichment stage reads its
// inputs back from flat files, so a dangling key means the inputs are
// inconsistent and the run should fail rather than emit partial rows.
func Enrich(ds *Dataset) ([]MasterRow, error) {
	campaignByID := make(map[int]CampaignRow, len(ds.Campaigns))
	for _, c := range ds.Campaigns {
		campaignByID[c.CampaignID] = c
	}
	sourceByID := make(map[int]SourceRow, len(ds.Sources))
	for _, s := range ds.Sources {
		sourceByID[s.SourceID] = s
	}
	dateByKey := make(map[int]DateRow, len(ds.Dates))
	for _, d := range ds.Dates {
		dateByKey[d.DateKey] = d
	}

	rows := make([]MasterRow, 0, len(ds.Facts))
	for i, f := range ds.Facts {
		campaign, ok := campaignByID[f.CampaignID]
		if !ok {
			return nil, fmt.Errorf("fact row %d references unknown campaign_id %d", i, f.CampaignID)
		}
		source, ok := sourceByID[f.SourceID]
		if !ok {
			return nil, fmt.Errorf("fact row %d references unknown source_id %d", i, f.SourceID)
		}
		date, ok := dateByKey[f.DateKey]
		if !ok {
			return nil, fmt.Errorf("fact row %d references unknown date_key %d", i, f.DateKey)
		}

		rows = append(rows, MasterRow{
			FactRow:      f,
			CampaignName: campaign.CampaignName,
			AdSetName:    campaign.AdSetName,
			Objective:    campaign.Objective,
			SourceName:   source.SourceName,
			Channel:      source.Channel,
			Date:         date.Date,
			Year:         date.Year,
			Month:        date.Month,
			MonthName:    date.MonthName,
			Quarter:      date.Quarter,
			IsWeekend:    date.IsWeekend,

			CPM:            CPM(f.Spend, f.Impressions),
			CTR:            CTR(f.Clicks, f.Impressions),
			CPC:            CPC(f.Spend, f.Clicks),
			ConversionRate: ConversionRate(f.Conversions, f.Clicks),
		})
	}

	return rows, nil
}

// The KPI formulas guard their denominators: rows with zero impressions
// or zero clicks yield 0, never NaN or Inf.

// CPM is cost per thousand impressions.
func CPM(spend float64, impressions int) float64 {
	if impressions <= 0 {
		return 0
	}
	return spend / float64(impressions) * 1000
}

// CTR is the click-through rate as a percentage.
func CTR(clicks, impressions int) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

// CPC is cost per click.
func CPC(spend float64, clicks int) float64 {
	if clicks <= 0 {
		return 0
	}
	return spend / float64(clicks)
}

// ConversionRate is conversions per click as a percentage.
func ConversionRate(conversions, clicks int) float64 {
	if clicks <= 0 {
		return 0
	}
	return float64(conversions) / float64(clicks) * 100
}
