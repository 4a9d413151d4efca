// Package mart builds a synthetic marketing-analytics star schema:
// a daily ad performance fact table joined against date, source, and
// campaign dimensions, plus a denormalized master table with derived KPIs.
package mart

import "time"

// Channel names shared by the source and campaign dimensions.
const (
	ChannelProgrammatic = "Programmatic"
	ChannelPaidSearch   = "Paid Search"
	ChannelPaidSocial   = "Paid Social"
	ChannelOrganic      = "Organic"
)

// DateRow is one calendar day in the date dimension.
type DateRow struct {
	Date      time.Time
	DateKey   int // YYYYMMDD integer surrogate key
	Year      int
	Month     int
	MonthName string
	Quarter   int
	IsWeekend bool
}

// SourceRow is one advertising platform in the source dimension.
type SourceRow struct {
	SourceID   int
	SourceName string
	Channel    string
}

// CampaignRow is one ad set in the campaign dimension.
type CampaignRow struct {
	CampaignID   int
	CampaignName string
	AdSetName    string
	Objective    string

	// ChannelScope ties the campaign to a single channel so that fact rows
	// stay logically consistent (no search campaigns on social platforms).
	// It drives the fact join and is not exported to dim_campaign.csv.
	ChannelScope string
}

// FactRow is one (campaign, source, day) observation in the fact table.
type FactRow struct {
	DateKey     int
	SourceID    int
	CampaignID  int
	Impressions int
	Clicks      int
	Spend       float64
	Conversions int
	VideoViews  int
}

// Dataset bundles the generated star schema tables.
type Dataset struct {
	Dates     []DateRow
	Sources   []SourceRow
	Campaigns []CampaignRow
	Facts     []FactRow
}

// MasterRow is one row of the denormalized marketing analytics master
// table: a fact row with its dimension attributes and derived KPIs.
type MasterRow struct {
	FactRow

	CampaignName string
	AdSetName    string
	Objective    string

	SourceName string
	Channel    string

	Date      time.Time
	Year      int
	Month     int
	MonthName string
	Quarter   int
	IsWeekend bool

	CPM            float64
	CTR            float64
	CPC            float64
	ConversionRate float64
}
