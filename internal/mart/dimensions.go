package mart

import "time"

// Defaults for the canonical dataset: 15 months of daily grain,
// January 2023 through March 2024.
var DefaultStartDate = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

const DefaultDays = 456

// Advertising platforms mapped to their channel.
var sourceData = []SourceRow{
	{SourceID: 1, SourceName: "Amazon Ad Server", Channel: ChannelProgrammatic},
	{SourceID: 2, SourceName: "StackAdapt", Channel: ChannelProgrammatic},
	{SourceID: 3, SourceName: "DV360", Channel: ChannelProgrammatic},
	{SourceID: 4, SourceName: "Search Ads 360", Channel: ChannelPaidSearch},
	{SourceID: 5, SourceName: "Bing Ads", Channel: ChannelPaidSearch},
	{SourceID: 6, SourceName: "Facebook", Channel: ChannelPaidSocial},
	{SourceID: 7, SourceName: "LinkedIn Ads", Channel: ChannelPaidSocial},
	{SourceID: 8, SourceName: "Organic Search", Channel: ChannelOrganic},
}

// Campaigns scoped to a channel and an objective. Each expands into two
// ad-set tiers so BI tools have a hierarchy to drill into.
var campaignData = []struct {
	name      string
	scope     string
	objective string
}{
	{"Business-focused zero tolerance", ChannelProgrammatic, "Brand Awareness"},
	{"Profound intangible policy", ChannelProgrammatic, "Brand Awareness"},
	{"Networked value-added time-frame", ChannelProgrammatic, "Consideration"},
	{"Persistent 24/7 attitude", ChannelPaidSocial, "Lead Gen"},
	{"Centralized modular throughput", ChannelPaidSocial, "Conversion"},
	{"Integrated dedicated contingency", ChannelPaidSearch, "Conversion"},
	{"Automated uniform software", ChannelPaidSearch, "Lead Gen"},
	{"Cross-platform static hierarchy", ChannelOrganic, "Traffic"},
}

var adSetTiers = []string{"_Tier1", "_Tier2"}

// BuildDateDim produces one row per calendar day, starting at start and
// spanning the given number of days. Derived fields are pure functions
// of the date.
func BuildDateDim(start time.Time, days int) []DateRow {
	rows := make([]DateRow, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		y, m, day := d.Date()
		wd := d.Weekday()
		rows = append(rows, DateRow{
			Date:      d,
			DateKey:   y*10000 + int(m)*100 + day,
			Year:      y,
			Month:     int(m),
			MonthName: d.Format("Jan"),
			Quarter:   (int(m)-1)/3 + 1,
			IsWeekend: wd == time.Saturday || wd == time.Sunday,
		})
	}
	return rows
}

// BuildSourceDim returns the static source dimension.
func BuildSourceDim() []SourceRow {
	rows := make([]SourceRow, len(sourceData))
	copy(rows, sourceData)
	return rows
}

// BuildCampaignDim expands the campaign configuration into the campaign
// dimension, two ad-set tiers per campaign.
func BuildCampaignDim() []CampaignRow {
	rows := make([]CampaignRow, 0, len(campaignData)*len(adSetTiers))
	id := 1
	for _, c := range campaignData {
		for _, tier := range adSetTiers {
			rows = append(rows, CampaignRow{
				CampaignID:   id,
				CampaignName: c.name,
				AdSetName:    c.name + tier,
				Objective:    c.objective,
				ChannelScope: c.scope,
			})
			id++
		}
	}
	return rows
}
