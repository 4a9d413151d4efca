//-------------------------------------------------------------------------
//
// martgen - Marketing Data Mart Generator
//
// Copyright (c) 2025 - 2026, Sparkline Data
// This software is released under the MIT License
//
//-------------------------------------------------------------------------

package mart

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sparkline-data/martgen/internal/datagen"
	"github.com/sparkline-data/martgen/internal/logging"
)

// Seasonality multipliers: traffic dips on weekends and runs slightly
// hot on weekdays.
const (
	weekendMultiplier = 0.7
	weekdayMultiplier = 1.1
)

// channelProfile holds the per-channel metric distributions. Impression
// bounds are half-open ([min, max)), CTR and CPC bounds are inclusive.
type channelProfile struct {
	impsMin, impsMax int
	ctrMin, ctrMax   float64
	cpcMin, cpcMax   float64
	videoShare       float64 // share of impressions served as video
}

var channelProfiles = map[string]channelProfile{
	// High volume, low CTR, low CPC.
	ChannelProgrammatic: {5000, 15000, 0.003, 0.007, 0.30, 0.90, 0.40},
	// Low volume, high CTR, high CPC.
	ChannelPaidSearch: {300, 1200, 0.08, 0.12, 2.50, 6.00, 0},
	// Mid volume, mid CTR, mid CPC.
	ChannelPaidSocial: {1000, 4000, 0.015, 0.035, 1.50, 3.50, 0.40},
	// No cost, no video.
	ChannelOrganic: {1000, 3000, 0.05, 0.08, 0, 0, 0},
}

// Scripted anomalies that give the dataset an analyzable story:
// Programmatic impressions triple in August 2023, and a bid optimization
// cuts Paid Search CPC by 30% in December 2023.
const (
	spikeYear       = 2023
	spikeMonth      = int(time.August)
	spikeMultiplier = 3.0

	dipYear       = 2023
	dipMonth      = int(time.December)
	dipMultiplier = 0.7
)

// Conversion rate and video variance draws, applied per row.
const (
	convRateMin = 0.05
	convRateMax = 0.15

	videoVarianceMin = 0.8
	videoVarianceMax = 1.2
)

// Generator synthesizes the star schema dataset.
type Generator struct {
	faker *datagen.Faker
}

// NewGenerator creates a generator seeded from the current time.
func NewGenerator() *Generator {
	return &Generator{faker: datagen.NewFaker()}
}

// NewGeneratorWithSeed creates a generator with a fixed seed so that
// repeated runs produce identical datasets.
func NewGeneratorWithSeed(seed uint64) *Generator {
	return &Generator{faker: datagen.NewFakerWithSeed(seed)}
}

// factPair is one (campaign, source) combination sharing a channel: the
// unit the date cross join multiplies against.
type factPair struct {
	campaign CampaignRow
	source   SourceRow
}

// joinPairs links campaigns to the sources of their scoped channel.
func joinPairs(campaigns []CampaignRow, sources []SourceRow) []factPair {
	pairs := make([]factPair, 0, len(campaigns)*len(sources))
	for _, c := range campaigns {
		for _, s := range sources {
			if s.Channel == c.ChannelScope {
				pairs = append(pairs, factPair{campaign: c, source: s})
			}
		}
	}
	return pairs
}

// Generate builds the dimensions and the fact table for the given date
// range.
func (g *Generator) Generate(start time.Time, days int) *Dataset {
	ds := &Dataset{
		Dates:     BuildDateDim(start, days),
		Sources:   BuildSourceDim(),
		Campaigns: BuildCampaignDim(),
	}

	pairs := joinPairs(ds.Campaigns, ds.Sources)

	logging.Debug().
		Int("pairs", len(pairs)).
		Int("days", len(ds.Dates)).
		Msg("Built fact skeleton")

	ds.Facts = make([]FactRow, 0, len(pairs)*len(ds.Dates))
	for _, p := range pairs {
		for _, d := range ds.Dates {
			ds.Facts = append(ds.Facts, g.synthesize(p, d))
		}
	}

	logging.Info().
		Int("campaigns", len(ds.Campaigns)).
		Int("sources", len(ds.Sources)).
		Int("days", len(ds.Dates)).
		Int("fact_rows", len(ds.Facts)).
		Msg("Generated star schema dataset")

	return ds
}

// synthesize draws the metrics for a single fact row.
func (g *Generator) synthesize(p factPair, d DateRow) FactRow {
	profile := channelProfiles[p.source.Channel]

	seasonality := weekdayMultiplier
	if d.IsWeekend {
		seasonality = weekendMultiplier
	}

	imps := float64(g.faker.IntN(profile.impsMin, profile.impsMax)) * seasonality
	ctr := g.faker.Float64(profile.ctrMin, profile.ctrMax)

	cpc := 0.0
	if profile.cpcMax > 0 {
		cpc = g.faker.Price(profile.cpcMin, profile.cpcMax)
	}

	if d.Year == spikeYear && d.Month == spikeMonth && p.source.Channel == ChannelProgrammatic {
		imps *= spikeMultiplier
	}
	if d.Year == dipYear && d.Month == dipMonth && p.source.Channel == ChannelPaidSearch {
		cpc *= dipMultiplier
	}

	impressions := int(imps)
	clicks := int(float64(impressions) * ctr)
	spend := spendFor(clicks, cpc)
	conversions := int(float64(clicks) * g.faker.Float64(convRateMin, convRateMax))

	videoViews := 0
	if profile.videoShare > 0 {
		variance := g.faker.Float64(videoVarianceMin, videoVarianceMax)
		videoViews = int(float64(impressions) * profile.videoShare * variance)
	}

	return FactRow{
		DateKey:     d.DateKey,
		SourceID:    p.source.SourceID,
		CampaignID:  p.campaign.CampaignID,
		Impressions: impressions,
		Clicks:      clicks,
		Spend:       spend,
		Conversions: conversions,
		VideoViews:  videoViews,
	}
}

// spendFor computes clicks x CPC in exact decimal arithmetic, rounded to
// cents, so spend never carries float drift into the exported files.
func spendFor(clicks int, cpc float64) float64 {
	spend := decimal.NewFromFloat(cpc).
		Mul(decimal.NewFromInt(int64(clicks))).
		Round(2)
	f, _ := spend.Float64()
	return f
}
