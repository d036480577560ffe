package engine

// ============================================================================
// CHART BUILDERS — Declarative chart configs from aggregates
// ============================================================================
// Five charts across three dashboard tabs. Builders return nil when the
// input holds nothing to plot; the executor turns that into a notice.
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildRelationshipGenderChart produces a grouped bar of client count by
// banking relationship, one series per gender label.
func BuildRelationshipGenderChart(counts []RelationshipGenderCount, palette []string) *ChartConfig {
	if len(counts) == 0 {
		return nil
	}

	var relationships []string
	relSeen := make(map[string]bool)
	var genders []string
	genderSeen := make(map[string]bool)
	cells := make(map[[2]string]int)

	for _, c := range counts {
		if !relSeen[c.Relationship] {
			relSeen[c.Relationship] = true
			relationships = append(relationships, c.Relationship)
		}
		if !genderSeen[c.Gender] {
			genderSeen[c.Gender] = true
			genders = append(genders, c.Gender)
		}
		cells[[2]string{c.Relationship, c.Gender}] = c.Count
	}

	series := make([]ChartSeries, 0, len(genders))
	for i, gender := range genders {
		points := make([]ChartPoint, 0, len(relationships))
		for _, rel := range relationships {
			points = append(points, ChartPoint{
				Label: rel,
				Value: float64(cells[[2]string{rel, gender}]),
			})
		}
		series = append(series, ChartSeries{
			Name:  gender,
			Data:  points,
			Color: palette[i%len(palette)],
		})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      "Client Count by Relationship & Gender",
		XAxis:      "Banking Relationship",
		YAxis:      "Client Count",
		Series:     series,
		Colors:     assignColors(palette, len(series)),
		ShowLegend: true,
		ShowGrid:   true,
	}
}

// BuildAgeIncomeScatter produces a scatter of age vs estimated income, one
// series per loyalty tier, bubble size encoding total AUM.
func BuildAgeIncomeScatter(view View, palette []string) *ScatterConfig {
	if view.Len() == 0 {
		return nil
	}

	var tiers []string
	points := make(map[string][]ScatterPoint)
	for i := 0; i < view.Len(); i++ {
		c := view.Client(i)
		if _, seen := points[c.Loyalty]; !seen {
			tiers = append(tiers, c.Loyalty)
		}
		points[c.Loyalty] = append(points[c.Loyalty], ScatterPoint{
			Label: c.Name,
			X:     float64(c.Age),
			Y:     c.EstimatedIncome.InexactFloat64(),
			Size:  c.TotalAUM.InexactFloat64(),
		})
	}

	series := make([]ScatterSeries, 0, len(tiers))
	for i, tier := range tiers {
		series = append(series, ScatterSeries{
			Name:   tier,
			Color:  palette[i%len(palette)],
			Points: points[tier],
		})
	}

	return &ScatterConfig{
		ChartType: "scatter",
		Title:     "Age, Income, and Loyalty",
		XAxis:     "Age",
		YAxis:     "Estimated Income (USD)",
		SizeLabel: "Total AUM",
		Series:    series,
	}
}

// BuildAdvisorAUMChart produces a bar of total AUM per advisor. Each bar
// carries the advisor's average risk as a continuous color value.
func BuildAdvisorAUMChart(summaries []AdvisorSummary) *ChartConfig {
	if len(summaries) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(summaries))
	for _, s := range summaries {
		points = append(points, ChartPoint{
			Label:      s.Advisor,
			Value:      RoundTo2(s.TotalAUM.InexactFloat64()),
			ColorValue: RoundTo2(s.AvgRisk),
		})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      "AUM by Advisor (Colored by Avg. Risk)",
		XAxis:      "Investment Advisor",
		YAxis:      "Total AUM",
		Series:     []ChartSeries{{Name: "Total AUM", Data: points}},
		ColorScale: "oranges",
		ShowLegend: false,
		ShowGrid:   true,
	}
}

// BuildAdvisorLoadChart produces a bubble chart of client load vs average
// portfolio risk, one series per advisor, bubble size encoding total AUM.
func BuildAdvisorLoadChart(summaries []AdvisorSummary, palette []string) *ScatterConfig {
	if len(summaries) == 0 {
		return nil
	}

	series := make([]ScatterSeries, 0, len(summaries))
	for i, s := range summaries {
		series = append(series, ScatterSeries{
			Name:  s.Advisor,
			Color: palette[i%len(palette)],
			Points: []ScatterPoint{{
				Label: s.Advisor,
				X:     float64(s.ClientCount),
				Y:     RoundTo2(s.AvgRisk),
				Size:  s.TotalAUM.InexactFloat64(),
			}},
		})
	}

	return &ScatterConfig{
		ChartType: "bubble",
		Title:     "Client Load vs. Average Portfolio Risk",
		XAxis:     "Client Count",
		YAxis:     "Average Risk",
		SizeLabel: "Total AUM",
		Series:    series,
	}
}

// BuildAssetMixChart produces a stacked bar of asset totals by asset type,
// one series per banking relationship.
func BuildAssetMixChart(slices []AssetSlice, palette []string) *ChartConfig {
	if len(slices) == 0 {
		return nil
	}

	var assets []string
	assetSeen := make(map[string]bool)
	var relationships []string
	relSeen := make(map[string]bool)
	cells := make(map[[2]string]float64)

	for _, s := range slices {
		if !assetSeen[s.AssetType] {
			assetSeen[s.AssetType] = true
			assets = append(assets, s.AssetType)
		}
		if !relSeen[s.Relationship] {
			relSeen[s.Relationship] = true
			relationships = append(relationships, s.Relationship)
		}
		cells[[2]string{s.AssetType, s.Relationship}] = s.Total.InexactFloat64()
	}

	series := make([]ChartSeries, 0, len(relationships))
	for i, rel := range relationships {
		points := make([]ChartPoint, 0, len(assets))
		for _, asset := range assets {
			points = append(points, ChartPoint{
				Label: asset,
				Value: RoundTo2(cells[[2]string{asset, rel}]),
			})
		}
		series = append(series, ChartSeries{
			Name:  rel,
			Data:  points,
			Color: palette[i%len(palette)],
		})
	}

	return &ChartConfig{
		ChartType:  "stacked_bar",
		Title:      "Total Asset Allocation by Type and Relationship",
		XAxis:      "Asset Type",
		YAxis:      "Value",
		Series:     series,
		Colors:     assignColors(palette, len(series)),
		ShowLegend: true,
		ShowGrid:   true,
	}
}

func assignColors(palette []string, count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}
