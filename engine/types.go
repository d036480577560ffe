package engine

import "github.com/shopspring/decimal"

// ============================================================================
// ENGINE TYPES — Portfolio Analytics
// ============================================================================
// FilterSpec is the contract between UI widget state and the engine.
// Result is the render-ready dashboard payload the presentation layer
// consumes. The engine has no rendering dependency — charts are emitted as
// declarative configs.
// ============================================================================

// FilterSpec defines which clients to include. One value is constructed per
// interaction and passed as a plain parameter — the engine holds no widget
// state.
//
// The four label/weighting selections are conjunctive with each other and
// with the age range. An empty selection excludes every row; callers that
// want "everything" pass the values from Options(view).
type FilterSpec struct {
	Relationships  []string `json:"relationships"`
	Advisors       []string `json:"advisors"`
	Loyalty        []string `json:"loyalty"`
	RiskWeightings []int    `json:"riskWeightings"`
	MinAge         int      `json:"minAge"` // inclusive
	MaxAge         int      `json:"maxAge"` // inclusive
}

// FilterOptions enumerates the selectable values observed in a view.
// Presentation layers use this to populate sidebar widgets; AllSpec turns it
// into a select-everything FilterSpec.
type FilterOptions struct {
	Relationships  []string `json:"relationships"`
	Advisors       []string `json:"advisors"`
	Loyalties      []string `json:"loyalties"`
	RiskWeightings []int    `json:"riskWeightings"`
	MinAge         int      `json:"minAge"`
	MaxAge         int      `json:"maxAge"`
}

// AllSpec returns the FilterSpec that selects every observed value.
func (o FilterOptions) AllSpec() FilterSpec {
	return FilterSpec{
		Relationships:  o.Relationships,
		Advisors:       o.Advisors,
		Loyalty:        o.Loyalties,
		RiskWeightings: o.RiskWeightings,
		MinAge:         o.MinAge,
		MaxAge:         o.MaxAge,
	}
}

// ============================================================================
// AGGREGATE OUTPUTS
// ============================================================================

// KPISet holds the four scalar headline metrics.
type KPISet struct {
	ClientCount      int     `json:"clientCount"`
	TotalAUMMillions float64 `json:"totalAumMillions"`
	AvgRiskWeighting float64 `json:"avgRiskWeighting"`
	// AvgTenureYears averages only clients with a known join date;
	// TenureSampleSize reports how many that was.
	AvgTenureYears   float64 `json:"avgTenureYears"`
	TenureSampleSize int     `json:"tenureSampleSize"`
}

// RelationshipGenderCount is one cell of the relationship × gender breakdown.
type RelationshipGenderCount struct {
	Relationship string `json:"relationship"`
	Gender       string `json:"gender"`
	Count        int    `json:"count"`
}

// AdvisorSummary aggregates one advisor's book.
type AdvisorSummary struct {
	Advisor     string          `json:"advisor"`
	TotalAUM    decimal.Decimal `json:"totalAum"`
	AvgRisk     float64         `json:"avgRisk"`
	ClientCount int             `json:"clientCount"`
	AvgIncome   decimal.Decimal `json:"avgIncome"`
}

// AssetSlice is one (asset type, relationship) cell of the asset mix, after
// melting the five balance columns into long form.
type AssetSlice struct {
	AssetType    string          `json:"assetType"`
	Relationship string          `json:"relationship"`
	Total        decimal.Decimal `json:"total"`
}

// LoanExposure reports aggregate loan balances against total AUM.
// Ratio is loans / (loans + AUM), zero when the denominator is zero.
type LoanExposure struct {
	TotalLoans decimal.Decimal `json:"totalLoans"`
	TotalAUM   decimal.Decimal `json:"totalAum"`
	Ratio      float64         `json:"ratio"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig declares a categorical chart (bar / stacked bar).
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "bar", "stacked_bar"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ColorScale string        `json:"colorScale,omitempty"` // set when points carry ColorValue
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries is one data series in a categorical chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint is a single labelled value. ColorValue carries a continuous
// color dimension (e.g. average risk behind an AUM bar) when the chart
// declares a ColorScale.
type ChartPoint struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	ColorValue float64 `json:"colorValue,omitempty"`
}

// ScatterConfig declares a scatter or bubble chart.
type ScatterConfig struct {
	ChartType string          `json:"chartType"` // "scatter", "bubble"
	Title     string          `json:"title"`
	XAxis     string          `json:"xAxis"`
	YAxis     string          `json:"yAxis"`
	SizeLabel string          `json:"sizeLabel,omitempty"` // what Size encodes
	Series    []ScatterSeries `json:"series"`
}

// ScatterSeries groups points under one legend entry (e.g. a loyalty tier).
type ScatterSeries struct {
	Name   string         `json:"name"`
	Color  string         `json:"color,omitempty"`
	Points []ScatterPoint `json:"points"`
}

// ScatterPoint is one mark: position, bubble size, and a hover label.
type ScatterPoint struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size,omitempty"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData declares a tabular listing.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "currency"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// ============================================================================
// RESULT — Render-ready dashboard payload
// ============================================================================

// Result is one full dashboard evaluation for one FilterSpec.
type Result struct {
	Matched  int `json:"matched"`  // rows passing the filter
	Universe int `json:"universe"` // rows in the unfiltered view
	// Notice is set when no rows match: informational, not an error.
	// When set, the tab payloads are nil and rendering stops for this
	// interaction only.
	Notice string `json:"notice,omitempty"`

	KPIs         *KPISet          `json:"kpis,omitempty"`
	Segmentation *SegmentationTab `json:"segmentation,omitempty"`
	Advisors     *AdvisorTab      `json:"advisors,omitempty"`
	Assets       *AssetTab        `json:"assets,omitempty"`
	Table        *TableData       `json:"table,omitempty"`
}

// SegmentationTab holds the demographic breakdown charts.
type SegmentationTab struct {
	RelationshipGender *ChartConfig   `json:"relationshipGender"`
	AgeIncome          *ScatterConfig `json:"ageIncome"`
}

// AdvisorTab holds the advisor performance charts plus the raw summaries.
type AdvisorTab struct {
	AUMByAdvisor *ChartConfig     `json:"aumByAdvisor"`
	RiskLoad     *ScatterConfig   `json:"riskLoad"`
	Summaries    []AdvisorSummary `json:"summaries"`
}

// AssetTab holds the asset allocation chart and the loan exposure metric.
type AssetTab struct {
	Mix      *ChartConfig `json:"mix"`
	Exposure LoanExposure `json:"exposure"`
}
