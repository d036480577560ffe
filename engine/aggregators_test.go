package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portlens-org/portlens/dataset"
)

func TestComputeKPIs(t *testing.T) {
	kpis := ComputeKPIs(testView())

	assert.Equal(t, 6, kpis.ClientCount)
	// 1500 + 20000 + 1000 + 3000 + 50000 + 0 = 75500
	assert.InDelta(t, 0.0755, kpis.TotalAUMMillions, 1e-9)
	assert.InDelta(t, 2.0, kpis.AvgRiskWeighting, 1e-9)

	// Tenure mean covers only the four known tenures; the two unknowns still
	// count toward ClientCount.
	assert.Equal(t, 4, kpis.TenureSampleSize)
	assert.InDelta(t, (10.0+5+2+20)/4, kpis.AvgTenureYears, 1e-9)
}

func TestComputeKPIsEmptyView(t *testing.T) {
	kpis := ComputeKPIs(NewSliceView(nil))

	assert.Zero(t, kpis.ClientCount)
	assert.Zero(t, kpis.TotalAUMMillions)
	assert.Zero(t, kpis.AvgRiskWeighting)
	assert.Zero(t, kpis.AvgTenureYears)
}

func TestCountByRelationshipGender(t *testing.T) {
	counts := CountByRelationshipGender(testView())

	require.Len(t, counts, 5)
	// First-seen order, starting with C1's pair.
	assert.Equal(t, RelationshipGenderCount{"Retail", "Female", 2}, counts[0])
	assert.Equal(t, RelationshipGenderCount{"Private Bank", "Male", 1}, counts[1])
	assert.Equal(t, RelationshipGenderCount{"Commercial", "Male", 1}, counts[2])
	assert.Equal(t, RelationshipGenderCount{"Private Bank", "Female", 1}, counts[3])
	assert.Equal(t, RelationshipGenderCount{"Retail", "Male", 1}, counts[4])
}

func TestSummarizeAdvisors(t *testing.T) {
	summaries := SummarizeAdvisors(testView())

	require.Len(t, summaries, 3)

	// Descending by total AUM: Fay 50000, Evan 23000, Dana 2500.
	assert.Equal(t, "Fay Ng", summaries[0].Advisor)
	assert.Equal(t, "Evan Ko", summaries[1].Advisor)
	assert.Equal(t, "Dana Wu", summaries[2].Advisor)

	dana := summaries[2]
	assert.True(t, dana.TotalAUM.Equal(money(2500)))
	assert.Equal(t, 3, dana.ClientCount)
	assert.InDelta(t, (2.0+1+1)/3, dana.AvgRisk, 1e-9)
	// (90000 + 120000 + 0) / 3 = 70000
	assert.True(t, dana.AvgIncome.Equal(money(70000)), "AvgIncome = %s", dana.AvgIncome)
}

func TestSummarizeAdvisorsTieBreaksAlphabetically(t *testing.T) {
	view := NewSliceView([]dataset.Client{
		{Advisor: "Zed", TotalAUM: money(100)},
		{Advisor: "Amy", TotalAUM: money(100)},
	})

	summaries := SummarizeAdvisors(view)

	require.Len(t, summaries, 2)
	assert.Equal(t, "Amy", summaries[0].Advisor)
	assert.Equal(t, "Zed", summaries[1].Advisor)
}

func TestSumAssetMix(t *testing.T) {
	slices := SumAssetMix(testView())

	totals := make(map[string]map[string]decimal.Decimal)
	for _, s := range slices {
		if totals[s.AssetType] == nil {
			totals[s.AssetType] = make(map[string]decimal.Decimal)
		}
		totals[s.AssetType][s.Relationship] = s.Total
	}

	assert.True(t, totals[dataset.ColBankDeposits]["Retail"].Equal(money(2000)))
	assert.True(t, totals[dataset.ColBankDeposits]["Private Bank"].Equal(money(70000)))
	assert.True(t, totals[dataset.ColBankDeposits]["Commercial"].Equal(money(3000)))
	assert.True(t, totals[dataset.ColSaving]["Retail"].Equal(money(500)))

	// Asset types keep the canonical column order.
	assert.Equal(t, dataset.ColBankDeposits, slices[0].AssetType)
}

func TestComputeLoanExposure(t *testing.T) {
	exp := ComputeLoanExposure(testView())

	assert.True(t, exp.TotalLoans.Equal(money(3500)))
	assert.True(t, exp.TotalAUM.Equal(money(75500)))
	assert.InDelta(t, 3500.0/79000.0, exp.Ratio, 1e-9)
	assert.GreaterOrEqual(t, exp.Ratio, 0.0)
	assert.LessOrEqual(t, exp.Ratio, 1.0)
}

func TestComputeLoanExposureZeroDenominator(t *testing.T) {
	exp := ComputeLoanExposure(NewSliceView([]dataset.Client{{ID: "C1"}}))

	assert.Zero(t, exp.Ratio, "0/0 exposure must report zero, not NaN")
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"999.5", "$999.50"},
		{"1000", "$1,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-1000", "-$1,000.00"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatMoney(decimal.RequireFromString(tc.in)), "input %s", tc.in)
	}
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", FormatInt(0))
	assert.Equal(t, "999", FormatInt(999))
	assert.Equal(t, "1,000", FormatInt(1000))
	assert.Equal(t, "1,234,567", FormatInt(1234567))
	assert.Equal(t, "-12,345", FormatInt(-12345))
}
