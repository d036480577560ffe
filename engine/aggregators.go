package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/portlens-org/portlens/dataset"
)

// ============================================================================
// AGGREGATOR — Scalar KPIs and grouped summaries over a filtered view
// ============================================================================
// All functions are deterministic reads of their input view; nothing here
// mutates the dataset. Monetary sums stay in decimal until they cross into
// chart space.
// ============================================================================

var million = decimal.NewFromInt(1_000_000)

// ComputeKPIs returns the four headline metrics for a view.
// The tenure mean covers only clients with a known join date; clients with
// an unknown tenure still count toward ClientCount.
func ComputeKPIs(view View) KPISet {
	n := view.Len()
	kpis := KPISet{ClientCount: n}
	if n == 0 {
		return kpis
	}

	totalAUM := decimal.Zero
	var riskSum int
	var tenureSum float64
	for i := 0; i < n; i++ {
		c := view.Client(i)
		totalAUM = totalAUM.Add(c.TotalAUM)
		riskSum += c.RiskWeighting
		if c.TenureKnown {
			tenureSum += c.TenureYears
			kpis.TenureSampleSize++
		}
	}

	kpis.TotalAUMMillions = totalAUM.Div(million).InexactFloat64()
	kpis.AvgRiskWeighting = float64(riskSum) / float64(n)
	if kpis.TenureSampleSize > 0 {
		kpis.AvgTenureYears = tenureSum / float64(kpis.TenureSampleSize)
	}
	return kpis
}

// ============================================================================
// GROUPED SUMMARIES
// ============================================================================

// CountByRelationshipGender counts clients per (relationship, gender) pair.
// Pairs appear in first-seen order.
func CountByRelationshipGender(view View) []RelationshipGenderCount {
	type pair struct{ rel, gender string }

	counts := make(map[pair]int)
	var order []pair
	for i := 0; i < view.Len(); i++ {
		c := view.Client(i)
		p := pair{c.Relationship, c.Gender}
		if _, seen := counts[p]; !seen {
			order = append(order, p)
		}
		counts[p]++
	}

	out := make([]RelationshipGenderCount, 0, len(order))
	for _, p := range order {
		out = append(out, RelationshipGenderCount{
			Relationship: p.rel,
			Gender:       p.gender,
			Count:        counts[p],
		})
	}
	return out
}

// SummarizeAdvisors aggregates each advisor's book: total AUM, mean risk,
// client count, mean estimated income. Ordered by descending total AUM;
// ties break alphabetically so output stays deterministic.
func SummarizeAdvisors(view View) []AdvisorSummary {
	type acc struct {
		aum     decimal.Decimal
		income  decimal.Decimal
		riskSum int
		count   int
	}

	accs := make(map[string]*acc)
	var order []string
	for i := 0; i < view.Len(); i++ {
		c := view.Client(i)
		a, seen := accs[c.Advisor]
		if !seen {
			a = &acc{aum: decimal.Zero, income: decimal.Zero}
			accs[c.Advisor] = a
			order = append(order, c.Advisor)
		}
		a.aum = a.aum.Add(c.TotalAUM)
		a.income = a.income.Add(c.EstimatedIncome)
		a.riskSum += c.RiskWeighting
		a.count++
	}

	out := make([]AdvisorSummary, 0, len(order))
	for _, advisor := range order {
		a := accs[advisor]
		n := decimal.NewFromInt(int64(a.count))
		out = append(out, AdvisorSummary{
			Advisor:     advisor,
			TotalAUM:    a.aum,
			AvgRisk:     float64(a.riskSum) / float64(a.count),
			ClientCount: a.count,
			AvgIncome:   a.income.Div(n).Round(2),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].TotalAUM.Equal(out[j].TotalAUM) {
			return out[i].TotalAUM.GreaterThan(out[j].TotalAUM)
		}
		return out[i].Advisor < out[j].Advisor
	})
	return out
}

// SumAssetMix melts the five balance columns into (asset type, relationship)
// observations — five per client — and sums each cell. Asset types keep the
// column order from dataset.AssetColumns; relationships within a type appear
// in first-seen order.
func SumAssetMix(view View) []AssetSlice {
	type cell struct{ asset, rel string }

	totals := make(map[cell]decimal.Decimal)
	relOrder := make(map[string][]string) // asset → relationships in order
	for i := 0; i < view.Len(); i++ {
		c := view.Client(i)
		for _, col := range dataset.AssetColumns {
			k := cell{col, c.Relationship}
			if _, seen := totals[k]; !seen {
				relOrder[col] = append(relOrder[col], c.Relationship)
				totals[k] = decimal.Zero
			}
			totals[k] = totals[k].Add(c.AssetValue(col))
		}
	}

	var out []AssetSlice
	for _, col := range dataset.AssetColumns {
		for _, rel := range relOrder[col] {
			out = append(out, AssetSlice{
				AssetType:    col,
				Relationship: rel,
				Total:        totals[cell{col, rel}],
			})
		}
	}
	return out
}

// ComputeLoanExposure sums loan balances against total AUM.
// Ratio = loans / (loans + AUM); zero when the denominator is zero, so the
// result stays in [0,1] for non-negative inputs.
func ComputeLoanExposure(view View) LoanExposure {
	loans := decimal.Zero
	aum := decimal.Zero
	for i := 0; i < view.Len(); i++ {
		c := view.Client(i)
		loans = loans.Add(c.BankLoans)
		aum = aum.Add(c.TotalAUM)
	}

	exp := LoanExposure{TotalLoans: loans, TotalAUM: aum}
	if denom := loans.Add(aum); !denom.IsZero() {
		exp.Ratio = loans.Div(denom).InexactFloat64()
	}
	return exp
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatMoney formats a decimal amount with a $ prefix and comma separators.
func FormatMoney(d decimal.Decimal) string {
	negative := d.IsNegative()
	s := d.Abs().StringFixed(2)

	intPart, decPart, _ := strings.Cut(s, ".")
	if len(intPart) > 3 {
		var parts []string
		for len(intPart) > 3 {
			parts = append([]string{intPart[len(intPart)-3:]}, parts...)
			intPart = intPart[:len(intPart)-3]
		}
		parts = append([]string{intPart}, parts...)
		intPart = strings.Join(parts, ",")
	}

	result := fmt.Sprintf("$%s.%s", intPart, decPart)
	if negative {
		result = "-" + result
	}
	return result
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
