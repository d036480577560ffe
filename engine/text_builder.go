package engine

import (
	"fmt"
	"strings"
)

// ============================================================================
// TEXT BUILDER — Human-readable summary of a Result
// ============================================================================
// Used by the CLI's text output and anywhere a plain-prose rendering of the
// dashboard payload is wanted.
// ============================================================================

// BuildSummaryText renders a Result as a short multi-line report.
func BuildSummaryText(result *Result) string {
	if result == nil {
		return "No result."
	}
	if result.Notice != "" {
		return result.Notice
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Clients selected: %s of %s (%.1f%% of firm total)\n",
		FormatInt(result.Matched), FormatInt(result.Universe), shareOf(result.Matched, result.Universe))

	if k := result.KPIs; k != nil {
		fmt.Fprintf(&b, "Total AUM: $%.2fM\n", k.TotalAUMMillions)
		fmt.Fprintf(&b, "Average risk weighting: %.2f\n", k.AvgRiskWeighting)
		if k.TenureSampleSize > 0 {
			fmt.Fprintf(&b, "Average tenure: %.1f years (over %s clients with a known join date)\n",
				k.AvgTenureYears, FormatInt(k.TenureSampleSize))
		} else {
			b.WriteString("Average tenure: unknown (no join dates in selection)\n")
		}
	}

	if a := result.Advisors; a != nil && len(a.Summaries) > 0 {
		top := a.Summaries[0]
		fmt.Fprintf(&b, "Top advisor by AUM: %s (%s, %s clients)\n",
			top.Advisor, FormatMoney(top.TotalAUM), FormatInt(top.ClientCount))
	}

	if as := result.Assets; as != nil {
		fmt.Fprintf(&b, "Loan exposure: %s in loans, ratio %.2f%%\n",
			FormatMoney(as.Exposure.TotalLoans), as.Exposure.Ratio*100)
	}

	return strings.TrimRight(b.String(), "\n")
}

func shareOf(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
