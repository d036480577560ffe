package engine

import "fmt"

// ============================================================================
// TABLE BUILDER — Filtered client listing with a fixed column projection
// ============================================================================

// listingColumns is the fixed projection for the raw data tab.
var listingColumns = []Column{
	{Key: "client_id", Label: "Client ID", Type: "text", Align: "left"},
	{Key: "name", Label: "Name", Type: "text", Align: "left"},
	{Key: "age", Label: "Age", Type: "number", Align: "right"},
	{Key: "nationality", Label: "Nationality", Type: "text", Align: "left"},
	{Key: "occupation", Label: "Occupation", Type: "text", Align: "left"},
	{Key: "estimated_income", Label: "Estimated Income", Type: "currency", Align: "right"},
	{Key: "loyalty", Label: "Loyalty Classification", Type: "text", Align: "left"},
	{Key: "relationship", Label: "Banking Relationship", Type: "text", Align: "left"},
	{Key: "total_aum", Label: "Total AUM", Type: "currency", Align: "right"},
	{Key: "risk_weighting", Label: "Risk Weighting", Type: "number", Align: "center"},
	{Key: "advisor", Label: "Investment Advisor", Type: "text", Align: "left"},
}

// BuildClientTable lists the filtered clients under the fixed projection.
// A limit > 0 caps the row count; the summary still reflects every matched
// client so a capped listing keeps honest totals.
func BuildClientTable(view View, limit int) *TableData {
	n := view.Len()
	rowCap := n
	if limit > 0 && limit < n {
		rowCap = limit
	}

	rows := make([][]string, 0, rowCap)
	kpis := ComputeKPIs(view)

	for i := 0; i < rowCap; i++ {
		c := view.Client(i)
		rows = append(rows, []string{
			c.ID,
			c.Name,
			fmt.Sprintf("%d", c.Age),
			c.Nationality,
			c.Occupation,
			FormatMoney(c.EstimatedIncome),
			c.Loyalty,
			c.Relationship,
			FormatMoney(c.TotalAUM),
			fmt.Sprintf("%d", c.RiskWeighting),
			c.Advisor,
		})
	}

	return &TableData{
		Title:   "Filtered Client Data (Merged Table)",
		Columns: listingColumns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("Total (%s clients)", FormatInt(n)),
			Values: map[string]string{
				"total_aum": fmt.Sprintf("$%.2fM", kpis.TotalAUMMillions),
			},
		},
	}
}
