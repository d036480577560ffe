package engine

import (
	"github.com/shopspring/decimal"

	"github.com/portlens-org/portlens/dataset"
)

// ============================================================================
// SHARED TEST FIXTURE — A small merged table covering every dimension
// ============================================================================

func money(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// testClients is a six-row merged table: three relationships, three advisors,
// four loyalty tiers, all three risk weightings, two unknown tenures.
func testClients() []dataset.Client {
	return []dataset.Client{
		{
			ID: "C1", Name: "Alice Tan", Age: 34,
			Relationship: "Retail", Gender: "Female", Advisor: "Dana Wu",
			RiskWeighting: 2, Loyalty: "Gold",
			EstimatedIncome: money(90000),
			BankDeposits:    money(1000), SavingAccounts: money(500),
			TotalAUM: money(1500), BankLoans: money(2000),
			TenureYears: 10, TenureKnown: true,
		},
		{
			ID: "C2", Name: "Bob Lim", Age: 58,
			Relationship: "Private Bank", Gender: "Male", Advisor: "Evan Ko",
			RiskWeighting: 3, Loyalty: "Platinum",
			EstimatedIncome: money(150000),
			BankDeposits:    money(20000),
			TotalAUM:        money(20000),
		},
		{
			ID: "C3", Name: "Cara Ng", Age: 41,
			Relationship: "Retail", Gender: "Female", Advisor: "Dana Wu",
			RiskWeighting: 1, Loyalty: "Jade",
			EstimatedIncome: money(120000),
			BankDeposits:    money(1000),
			TotalAUM:        money(1000), BankLoans: money(500),
			TenureYears: 5, TenureKnown: true,
		},
		{
			ID: "C4", Name: "Dev Rao", Age: 29,
			Relationship: "Commercial", Gender: "Male", Advisor: "Evan Ko",
			RiskWeighting: 2, Loyalty: "Silver",
			EstimatedIncome: money(60000),
			BankDeposits:    money(3000),
			TotalAUM:        money(3000), BankLoans: money(1000),
			TenureYears: 2, TenureKnown: true,
		},
		{
			ID: "C5", Name: "Elle Sy", Age: 65,
			Relationship: "Private Bank", Gender: "Female", Advisor: "Fay Ng",
			RiskWeighting: 3, Loyalty: "Platinum",
			EstimatedIncome: money(300000),
			BankDeposits:    money(50000),
			TotalAUM:        money(50000),
			TenureYears:     20, TenureKnown: true,
		},
		{
			ID: "C6", Name: "Gus Ong", Age: 29,
			Relationship: "Retail", Gender: "Male", Advisor: "Dana Wu",
			RiskWeighting: 1, Loyalty: "Jade",
		},
	}
}

func testView() View { return NewSliceView(testClients()) }

// viewIDs extracts the client IDs in view order.
func viewIDs(view View) []string {
	ids := make([]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		ids = append(ids, view.Client(i).ID)
	}
	return ids
}
