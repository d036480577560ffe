package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================================
// CLIENT — One row of the wide analytical table
// ============================================================================
// Monetary columns use shopspring/decimal so balance sums stay exact.
// Derived fields (TenureYears, TotalAUM) are computed once at load; the
// joined labels are filled by the join engine. After Load returns, a
// Client is read-only for the process lifetime.
// ============================================================================

// Client is a single client fact row plus derived columns and joined labels.
type Client struct {
	ID              string
	Name            string
	Age             int
	Nationality     string
	Occupation      string
	EstimatedIncome decimal.Decimal

	// JoinedBank is the parsed join date; HasJoinDate is false when the
	// source cell was blank or unparsable.
	JoinedBank  time.Time
	HasJoinDate bool

	BankDeposits     decimal.Decimal
	CheckingAccounts decimal.Decimal
	SavingAccounts   decimal.Decimal
	ForeignCurrency  decimal.Decimal
	BusinessLending  decimal.Decimal
	BankLoans        decimal.Decimal

	RelationshipID string
	GenderID       string
	AdvisorID      string

	RiskWeighting int // ordinal 1–3
	Loyalty       string

	// Derived at load.
	TenureYears float64
	TenureKnown bool
	TotalAUM    decimal.Decimal

	// Filled by the join engine. Never empty after Join: unresolved keys
	// carry the default labels from schema.go.
	Relationship string
	Gender       string
	Advisor      string
}

// AssetValue returns the balance held in one of the five AUM asset columns.
// Unrecognized column names return zero.
func (c Client) AssetValue(column string) decimal.Decimal {
	switch column {
	case ColBankDeposits:
		return c.BankDeposits
	case ColChecking:
		return c.CheckingAccounts
	case ColSaving:
		return c.SavingAccounts
	case ColForeignCurrency:
		return c.ForeignCurrency
	case ColBusinessLending:
		return c.BusinessLending
	}
	return decimal.Zero
}

// Lookup maps a surrogate key to its display label.
type Lookup map[string]string

// Sources holds the four loaded tables before joining.
type Sources struct {
	Clients       []Client
	Relationships Lookup
	Genders       Lookup
	Advisors      Lookup
}

// Dataset is the merged analytical table. Loaded once at process start and
// passed by reference to every consumer; never mutated after creation.
type Dataset struct {
	Clients  []Client
	LoadedAt time.Time
}
