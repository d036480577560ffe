package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================================
// FEATURE ENGINEERING — Derived columns on the client facts table
// ============================================================================
// Two derived columns, computed once at load:
//   TenureYears — elapsed years since the join date, relative to `now`
//   TotalAUM    — sum of the five balance columns, blanks already zeroed
// No other columns are altered.
// ============================================================================

// daysPerYear converts elapsed days to fractional years.
const daysPerYear = 365.25

// DeriveFeatures returns a new slice with TenureYears and TotalAUM filled.
// Clients without a parsable join date get TenureKnown=false; they are
// excluded from tenure means but still count in every count-based aggregate.
func DeriveFeatures(clients []Client, now time.Time) []Client {
	out := make([]Client, len(clients))
	for i, c := range clients {
		if c.HasJoinDate {
			days := now.Sub(c.JoinedBank).Hours() / 24
			c.TenureYears = days / daysPerYear
			c.TenureKnown = true
		}

		c.TotalAUM = decimal.Sum(
			c.BankDeposits,
			c.CheckingAccounts,
			c.SavingAccounts,
			c.ForeignCurrency,
			c.BusinessLending,
		)

		out[i] = c
	}
	return out
}
