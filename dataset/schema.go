package dataset

// ============================================================================
// SOURCE SCHEMA — Fixed column contract with the CSV exports
// ============================================================================
// The four sources carry fixed, named columns. Every required column —
// including the three join keys — is validated at load time so a renamed
// or dropped column fails at startup, not mid-aggregation.
// ============================================================================

// Client facts columns.
const (
	ColClientID        = "Client ID"
	ColName            = "Name"
	ColAge             = "Age"
	ColNationality     = "Nationality"
	ColOccupation      = "Occupation"
	ColEstimatedIncome = "Estimated Income"
	ColJoinedBank      = "Joined Bank"
	ColBankDeposits    = "Bank Deposits"
	ColChecking        = "Checking Accounts"
	ColSaving          = "Saving Accounts"
	ColForeignCurrency = "Foreign Currency Account"
	ColBusinessLending = "Business Lending"
	ColBankLoans       = "Bank Loans"
	ColRelationshipID  = "BRId"
	ColGenderID        = "GenderId"
	ColAdvisorID       = "IAId"
	ColRiskWeighting   = "Risk Weighting"
	ColLoyalty         = "Loyalty Classification"
)

// Dimension lookup columns.
const (
	ColRelationship = "Banking Relationship"
	ColGender       = "Gender"
	ColAdvisor      = "Investment Advisor"
)

// JoinDateLayout is the fixed day-month-year pattern of the Joined Bank
// column. Cells that do not parse with this layout yield an unknown tenure.
const JoinDateLayout = "02-01-2006"

// Default labels substituted when a foreign key has no match in its lookup.
// Joins are left-preserving: an unresolved key never drops the client row.
const (
	UnknownRelationship = "Unknown"
	UnspecifiedGender   = "Not Specified"
	UnassignedAdvisor   = "Unassigned"
)

// AssetColumns are the five balance columns that sum into total AUM.
// Bank Loans is liability-side and deliberately excluded.
var AssetColumns = []string{
	ColBankDeposits,
	ColChecking,
	ColSaving,
	ColForeignCurrency,
	ColBusinessLending,
}

// clientColumns is the full required-column set for the client facts source.
var clientColumns = []string{
	ColClientID, ColName, ColAge, ColNationality, ColOccupation,
	ColEstimatedIncome, ColJoinedBank,
	ColBankDeposits, ColChecking, ColSaving, ColForeignCurrency,
	ColBusinessLending, ColBankLoans,
	ColRelationshipID, ColGenderID, ColAdvisorID,
	ColRiskWeighting, ColLoyalty,
}
