package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ============================================================================
// LOADER — One-shot batch load of the four CSV sources
// ============================================================================
// Pipeline: ReadSources → DeriveFeatures → Join → Dataset.
// Each stage produces a new table; no stage mutates its input.
//
// Failure policy: a missing or unreadable file is a SourceNotFoundError and
// the caller must halt — no retries, no partial dashboard. Cell-level
// problems (blank balances, malformed dates, unmatched keys) normalize
// silently to defined defaults.
// ============================================================================

// Paths locates the four CSV sources.
type Paths struct {
	Clients       string
	Relationships string
	Genders       string
	Advisors      string
}

// SourceNotFoundError reports a source file that is missing or unreadable.
type SourceNotFoundError struct {
	Source string // logical source name, e.g. "clients"
	Path   string
	Err    error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source %s not found: %s: %v", e.Source, e.Path, e.Err)
}

func (e *SourceNotFoundError) Unwrap() error { return e.Err }

// Option configures the loader via functional options.
type Option func(*loader)

type loader struct {
	now time.Time
	log *zap.SugaredLogger
}

// WithReferenceTime fixes the "now" used for tenure computation.
// Defaults to the moment of load, so tenure differs across runs as time
// passes.
func WithReferenceTime(t time.Time) Option {
	return func(l *loader) { l.now = t }
}

// WithLogger attaches a logger to the load pipeline.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(l *loader) { l.log = log }
}

// Load reads, derives, and joins the four sources into one Dataset.
// This is the expensive one-shot call: do it once at process start and pass
// the resulting immutable Dataset by reference to every consumer.
func Load(paths Paths, opts ...Option) (*Dataset, error) {
	l := &loader{now: time.Now(), log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(l)
	}

	src, err := ReadSources(paths)
	if err != nil {
		return nil, err
	}
	l.log.Infof("📂 Loaded sources: %d clients, %d relationships, %d genders, %d advisors",
		len(src.Clients), len(src.Relationships), len(src.Genders), len(src.Advisors))

	derived := DeriveFeatures(src.Clients, l.now)
	merged := Join(derived, src)
	l.log.Infof("🔗 Merged table ready: %d rows", len(merged))

	return &Dataset{Clients: merged, LoadedAt: l.now}, nil
}

// ReadSources loads the four CSV files into memory without deriving or
// joining anything. Exposed separately so the stages can be tested and
// composed individually.
func ReadSources(paths Paths) (*Sources, error) {
	clients, err := readClients(paths.Clients)
	if err != nil {
		return nil, err
	}

	relationships, err := readLookup("relationships", paths.Relationships, ColRelationshipID, ColRelationship)
	if err != nil {
		return nil, err
	}
	genders, err := readLookup("genders", paths.Genders, ColGenderID, ColGender)
	if err != nil {
		return nil, err
	}
	advisors, err := readLookup("advisors", paths.Advisors, ColAdvisorID, ColAdvisor)
	if err != nil {
		return nil, err
	}

	return &Sources{
		Clients:       clients,
		Relationships: relationships,
		Genders:       genders,
		Advisors:      advisors,
	}, nil
}

// ============================================================================
// CLIENT FACTS
// ============================================================================

func readClients(path string) ([]Client, error) {
	rows, index, err := readTable("clients", path, clientColumns)
	if err != nil {
		return nil, err
	}

	clients := make([]Client, 0, len(rows))
	for _, row := range rows {
		cell := func(col string) string {
			i := index[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		c := Client{
			ID:              cell(ColClientID),
			Name:            cell(ColName),
			Age:             parseInt(cell(ColAge)),
			Nationality:     cell(ColNationality),
			Occupation:      cell(ColOccupation),
			EstimatedIncome: parseMoney(cell(ColEstimatedIncome)),

			BankDeposits:     parseMoney(cell(ColBankDeposits)),
			CheckingAccounts: parseMoney(cell(ColChecking)),
			SavingAccounts:   parseMoney(cell(ColSaving)),
			ForeignCurrency:  parseMoney(cell(ColForeignCurrency)),
			BusinessLending:  parseMoney(cell(ColBusinessLending)),
			BankLoans:        parseMoney(cell(ColBankLoans)),

			RelationshipID: cell(ColRelationshipID),
			GenderID:       cell(ColGenderID),
			AdvisorID:      cell(ColAdvisorID),

			RiskWeighting: parseInt(cell(ColRiskWeighting)),
			Loyalty:       cell(ColLoyalty),
		}

		// Unparsable dates become an unknown join date, never an error.
		if t, err := time.Parse(JoinDateLayout, cell(ColJoinedBank)); err == nil {
			c.JoinedBank = t
			c.HasJoinDate = true
		}

		clients = append(clients, c)
	}

	return clients, nil
}

// ============================================================================
// DIMENSION LOOKUPS
// ============================================================================

// readLookup reads a two-column id → label dimension table.
// Duplicate keys keep the first occurrence.
func readLookup(source, path, keyCol, labelCol string) (Lookup, error) {
	rows, index, err := readTable(source, path, []string{keyCol, labelCol})
	if err != nil {
		return nil, err
	}

	lookup := make(Lookup, len(rows))
	for _, row := range rows {
		ki, li := index[keyCol], index[labelCol]
		if ki >= len(row) || li >= len(row) {
			continue
		}
		key := strings.TrimSpace(row[ki])
		if key == "" {
			continue
		}
		if _, exists := lookup[key]; !exists {
			lookup[key] = strings.TrimSpace(row[li])
		}
	}

	return lookup, nil
}

// ============================================================================
// CSV PLUMBING
// ============================================================================

// readTable reads a CSV file, validates that every required column is
// present, and returns the data rows plus a column → index map.
func readTable(source, path string, required []string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &SourceNotFoundError{Source: source, Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, &SourceNotFoundError{Source: source, Path: path, Err: err}
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}

	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, nil, fmt.Errorf("source %s: missing required column %q in %s", source, col, path)
		}
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}

	return rows, index, nil
}

// parseMoney parses a monetary cell. Blank or malformed cells are zero —
// missing balances never propagate as undefined values.
func parseMoney(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
