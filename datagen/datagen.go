package datagen

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"

	"github.com/portlens-org/portlens/dataset"
)

// ============================================================================
// DATAGEN — Sample CSV sources for demos and integration tests
// ============================================================================
// Generates the four source files with realistic shapes, including the rough
// edges the pipeline has to absorb: blank balances, malformed join dates,
// and foreign keys with no lookup match.
// ============================================================================

// ── Categorical pools ──

var relationshipPool = []string{
	"Retail", "Commercial", "Private Bank", "Institutional",
}

var loyaltyPool = []string{"Jade", "Silver", "Gold", "Platinum"}

var nationalityPool = []string{
	"American", "British", "German", "French", "Singaporean",
	"Indian", "Australian", "Canadian", "Japanese", "Brazilian",
}

var occupationPool = []string{
	"Engineer", "Physician", "Teacher", "Accountant", "Lawyer",
	"Entrepreneur", "Architect", "Pharmacist", "Consultant", "Pilot",
	"Nurse", "Professor", "Sales Manager", "Civil Servant",
}

var genderLabels = []string{"Male", "Female"}

// Options controls generation.
type Options struct {
	// Clients is the number of client fact rows. Defaults to 300.
	Clients int
	// Advisors is the number of advisor rows. Defaults to 8.
	Advisors int
	// Seed drives the numeric and categorical draws so runs reproduce.
	Seed int64
	// OutDir receives the four CSV files.
	OutDir string
}

// Files names the generated sources inside OutDir.
type Files struct {
	Clients       string
	Relationships string
	Genders       string
	Advisors      string
}

// Generate writes the four sample CSV sources and returns their paths.
func Generate(opt Options) (*Files, error) {
	if opt.Clients <= 0 {
		opt.Clients = 300
	}
	if opt.Advisors <= 0 {
		opt.Advisors = 8
	}
	if opt.OutDir == "" {
		opt.OutDir = "datasets"
	}
	if err := os.MkdirAll(opt.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	rng := rand.New(rand.NewSource(opt.Seed))

	files := &Files{
		Clients:       filepath.Join(opt.OutDir, "banking-clients.csv"),
		Relationships: filepath.Join(opt.OutDir, "banking-relationships.csv"),
		Genders:       filepath.Join(opt.OutDir, "gender.csv"),
		Advisors:      filepath.Join(opt.OutDir, "investment-advisors.csv"),
	}

	advisors := make([]string, opt.Advisors)
	for i := range advisors {
		advisors[i] = faker.Name()
	}

	if err := writeLookup(files.Relationships, dataset.ColRelationshipID, dataset.ColRelationship, relationshipPool); err != nil {
		return nil, err
	}
	if err := writeLookup(files.Genders, dataset.ColGenderID, dataset.ColGender, genderLabels); err != nil {
		return nil, err
	}
	if err := writeLookup(files.Advisors, dataset.ColAdvisorID, dataset.ColAdvisor, advisors); err != nil {
		return nil, err
	}
	if err := writeClients(files.Clients, opt, rng, len(advisors)); err != nil {
		return nil, err
	}

	return files, nil
}

// writeLookup writes a two-column dimension table with 1-based ids.
func writeLookup(path, keyCol, labelCol string, labels []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{keyCol, labelCol}); err != nil {
		return err
	}
	for i, label := range labels {
		if err := w.Write([]string{fmt.Sprintf("%d", i+1), label}); err != nil {
			return err
		}
	}
	return w.Error()
}

func writeClients(path string, opt Options, rng *rand.Rand, advisorCount int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		dataset.ColClientID, dataset.ColName, dataset.ColAge,
		dataset.ColNationality, dataset.ColOccupation, dataset.ColEstimatedIncome,
		dataset.ColJoinedBank,
		dataset.ColBankDeposits, dataset.ColChecking, dataset.ColSaving,
		dataset.ColForeignCurrency, dataset.ColBusinessLending, dataset.ColBankLoans,
		dataset.ColRelationshipID, dataset.ColGenderID, dataset.ColAdvisorID,
		dataset.ColRiskWeighting, dataset.ColLoyalty,
	}
	if err := w.Write(header); err != nil {
		return err
	}

	now := time.Now()
	for i := 0; i < opt.Clients; i++ {
		joined := now.AddDate(0, 0, -rng.Intn(365*25))
		joinCell := joined.Format(dataset.JoinDateLayout)
		if rng.Float64() < 0.02 {
			joinCell = "pending" // malformed on purpose
		}

		relID := fmt.Sprintf("%d", 1+rng.Intn(len(relationshipPool)))
		if rng.Float64() < 0.03 {
			relID = "99" // no lookup match
		}

		row := []string{
			uuid.NewString(),
			faker.Name(),
			fmt.Sprintf("%d", 18+rng.Intn(68)),
			pick(rng, nationalityPool),
			pick(rng, occupationPool),
			money(rng, 25_000, 400_000),
			joinCell,
			maybeMoney(rng, 0, 500_000),
			maybeMoney(rng, 0, 120_000),
			maybeMoney(rng, 0, 250_000),
			maybeMoney(rng, 0, 80_000),
			maybeMoney(rng, 0, 600_000),
			maybeMoney(rng, 0, 350_000),
			relID,
			fmt.Sprintf("%d", 1+rng.Intn(len(genderLabels))),
			fmt.Sprintf("%d", 1+rng.Intn(advisorCount)),
			fmt.Sprintf("%d", 1+rng.Intn(3)),
			pick(rng, loyaltyPool),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

func money(rng *rand.Rand, lo, hi int) string {
	v := float64(lo) + rng.Float64()*float64(hi-lo)
	return fmt.Sprintf("%.2f", v)
}

// maybeMoney leaves ~5% of cells blank so loads exercise the null-as-zero
// path.
func maybeMoney(rng *rand.Rand, lo, hi int) string {
	if rng.Float64() < 0.05 {
		return ""
	}
	return money(rng, lo, hi)
}
