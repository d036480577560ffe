package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/portlens-org/portlens/dataset"
	"github.com/portlens-org/portlens/engine"
)

// ============================================================================
// RENDER — Load once, filter, emit the dashboard payload
// ============================================================================

var (
	flagRelationships []string
	flagAdvisors      []string
	flagLoyalty       []string
	flagRisks         []int
	flagMinAge        int
	flagMaxAge        int
	flagFormat        string
	flagOut           string
	flagTableLimit    int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Evaluate the dashboard for a filtered client segment",
	Long: `Load the four CSV sources, apply the filter flags, and emit the
dashboard payload. A filter flag left empty selects every observed value
for that dimension, matching a sidebar with everything checked.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringSliceVar(&flagRelationships, "relationship", nil, "Banking relationship labels to include (default: all)")
	renderCmd.Flags().StringSliceVar(&flagAdvisors, "advisor", nil, "Investment advisor names to include (default: all)")
	renderCmd.Flags().StringSliceVar(&flagLoyalty, "loyalty", nil, "Loyalty tiers to include (default: all)")
	renderCmd.Flags().IntSliceVar(&flagRisks, "risk", nil, "Risk weightings to include, 1=low 3=high (default: all)")
	renderCmd.Flags().IntVar(&flagMinAge, "min-age", -1, "Minimum age, inclusive (default: observed minimum)")
	renderCmd.Flags().IntVar(&flagMaxAge, "max-age", -1, "Maximum age, inclusive (default: observed maximum)")
	renderCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: json, pretty, text, csv")
	renderCmd.Flags().StringVar(&flagOut, "out", "", "Write output to file instead of stdout")
	renderCmd.Flags().IntVar(&flagTableLimit, "table-limit", -1, "Max rows in the client listing, 0 = all")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	// One-shot batch load. A missing source is fatal: no partial dashboard.
	ds, err := dataset.Load(sourcePaths(cfg), dataset.WithLogger(log))
	if err != nil {
		var notFound *dataset.SourceNotFoundError
		if errors.As(err, &notFound) {
			fatalf("FATAL: one or more data files were not found. %v", notFound)
		}
		return err
	}

	view := engine.NewSliceView(ds.Clients)
	opts := engine.Options(view)
	spec := buildSpec(opts)

	format := flagFormat
	if format == "" {
		format = cfg.Render.Format
	}
	tableLimit := flagTableLimit
	if tableLimit < 0 {
		tableLimit = cfg.Render.TableLimit
	}

	result := engine.Execute(spec, view, engine.WithTableLimit(tableLimit))
	log.Infof("📊 Rendered: %d of %d clients matched", result.Matched, result.Universe)

	writer := os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	switch format {
	case "csv":
		return writeTableCSV(writer, result.Table)
	case "text":
		fmt.Fprintln(writer, engine.BuildSummaryText(result))
		return nil
	case "pretty":
		return writeJSON(writer, result, true)
	case "json", "":
		return writeJSON(writer, result, false)
	default:
		return fmt.Errorf("unknown format %q (want json, pretty, text, or csv)", format)
	}
}

// buildSpec turns flag state into a FilterSpec. An empty flag selects every
// observed value for that dimension.
func buildSpec(opts engine.FilterOptions) engine.FilterSpec {
	spec := opts.AllSpec()
	if len(flagRelationships) > 0 {
		spec.Relationships = flagRelationships
	}
	if len(flagAdvisors) > 0 {
		spec.Advisors = flagAdvisors
	}
	if len(flagLoyalty) > 0 {
		spec.Loyalty = flagLoyalty
	}
	if len(flagRisks) > 0 {
		spec.RiskWeightings = flagRisks
	}
	if flagMinAge >= 0 {
		spec.MinAge = flagMinAge
	}
	if flagMaxAge >= 0 {
		spec.MaxAge = flagMaxAge
	}
	return spec
}

// ============================================================================
// OUTPUT WRITERS
// ============================================================================

// writeTableCSV emits the client listing as CSV, ready for Sheets/Excel.
func writeTableCSV(w *os.File, table *engine.TableData) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if table == nil {
		return cw.Write([]string{"Result", "No data"})
	}

	headers := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		headers = append(headers, col.Label)
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

func writeJSON(w *os.File, v interface{}, pretty bool) error {
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
