package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/portlens-org/portlens/dataset"
	"github.com/portlens-org/portlens/engine"
)

// ============================================================================
// INSPECT — Dataset shape and filter option discovery
// ============================================================================

var inspectPretty bool

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the loaded dataset shape and selectable filter values",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectPretty, "pretty", true, "Pretty-print the JSON output")
	rootCmd.AddCommand(inspectCmd)
}

type inspectOutput struct {
	Clients  int                  `json:"clients"`
	LoadedAt string               `json:"loadedAt"`
	Options  engine.FilterOptions `json:"options"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ds, err := dataset.Load(sourcePaths(cfg), dataset.WithLogger(log))
	if err != nil {
		var notFound *dataset.SourceNotFoundError
		if errors.As(err, &notFound) {
			fatalf("FATAL: one or more data files were not found. %v", notFound)
		}
		return err
	}

	view := engine.NewSliceView(ds.Clients)
	out := inspectOutput{
		Clients:  view.Len(),
		LoadedAt: ds.LoadedAt.Format("2006-01-02 15:04:05"),
		Options:  engine.Options(view),
	}
	return writeJSON(os.Stdout, out, inspectPretty)
}
