package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute()
// ============================================================================

// Option configures engine behavior via functional options.
type Option func(*config)

type config struct {
	Palette    []string // chart series colors
	TableLimit int      // max rows in the client listing, 0 = all
}

// WithPalette overrides the default chart color palette.
func WithPalette(colors []string) Option {
	return func(c *config) {
		if len(colors) > 0 {
			c.Palette = colors
		}
	}
}

// WithTableLimit caps the number of rows in the client listing.
// Totals in the table summary still cover every matched row.
func WithTableLimit(n int) Option {
	return func(c *config) { c.TableLimit = n }
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Palette: defaultColors,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
