// Package portlens provides a client portfolio analytics pipeline.
// Load once, filter fast, render anywhere.
//
// Usage:
//
//	ds, err := dataset.Load(paths)
//	view := engine.NewSliceView(ds.Clients)
//
//	result := engine.Execute(filterSpec, view,
//	    engine.WithTableLimit(500),
//	)
//
// The dataset package reads four CSV sources (client facts plus three
// dimension lookups), derives tenure and total AUM, and left-joins the
// lookups into one wide immutable client table. The engine takes a
// FilterSpec (built from UI widget state) and a view over that table,
// and returns render-ready output (KPI cards, chart configs, table data).
//
// The engine never touches the filesystem or any external service — all
// computation is local and side-effect free.
package portlens
