package engine

import (
	"sort"
	"strings"
)

// ============================================================================
// FILTER ENGINE — Conjunctive predicate over six dimensions
// ============================================================================
// Single-pass filter: checks ALL constraints per client in one loop.
// Returns a SubView (index list into parent) — zero data copy.
// Pure: the same spec on the same view always yields the same rows.
// ============================================================================

// Apply returns a view of clients satisfying every constraint in the spec:
// relationship, advisor, and loyalty labels and the risk weighting must each
// be in their selected set, and age must fall inside [MinAge, MaxAge].
//
// Label matching is case-insensitive. An empty selected set matches nothing
// — the conjunction is vacuous, not "select all" — so a spec with any empty
// set yields an empty view regardless of the other selections.
func Apply(view View, spec FilterSpec) View {
	relationships := toLowerSet(spec.Relationships)
	advisors := toLowerSet(spec.Advisors)
	loyalty := toLowerSet(spec.Loyalty)

	risks := make(map[int]bool, len(spec.RiskWeightings))
	for _, r := range spec.RiskWeightings {
		risks[r] = true
	}

	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		c := view.Client(i)
		if !relationships[strings.ToLower(c.Relationship)] {
			continue
		}
		if !advisors[strings.ToLower(c.Advisor)] {
			continue
		}
		if !loyalty[strings.ToLower(c.Loyalty)] {
			continue
		}
		if !risks[c.RiskWeighting] {
			continue
		}
		if c.Age < spec.MinAge || c.Age > spec.MaxAge {
			continue
		}
		indices = append(indices, i)
	}

	return newSubView(view, indices)
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}

// ============================================================================
// FILTER OPTION DISCOVERY
// ============================================================================

// Options scans a view and returns every selectable value: distinct labels
// in first-seen order, sorted distinct risk weightings, and the observed age
// bounds. Feed the result to sidebar widgets, or call AllSpec for a
// select-everything FilterSpec.
func Options(view View) FilterOptions {
	opts := FilterOptions{}

	seenRel := make(map[string]bool)
	seenAdv := make(map[string]bool)
	seenLoy := make(map[string]bool)
	seenRisk := make(map[int]bool)

	for i := 0; i < view.Len(); i++ {
		c := view.Client(i)

		if !seenRel[c.Relationship] {
			seenRel[c.Relationship] = true
			opts.Relationships = append(opts.Relationships, c.Relationship)
		}
		if !seenAdv[c.Advisor] {
			seenAdv[c.Advisor] = true
			opts.Advisors = append(opts.Advisors, c.Advisor)
		}
		if !seenLoy[c.Loyalty] {
			seenLoy[c.Loyalty] = true
			opts.Loyalties = append(opts.Loyalties, c.Loyalty)
		}
		if !seenRisk[c.RiskWeighting] {
			seenRisk[c.RiskWeighting] = true
			opts.RiskWeightings = append(opts.RiskWeightings, c.RiskWeighting)
		}

		if i == 0 {
			opts.MinAge, opts.MaxAge = c.Age, c.Age
		} else {
			if c.Age < opts.MinAge {
				opts.MinAge = c.Age
			}
			if c.Age > opts.MaxAge {
				opts.MaxAge = c.Age
			}
		}
	}

	sort.Ints(opts.RiskWeightings)
	return opts
}
