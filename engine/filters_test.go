package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAllSpecSelectsEverything(t *testing.T) {
	view := testView()
	spec := Options(view).AllSpec()

	filtered := Apply(view, spec)

	assert.Equal(t, view.Len(), filtered.Len())
}

func TestApplyConjunction(t *testing.T) {
	view := testView()
	all := Options(view).AllSpec()

	tests := []struct {
		name    string
		mutate  func(*FilterSpec)
		wantIDs []string
	}{
		{
			name:    "single_relationship",
			mutate:  func(s *FilterSpec) { s.Relationships = []string{"Retail"} },
			wantIDs: []string{"C1", "C3", "C6"},
		},
		{
			name: "relationship_and_risk",
			mutate: func(s *FilterSpec) {
				s.Relationships = []string{"Retail"}
				s.RiskWeightings = []int{1}
			},
			wantIDs: []string{"C3", "C6"},
		},
		{
			name:    "loyalty_tiers",
			mutate:  func(s *FilterSpec) { s.Loyalty = []string{"Platinum"} },
			wantIDs: []string{"C2", "C5"},
		},
		{
			name:    "advisor",
			mutate:  func(s *FilterSpec) { s.Advisors = []string{"Evan Ko"} },
			wantIDs: []string{"C2", "C4"},
		},
		{
			name:    "age_range_inclusive_bounds",
			mutate:  func(s *FilterSpec) { s.MinAge, s.MaxAge = 29, 29 },
			wantIDs: []string{"C4", "C6"},
		},
		{
			name:    "labels_match_case_insensitively",
			mutate:  func(s *FilterSpec) { s.Relationships = []string{"retail", "PRIVATE BANK"} },
			wantIDs: []string{"C1", "C2", "C3", "C5", "C6"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := all
			tc.mutate(&spec)
			assert.Equal(t, tc.wantIDs, viewIDs(Apply(view, spec)))
		})
	}
}

func TestApplyEmptySelectionMatchesNothing(t *testing.T) {
	view := testView()
	spec := Options(view).AllSpec()
	spec.Advisors = nil

	assert.Zero(t, Apply(view, spec).Len(),
		"an empty selected set is a vacuous conjunction, not select-all")
}

func TestApplyIsIdempotent(t *testing.T) {
	view := testView()
	spec := Options(view).AllSpec()
	spec.Relationships = []string{"Retail"}

	once := Apply(view, spec)
	twice := Apply(once, spec)

	assert.Equal(t, viewIDs(once), viewIDs(twice))
}

func TestApplyDoesNotCopyClients(t *testing.T) {
	view := testView()
	spec := Options(view).AllSpec()
	spec.Relationships = []string{"Private Bank"}

	filtered := Apply(view, spec)

	require.Equal(t, 2, filtered.Len())
	assert.Equal(t, "C2", filtered.Client(0).ID)
	assert.Equal(t, "C5", filtered.Client(1).ID)
}

func TestOptions(t *testing.T) {
	opts := Options(testView())

	// Labels in first-seen order, risks sorted.
	assert.Equal(t, []string{"Retail", "Private Bank", "Commercial"}, opts.Relationships)
	assert.Equal(t, []string{"Dana Wu", "Evan Ko", "Fay Ng"}, opts.Advisors)
	assert.Equal(t, []string{"Gold", "Platinum", "Jade", "Silver"}, opts.Loyalties)
	assert.Equal(t, []int{1, 2, 3}, opts.RiskWeightings)
	assert.Equal(t, 29, opts.MinAge)
	assert.Equal(t, 65, opts.MaxAge)
}

func TestOptionsEmptyView(t *testing.T) {
	opts := Options(NewSliceView(nil))

	assert.Empty(t, opts.Relationships)
	assert.Zero(t, opts.MinAge)
	assert.Zero(t, opts.MaxAge)
}
