package datagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portlens-org/portlens/dataset"
)

func TestGenerateProducesLoadableSources(t *testing.T) {
	dir := t.TempDir()

	files, err := Generate(Options{Clients: 50, Advisors: 4, Seed: 1, OutDir: dir})
	require.NoError(t, err)

	ds, err := dataset.Load(dataset.Paths{
		Clients:       files.Clients,
		Relationships: files.Relationships,
		Genders:       files.Genders,
		Advisors:      files.Advisors,
	})
	require.NoError(t, err)
	require.Len(t, ds.Clients, 50)

	for _, c := range ds.Clients {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.GreaterOrEqual(t, c.Age, 18)

		// Joins always resolve to a label, defaulted or not.
		assert.NotEmpty(t, c.Relationship)
		assert.NotEmpty(t, c.Gender)
		assert.NotEmpty(t, c.Advisor)

		assert.False(t, c.TotalAUM.IsNegative())
		assert.Contains(t, []int{1, 2, 3}, c.RiskWeighting)
	}
}

func TestGenerateDefaults(t *testing.T) {
	dir := t.TempDir()

	files, err := Generate(Options{OutDir: dir})
	require.NoError(t, err)

	ds, err := dataset.Load(dataset.Paths{
		Clients:       files.Clients,
		Relationships: files.Relationships,
		Genders:       files.Genders,
		Advisors:      files.Advisors,
	})
	require.NoError(t, err)
	assert.Len(t, ds.Clients, 300)
}
