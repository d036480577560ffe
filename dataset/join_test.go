package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinResolvesAllThreeDimensions(t *testing.T) {
	src := &Sources{
		Relationships: Lookup{"1": "Retail", "2": "Private Bank"},
		Genders:       Lookup{"1": "Male", "2": "Female"},
		Advisors:      Lookup{"1": "Dana Wu"},
	}
	clients := []Client{
		{ID: "C1", RelationshipID: "2", GenderID: "2", AdvisorID: "1"},
		{ID: "C2", RelationshipID: "99", GenderID: "1", AdvisorID: ""},
		{ID: "C3", RelationshipID: "1", GenderID: "", AdvisorID: "7"},
	}

	joined := Join(clients, src)

	// Left-preserving: unresolved keys never drop rows.
	require.Len(t, joined, len(clients))

	assert.Equal(t, "Private Bank", joined[0].Relationship)
	assert.Equal(t, "Female", joined[0].Gender)
	assert.Equal(t, "Dana Wu", joined[0].Advisor)

	assert.Equal(t, UnknownRelationship, joined[1].Relationship)
	assert.Equal(t, "Male", joined[1].Gender)
	assert.Equal(t, UnassignedAdvisor, joined[1].Advisor)

	assert.Equal(t, "Retail", joined[2].Relationship)
	assert.Equal(t, UnspecifiedGender, joined[2].Gender)
	assert.Equal(t, UnassignedAdvisor, joined[2].Advisor)
}

func TestJoinEmptyLabelFallsBack(t *testing.T) {
	src := &Sources{
		Relationships: Lookup{"1": ""},
		Genders:       Lookup{},
		Advisors:      Lookup{},
	}

	joined := Join([]Client{{RelationshipID: "1"}}, src)

	require.Len(t, joined, 1)
	assert.Equal(t, UnknownRelationship, joined[0].Relationship)
}

func TestJoinDoesNotMutateInput(t *testing.T) {
	src := &Sources{
		Relationships: Lookup{"1": "Retail"},
		Genders:       Lookup{},
		Advisors:      Lookup{},
	}
	in := []Client{{RelationshipID: "1"}}

	_ = Join(in, src)

	assert.Empty(t, in[0].Relationship)
}
