package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/portlens-org/portlens/dataset"
)

func TestSliceView(t *testing.T) {
	clients := []dataset.Client{{ID: "C1"}, {ID: "C2"}}
	view := NewSliceView(clients)

	assert.Equal(t, 2, view.Len())
	assert.Equal(t, "C1", view.Client(0).ID)
	assert.Equal(t, "C2", view.Client(1).ID)

	// Out-of-range access yields a zero Client, never a panic.
	assert.Empty(t, view.Client(-1).ID)
	assert.Empty(t, view.Client(2).ID)
}

func TestSubViewIndexesIntoParent(t *testing.T) {
	parent := NewSliceView([]dataset.Client{{ID: "C1"}, {ID: "C2"}, {ID: "C3"}})
	sub := newSubView(parent, []int{2, 0})

	assert.Equal(t, 2, sub.Len())
	assert.Equal(t, "C3", sub.Client(0).ID)
	assert.Equal(t, "C1", sub.Client(1).ID)
	assert.Empty(t, sub.Client(5).ID)
}

func TestNestedSubViews(t *testing.T) {
	parent := NewSliceView([]dataset.Client{{ID: "C1"}, {ID: "C2"}, {ID: "C3"}, {ID: "C4"}})
	outer := newSubView(parent, []int{1, 2, 3})
	inner := newSubView(outer, []int{0, 2})

	assert.Equal(t, []string{"C2", "C4"}, viewIDs(inner))
}
