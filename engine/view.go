package engine

import "github.com/portlens-org/portlens/dataset"

// ============================================================================
// CLIENT VIEW — Zero-Copy Data Access
// ============================================================================
// The engine never owns the dataset. It reads the immutable merged table
// through this interface, and filtering produces SubViews (index lists into
// the parent) — no row is ever copied per interaction.
//
// Implementations:
//   SliceView — wraps the []dataset.Client from one load
//   SubView   — filtered subset (indices into parent)
// ============================================================================

// View provides indexed read access to a client table.
// Client is called in tight loops — keep implementations fast.
type View interface {
	Len() int
	Client(i int) dataset.Client
}

// ============================================================================
// SLICE VIEW
// ============================================================================

// SliceView wraps a client slice as a View.
type SliceView struct {
	clients []dataset.Client
}

// NewSliceView creates a View over a client slice. Zero-copy — holds the
// reference for the lifetime of the view.
func NewSliceView(clients []dataset.Client) View {
	return &SliceView{clients: clients}
}

func (v *SliceView) Len() int { return len(v.clients) }

func (v *SliceView) Client(i int) dataset.Client {
	if i < 0 || i >= len(v.clients) {
		return dataset.Client{}
	}
	return v.clients[i]
}

// ============================================================================
// SUB VIEW
// ============================================================================

// SubView is a filtered subset of a parent View.
// Holds indices into the parent — no data copy.
type SubView struct {
	parent  View
	indices []int
}

func newSubView(parent View, indices []int) View {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Client(i int) dataset.Client {
	if i < 0 || i >= len(v.indices) {
		return dataset.Client{}
	}
	return v.parent.Client(v.indices[i])
}
