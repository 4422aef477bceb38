package state_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/state"
)

// chain is the path 0→1→2→3 with edges of cost 2. When broken is set, the
// predecessor of 2 is forgotten.
type chain struct {
	id     int
	broken bool
}

func (c chain) Successors() []state.Edge[chain] {
	if c.id >= 3 {
		return nil
	}
	return []state.Edge[chain]{{Cost: 2, To: chain{id: c.id + 1, broken: c.broken}}}
}

func (c chain) Predecessors() []state.Edge[chain] {
	if c.id == 0 || (c.broken && c.id == 2) {
		return nil
	}
	return []state.Edge[chain]{{Cost: 2, To: chain{id: c.id - 1, broken: c.broken}}}
}

func sample(broken bool) []chain {
	return []chain{{0, broken}, {1, broken}, {2, broken}, {3, broken}}
}

func TestVerifyInverse_Consistent(t *testing.T) {
	require.NoError(t, state.VerifyInverse(sample(false)))
}

func TestVerifyInverse_MissingPredecessor(t *testing.T) {
	err := state.VerifyInverse(sample(true))
	require.Error(t, err)
	require.True(t, errors.Is(err, state.ErrNotInverse))

	var ie *state.InverseError[chain]
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 1, ie.From.id)
	assert.Equal(t, 2, ie.To.id)
	assert.Equal(t, int64(2), ie.Cost)
	assert.Equal(t, state.SideBackward, ie.Missing)
	assert.Contains(t, ie.Error(), "backward")
}

func TestVerifyInverseFunc_CostMismatch(t *testing.T) {
	// forward 0→1 costs 1, backward claims 1←0 costs 5.
	forward := state.Expander[int](func(n int) []state.Edge[int] {
		if n == 0 {
			return []state.Edge[int]{{Cost: 1, To: 1}}
		}
		return nil
	})
	backward := state.Expander[int](func(n int) []state.Edge[int] {
		if n == 1 {
			return []state.Edge[int]{{Cost: 5, To: 0}}
		}
		return nil
	})

	err := state.VerifyInverseFunc([]int{1}, forward, backward)
	var ie *state.InverseError[int]
	require.True(t, errors.As(err, &ie))
	// state 1 is sampled: its predecessor edge 0→1 (cost 5) has no forward twin.
	assert.Equal(t, 0, ie.From)
	assert.Equal(t, 1, ie.To)
	assert.Equal(t, int64(5), ie.Cost)
	assert.Equal(t, state.SideForward, ie.Missing)
}

func TestVerifyInverseFunc_Multiplicity(t *testing.T) {
	// Two parallel forward edges, a single backward edge.
	forward := state.Expander[int](func(n int) []state.Edge[int] {
		if n == 0 {
			return []state.Edge[int]{{Cost: 1, To: 1}, {Cost: 1, To: 1}}
		}
		return nil
	})
	backward := state.Expander[int](func(n int) []state.Edge[int] {
		if n == 1 {
			return []state.Edge[int]{{Cost: 1, To: 0}}
		}
		return nil
	})

	err := state.VerifyInverseFunc([]int{0}, forward, backward)
	require.ErrorIs(t, err, state.ErrNotInverse)
}

func TestForwardBackwardExpanders(t *testing.T) {
	fwd := state.Forward[chain]()
	bwd := state.Backward[chain]()

	assert.Equal(t, []state.Edge[chain]{{Cost: 2, To: chain{id: 2}}}, fwd(chain{id: 1}))
	assert.Equal(t, []state.Edge[chain]{{Cost: 2, To: chain{id: 0}}}, bwd(chain{id: 1}))
	assert.Empty(t, fwd(chain{id: 3}))
	assert.Empty(t, bwd(chain{id: 0}))
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "forward", state.SideForward.String())
	assert.Equal(t, "backward", state.SideBackward.String())
}
