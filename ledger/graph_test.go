package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerdag/ledgerstat/ledger"
)

// rec builds a minimal record for arena tests.
func rec(id string, ts int64, parents ...string) ledger.Record {
	return ledger.Record{ID: id, Timestamp: ts, Value: decimal.NewFromInt(1), Parents: parents}
}

// TestGraph_AddEmptyID verifies that an empty identifier is rejected.
func TestGraph_AddEmptyID(t *testing.T) {
	g := ledger.NewGraph()
	_, err := g.Add(rec("", 0))
	assert.ErrorIs(t, err, ledger.ErrEmptyID)
}

// TestGraph_AddDuplicateID verifies that identifier reuse is rejected and the
// offending id is named in the error.
func TestGraph_AddDuplicateID(t *testing.T) {
	g := ledger.NewGraph()
	_, err := g.Add(rec("tx1", 0))
	require.NoError(t, err)

	_, err = g.Add(rec("tx1", 1))
	assert.ErrorIs(t, err, ledger.ErrDuplicateID)
	assert.Contains(t, err.Error(), "tx1")
}

// TestGraph_ConnectLinksBothWays checks that Connect records the parent link
// on the child and the child link on the parent.
func TestGraph_ConnectLinksBothWays(t *testing.T) {
	g := ledger.NewGraph()
	p, err := g.Add(rec("origin", 0))
	require.NoError(t, err)
	c, err := g.Add(rec("tx1", 1, "origin"))
	require.NoError(t, err)

	require.NoError(t, g.Connect(c, "origin"))
	assert.Equal(t, []int{p}, g.ParentsOf(c))
	assert.Equal(t, []int{c}, g.ChildrenOf(p))
}

// TestGraph_ConnectDangling verifies that an unknown parent id surfaces
// ErrNodeNotFound.
func TestGraph_ConnectDangling(t *testing.T) {
	g := ledger.NewGraph()
	c, err := g.Add(rec("tx1", 1, "ghost"))
	require.NoError(t, err)

	err = g.Connect(c, "ghost")
	assert.ErrorIs(t, err, ledger.ErrNodeNotFound)
	assert.Contains(t, err.Error(), "ghost")
}

// TestGraph_ConnectSelfLoop verifies that self-reference is rejected.
func TestGraph_ConnectSelfLoop(t *testing.T) {
	g := ledger.NewGraph()
	c, err := g.Add(rec("tx1", 1, "tx1"))
	require.NoError(t, err)

	assert.ErrorIs(t, g.Connect(c, "tx1"), ledger.ErrSelfLoop)
}

// TestGraph_SetValidityOnce ensures the validity transition is one-shot and
// only terminal tags are accepted.
func TestGraph_SetValidityOnce(t *testing.T) {
	g := ledger.NewGraph()
	i, err := g.Add(rec("tx1", 1))
	require.NoError(t, err)

	assert.Equal(t, ledger.Unvalidated, g.ValidityAt(i))
	assert.ErrorIs(t, g.SetValidity(i, ledger.Unvalidated), ledger.ErrNotTerminal)

	require.NoError(t, g.SetValidity(i, ledger.Valid))
	assert.Equal(t, ledger.Valid, g.ValidityAt(i))

	err = g.SetValidity(i, ledger.Invalid)
	assert.ErrorIs(t, err, ledger.ErrValidityFrozen)
	assert.Equal(t, ledger.Valid, g.ValidityAt(i))
}

// TestGraph_OriginUnsetByDefault checks the -1 sentinel before the builder
// selects an origin.
func TestGraph_OriginUnsetByDefault(t *testing.T) {
	g := ledger.NewGraph()
	assert.Equal(t, -1, g.Origin())
	assert.ErrorIs(t, g.SetOrigin(0), ledger.ErrNodeNotFound)
}

// TestGraph_AccessorCopies verifies that returned link slices are copies.
func TestGraph_AccessorCopies(t *testing.T) {
	g := ledger.NewGraph()
	_, err := g.Add(rec("origin", 0))
	require.NoError(t, err)
	c, err := g.Add(rec("tx1", 1, "origin"))
	require.NoError(t, err)
	require.NoError(t, g.Connect(c, "origin"))

	ps := g.ParentsOf(c)
	ps[0] = 99
	assert.Equal(t, []int{0}, g.ParentsOf(c))
}

// TestValidity_String covers the enum names.
func TestValidity_String(t *testing.T) {
	assert.Equal(t, "unvalidated", ledger.Unvalidated.String())
	assert.Equal(t, "valid", ledger.Valid.String())
	assert.Equal(t, "invalid", ledger.Invalid.String())
	assert.False(t, ledger.Unvalidated.Terminal())
	assert.True(t, ledger.Valid.Terminal())
	assert.True(t, ledger.Invalid.Terminal())
}
