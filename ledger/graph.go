// Package ledger: Graph method implementations.
//
// This file provides the O(1) arena operations used by the builder during
// construction (Add, Connect, SetOrigin) and the read-only accessors the
// validity engine and aggregator rely on afterwards. Links are stored as
// integer indexes both ways (parents and children), so downstream traversal
// never consults the id index.

package ledger

import "fmt"

// Add appends a new node owning rec to the arena and returns its index.
// Returns ErrEmptyID if the record identifier is empty, or ErrDuplicateID
// (annotated with the identifier) if the identifier is already present.
// Complexity: O(1) amortized.
func (g *Graph) Add(rec Record) (int, error) {
	// Validate input: empty IDs are not allowed
	if rec.ID == "" {
		return 0, ErrEmptyID
	}
	// Reject reuse of an existing identifier
	if _, exists := g.index[rec.ID]; exists {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateID, rec.ID)
	}

	idx := len(g.nodes)
	g.nodes = append(g.nodes, node{rec: rec})
	g.index[rec.ID] = idx

	return idx, nil
}

// Connect resolves parentID and links it as a parent of the node at child.
// The reverse (child) link is recorded on the parent at the same time.
// Returns ErrNodeNotFound if child is out of range or parentID is unknown,
// and ErrSelfLoop if parentID names the child itself.
// Complexity: O(1).
func (g *Graph) Connect(child int, parentID string) error {
	if child < 0 || child >= len(g.nodes) {
		return ErrNodeNotFound
	}
	if g.nodes[child].rec.ID == parentID {
		return fmt.Errorf("%w: %q", ErrSelfLoop, parentID)
	}
	parent, exists := g.index[parentID]
	if !exists {
		return fmt.Errorf("%w: parent %q", ErrNodeNotFound, parentID)
	}

	g.nodes[child].parents = append(g.nodes[child].parents, parent)
	g.nodes[parent].children = append(g.nodes[parent].children, child)

	return nil
}

// SetOrigin records idx as the graph's distinguished origin node.
// Returns ErrNodeNotFound if idx is out of range.
// Complexity: O(1).
func (g *Graph) SetOrigin(idx int) error {
	if idx < 0 || idx >= len(g.nodes) {
		return ErrNodeNotFound
	}
	g.origin = idx

	return nil
}

// Len returns the total number of nodes in the arena, origin included.
func (g *Graph) Len() int { return len(g.nodes) }

// Origin returns the arena index of the origin node, or -1 if none was set.
func (g *Graph) Origin() int { return g.origin }

// IndexOf returns the arena index of the node with the given identifier.
// The boolean reports whether the identifier exists.
// Complexity: O(1).
func (g *Graph) IndexOf(id string) (int, bool) {
	idx, ok := g.index[id]

	return idx, ok
}

// RecordAt returns a copy of the record stored at idx.
// Returns ErrNodeNotFound if idx is out of range.
func (g *Graph) RecordAt(idx int) (Record, error) {
	if idx < 0 || idx >= len(g.nodes) {
		return Record{}, ErrNodeNotFound
	}

	return g.nodes[idx].rec, nil
}

// ParentsOf returns the parent indexes of the node at idx, in input order.
// The slice is a copy; mutating it does not affect the graph.
// Complexity: O(deg).
func (g *Graph) ParentsOf(idx int) []int {
	if idx < 0 || idx >= len(g.nodes) {
		return nil
	}

	return append([]int(nil), g.nodes[idx].parents...)
}

// ChildrenOf returns the child indexes of the node at idx.
// The slice is a copy; mutating it does not affect the graph.
// Complexity: O(deg).
func (g *Graph) ChildrenOf(idx int) []int {
	if idx < 0 || idx >= len(g.nodes) {
		return nil
	}

	return append([]int(nil), g.nodes[idx].children...)
}

// ValidityAt returns the validity tag of the node at idx, or Unvalidated for
// an out-of-range index.
func (g *Graph) ValidityAt(idx int) Validity {
	if idx < 0 || idx >= len(g.nodes) {
		return Unvalidated
	}

	return g.nodes[idx].validity
}

// SetValidity assigns the terminal tag v to the node at idx.
// The transition is one-shot: returns ErrValidityFrozen if the node already
// carries a terminal tag, ErrNotTerminal if v is Unvalidated, and
// ErrNodeNotFound if idx is out of range.
// Complexity: O(1).
func (g *Graph) SetValidity(idx int, v Validity) error {
	if idx < 0 || idx >= len(g.nodes) {
		return ErrNodeNotFound
	}
	if !v.Terminal() {
		return ErrNotTerminal
	}
	if g.nodes[idx].validity.Terminal() {
		return fmt.Errorf("%w: %q", ErrValidityFrozen, g.nodes[idx].rec.ID)
	}
	g.nodes[idx].validity = v

	return nil
}
