// Package ledger: core data types for the transaction DAG.
//
// This file declares Validity, Record, Graph, and the package sentinel errors.
// Storage and traversal methods live in graph.go.

package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Sentinel errors for ledger graph operations.
var (
	// ErrEmptyID indicates that a Record carries an empty identifier.
	ErrEmptyID = errors.New("ledger: record ID is empty")

	// ErrDuplicateID indicates a second record reused an existing identifier.
	ErrDuplicateID = errors.New("ledger: duplicate record ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("ledger: node not found")

	// ErrSelfLoop indicates a record named itself as one of its parents.
	ErrSelfLoop = errors.New("ledger: record references itself")

	// ErrValidityFrozen indicates an attempt to overwrite a terminal validity tag.
	ErrValidityFrozen = errors.New("ledger: validity already terminal")

	// ErrNotTerminal indicates Unvalidated was supplied where Valid or Invalid
	// is required.
	ErrNotTerminal = errors.New("ledger: validity tag is not terminal")
)

// Validity is the tri-state classification of a node.
//
// Every node starts Unvalidated and is moved exactly once to one of the two
// terminal states by the validity engine. Aggregation rejects graphs that
// still contain Unvalidated nodes.
type Validity uint8

const (
	// Unvalidated is the initial state of every node.
	Unvalidated Validity = iota

	// Valid marks a node whose content passed the local rule and whose
	// parents are all Valid.
	Valid

	// Invalid marks a node that failed the local rule or inherits
	// invalidity from an ancestor.
	Invalid
)

// Terminal reports whether v is one of the two final states.
func (v Validity) Terminal() bool { return v == Valid || v == Invalid }

// String returns a human-readable name for v.
func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unvalidated"
	}
}

// Record is one parsed transaction: the raw unit the parser emits and the
// builder assembles into a Graph.
//
// ID uniquely identifies the transaction within its ledger. Timestamp is an
// opaque numeric tick used only for rate computation, never for validity
// ordering. Value is the signed transaction amount. Parents lists the
// identifiers of prior transactions this one references; it is empty only for
// the origin record.
type Record struct {
	// ID is the unique identifier for this transaction.
	ID string

	// Timestamp is the transaction's numeric time value.
	Timestamp int64

	// Value is the signed transaction amount.
	Value decimal.Decimal

	// Parents holds referenced parent identifiers, in input order.
	Parents []string
}

// node is a graph-resident entry: it owns its Record and carries resolved
// index-based links plus the mutable validity tag.
type node struct {
	rec      Record
	parents  []int // indexes of parent nodes in the arena
	children []int // indexes of child nodes in the arena
	validity Validity
}

// Graph is the arena of ledger nodes.
//
// Nodes are addressed by their insertion index; the id index maps record
// identifiers onto arena slots. origin is the index of the unique
// zero-parent node, or -1 until the builder selects it. Graph is not safe
// for concurrent mutation; the pipeline is single-threaded by design.
type Graph struct {
	nodes  []node
	index  map[string]int // record ID → arena index
	origin int
}

// NewGraph returns an empty Graph with no origin selected.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		index:  make(map[string]int),
		origin: -1,
	}
}
