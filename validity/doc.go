// Package validity classifies every node of a built ledger graph as Valid or
// Invalid.
//
// Classify walks the DAG in a topological order (parents strictly before
// children, derived from a three-color depth-first traversal), so each node
// is evaluated exactly once and only after all of its parents carry a
// terminal tag. For every non-origin node, two checks apply in order:
//
//  1. Structural propagation: any Invalid parent makes the node Invalid.
//     A transaction built on an untrusted ancestor cannot be trusted,
//     whatever its own content says.
//  2. Local rule: otherwise a pure, sibling-order-independent Rule decides
//     from the node's record and its resolved parent records.
//
// The origin carries no content to violate and is Valid by definition.
//
// The local rule is configurable: NonNegative (the default, value must not be
// negative) and ParentCapped (value must not exceed the sum of parent values)
// are built in, selectable by name or from a YAML rule file via LoadRule.
//
// Errors:
//
//	ErrGraphNil      - nil graph passed to Classify.
//	ErrNoOrigin      - graph has no origin selected (not built by builder).
//	ErrCycleDetected - traversal looped; cannot happen on a builder-produced
//	                   graph, checked anyway so a hand-assembled graph fails
//	                   loudly instead of classifying garbage.
//	ErrUnknownRule   - rule name not recognized.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and link visited once)
//   - Memory: O(V)     (state slice and order slice)
package validity
