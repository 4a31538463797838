// Package builder assembles parsed transaction records into a ledger.Graph,
// enforcing the structural invariants the rest of the pipeline depends on.
//
// Build consumes the full ordered record set and either returns a graph whose
// topology is known-good, or a fatal error. Unlike the per-line diagnostics in
// package parse, every builder failure aborts the run: a duplicate identifier,
// dangling parent reference, self-reference, cycle, or a ledger without
// exactly one origin corrupts the topology itself, not just one record.
//
// Guarantees on a successful Build:
//
//   - every identifier is unique and non-empty
//   - every parent reference resolves to an existing node
//   - no node references itself
//   - the reference graph is acyclic (so a topological order exists)
//   - exactly one node has zero parents, recorded as the graph origin
//
// Errors:
//
//	ErrDanglingParent  - a parent identifier never appears as a record id.
//	ErrSelfReference   - a record lists itself among its parents.
//	ErrCycle           - the parent-reference graph contains a cycle.
//	ErrNoOrigin        - no record has zero parents.
//	ErrMultipleOrigins - more than one record has zero parents.
//
// Duplicate and empty identifiers surface the ledger package sentinels
// ledger.ErrDuplicateID and ledger.ErrEmptyID.
//
// Complexity: O(V + E) time and memory.
package builder
