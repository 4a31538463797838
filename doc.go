// Package ledgerstat analyzes transaction ledgers shaped as a directed
// acyclic reference graph: every transaction references prior transactions
// as parents, rooted at a single origin.
//
// The module is organized as one package per pipeline stage:
//
//	parse/    — raw lines → typed records, tolerating malformed input
//	builder/  — records → arena-backed DAG with strict structural checks
//	validity/ — topological classification: Valid or Invalid for every node
//	stats/    — PCT VALID and AVG TX RATE with a fixed rounding policy
//	pipeline/ — the four stages threaded through one Run call
//	ledger/   — the shared Record/Graph/Validity types
//
// cmd/ledgerstat wraps the pipeline in a small CLI reading a file or stdin.
//
// The stages compose strictly in sequence; each owns its input outright, so
// there is no shared mutable state and no concurrency anywhere in a run.
package ledgerstat
