// Package builder: sentinel errors for graph construction.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site;
//     Build attaches the offending identifier(s) via %w wrapping.

package builder

import "errors"

// ErrDanglingParent indicates a record referenced a parent identifier that
// never appears as any record's id.
// Usage: if errors.Is(err, ErrDanglingParent) { /* report broken reference */ }.
var ErrDanglingParent = errors.New("builder: dangling parent reference")

// ErrSelfReference indicates a record listed its own identifier as a parent.
// Usage: if errors.Is(err, ErrSelfReference) { /* report self-reference */ }.
var ErrSelfReference = errors.New("builder: record references itself")

// ErrCycle indicates the parent-reference graph is not acyclic. The wrapped
// message names a node on the cycle.
// Usage: if errors.Is(err, ErrCycle) { /* ledger is not a DAG */ }.
var ErrCycle = errors.New("builder: cycle in parent references")

// ErrNoOrigin indicates no record has zero parents, so the ledger lacks a
// root.
var ErrNoOrigin = errors.New("builder: no origin record")

// ErrMultipleOrigins indicates more than one record has zero parents; the
// ledger's root is ambiguous and the run must not silently pick one.
var ErrMultipleOrigins = errors.New("builder: multiple origin records")
