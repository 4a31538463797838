// Package ledger defines the central Record, Graph, and Validity types for a
// transaction DAG, and provides the arena-backed storage the rest of the
// pipeline operates on.
//
// A Graph owns every node for the lifetime of a run. Parent and child links
// are plain integer indexes into the arena, never pointers, so the whole
// structure is freed as a unit and no ownership cycles can form. The Graph is
// built once (by package builder), classified once (by package validity), and
// read-only thereafter.
//
// This file set declares Record, Validity, Graph, the mutator API used during
// construction, and sentinel errors.
//
// Errors:
//
//	ErrEmptyID         - record identifier is the empty string.
//	ErrDuplicateID     - a second record reuses an existing identifier.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrSelfLoop        - a record names itself as a parent.
//	ErrValidityFrozen  - a terminal validity tag was assigned twice.
//	ErrNotTerminal     - Unvalidated was passed where a terminal tag is required.
package ledger
