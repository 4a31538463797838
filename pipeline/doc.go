// Package pipeline wires the four stages of a ledger run into one call:
// parse, build, classify, aggregate, strictly in that order.
//
// Each stage consumes the previous stage's complete output; nothing streams
// and nothing runs concurrently. All run state — the run identifier, the
// per-line diagnostics collected while parsing, the final summary — travels
// in the returned Report rather than in package globals, so every stage stays
// independently testable.
//
// Skipped records are diagnostics, not failures: Run succeeds as long as the
// surviving records form a well-shaped ledger. Structural defects (duplicate
// ids, dangling references, cycles, origin problems) and unreadable input
// abort the run with the underlying stage error.
//
// Logging uses a btclog.Logger and is disabled by default; install one with
// WithLogger to surface skipped-record warnings and stage progress.
package pipeline
