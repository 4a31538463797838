// Package parse turns raw ledger input into typed transaction records.
//
// Input is line-oriented: one transaction per line, fields in fixed order
//
//	id timestamp value parent_id...
//
// split on whitespace by default (WithSeparator switches to a single-rune
// delimiter). The record with zero parent fields is the ledger's origin.
//
// The parser never aborts the stream on a malformed line. Each bad line is
// reported as a RecordError carrying its line number and error kind, and
// parsing continues; blank and whitespace-only lines are skipped silently.
// Only a failure of the underlying reader is returned as a hard error.
//
// What:
//
//   - Records: read every line, returning well-formed ledger.Record values
//     plus the per-line RecordError diagnostics.
//
// Why:
//   - Ingestion must survive partially corrupt ledgers; one bad line must
//     never cost the rest of the file (skipped records are excluded from all
//     downstream statistics, not counted as invalid).
//
// Errors:
//
//	RecordError{KindFieldCount}   - fewer than three fields on the line
//	RecordError{KindEmptyID}      - identifier or parent field is empty
//	RecordError{KindBadTimestamp} - timestamp is not a base-10 integer
//	RecordError{KindBadValue}     - value is not a decimal number
//
// Complexity: O(total input length) time, O(records) memory.
package parse
