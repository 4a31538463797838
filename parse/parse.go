// Package parse: record scanning implementation.

package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerdag/ledgerstat/ledger"
)

// minFields is the mandatory field count: id, timestamp, value.
const minFields = 3

// Records reads every line of r and returns the well-formed transaction
// records alongside per-line diagnostics for the lines that were skipped.
// The returned error is non-nil only when the reader itself fails; malformed
// content never aborts the scan.
// Complexity: O(input length).
func Records(r io.Reader, options ...Option) ([]ledger.Record, []RecordError, error) {
	// 1. Resolve options
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	var (
		records []ledger.Record
		skipped []RecordError
	)

	// 2. Read line by line, counting every physical line for diagnostics.
	// bufio.Reader imposes no line-length cap, so a record with an
	// arbitrarily large parent list never aborts the run.
	reader := bufio.NewReader(r)
	line := 0
	for {
		raw, err := reader.ReadString('\n')
		if raw != "" {
			line++
			// 2a. Blank and whitespace-only lines are skipped silently
			if strings.TrimSpace(raw) != "" {
				// 2b. Parse one line; collect the record or the diagnostic
				rec, perr := parseLine(raw, line, opts)
				if perr != nil {
					skipped = append(skipped, *perr)
				} else {
					records = append(records, rec)
				}
			}
		}
		// 3. EOF ends the scan; any other reader failure is fatal to the run
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, nil, fmt.Errorf("parse: read input: %w", err)
		}
	}

	return records, skipped, nil
}

// parseLine converts one non-blank line into a Record, or reports why it
// cannot. Field order is fixed: id, timestamp, value, then zero or more
// parent identifiers.
func parseLine(raw string, line int, opts options) (ledger.Record, *RecordError) {
	fields := splitFields(raw, opts)
	if len(fields) < minFields {
		return ledger.Record{}, &RecordError{Line: line, Kind: KindFieldCount}
	}

	id := fields[0]
	if id == "" {
		return ledger.Record{}, &RecordError{Line: line, Kind: KindEmptyID}
	}

	ts, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return ledger.Record{}, &RecordError{Line: line, Kind: KindBadTimestamp, Token: fields[1]}
	}

	value, err := decimal.NewFromString(fields[2])
	if err != nil {
		return ledger.Record{}, &RecordError{Line: line, Kind: KindBadValue, Token: fields[2]}
	}

	var parents []string
	for _, p := range fields[minFields:] {
		if p == "" {
			return ledger.Record{}, &RecordError{Line: line, Kind: KindEmptyID}
		}
		parents = append(parents, p)
	}

	return ledger.Record{ID: id, Timestamp: ts, Value: value, Parents: parents}, nil
}

// splitFields tokenizes one line according to the configured separator.
// Whitespace mode never yields empty fields; separator mode trims each field
// and may yield empty ones, which the caller rejects.
func splitFields(raw string, opts options) []string {
	if opts.sep == 0 {
		return strings.Fields(raw)
	}

	parts := strings.Split(raw, string(opts.sep))
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
