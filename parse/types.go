// Package parse: diagnostic types and options for record parsing.

package parse

import "fmt"

// Kind classifies why a single input line failed to parse.
type Kind uint8

const (
	// KindFieldCount marks a line with fewer than the three mandatory fields.
	KindFieldCount Kind = iota + 1

	// KindEmptyID marks a line whose identifier or parent field is empty.
	KindEmptyID

	// KindBadTimestamp marks a non-integer timestamp field.
	KindBadTimestamp

	// KindBadValue marks a value field that is not a decimal number.
	KindBadValue
)

// String returns a short name for the error kind.
func (k Kind) String() string {
	switch k {
	case KindFieldCount:
		return "field count"
	case KindEmptyID:
		return "empty identifier"
	case KindBadTimestamp:
		return "bad timestamp"
	case KindBadValue:
		return "bad value"
	default:
		return "unknown"
	}
}

// RecordError describes one malformed input line. It is a diagnostic, not a
// run-fatal error: the offending line is skipped and parsing continues.
type RecordError struct {
	// Line is the 1-based input line number.
	Line int

	// Kind is the failure classification.
	Kind Kind

	// Token is the offending field content, when one field is to blame.
	Token string
}

// Error implements the error interface.
func (e RecordError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parse: line %d: %s", e.Line, e.Kind)
	}

	return fmt.Sprintf("parse: line %d: %s (%q)", e.Line, e.Kind, e.Token)
}

// Option configures optional parsing behavior.
type Option func(*options)

// options holds resolved parser settings.
type options struct {
	sep rune // field separator; 0 means any run of whitespace
}

// defaultOptions returns the default settings (whitespace-separated fields).
func defaultOptions() options {
	return options{sep: 0}
}

// WithSeparator returns an Option that splits fields on the single rune sep
// instead of whitespace. Fields are trimmed of surrounding whitespace, so
// "a, 1, 5" parses the same as "a,1,5". A zero rune has no effect.
func WithSeparator(sep rune) Option {
	return func(o *options) {
		if sep != 0 {
			o.sep = sep
		}
	}
}
