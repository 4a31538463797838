// Package validity: options, rule type, and sentinel errors.

package validity

import (
	"context"
	"errors"

	"github.com/ledgerdag/ledgerstat/ledger"
)

var (
	// ErrGraphNil is returned when a nil *ledger.Graph is passed to Classify.
	ErrGraphNil = errors.New("validity: graph is nil")

	// ErrNoOrigin indicates the graph has no origin node selected.
	ErrNoOrigin = errors.New("validity: graph has no origin")

	// ErrCycleDetected indicates the traversal encountered a cycle. A graph
	// produced by the builder cannot trigger this.
	ErrCycleDetected = errors.New("validity: cycle detected")

	// ErrUnknownRule indicates a rule name that matches no built-in rule.
	ErrUnknownRule = errors.New("validity: unknown rule")
)

// Rule is the ledger's local semantic check. It receives a node's own record
// and the records of its parents (all of which are already classified Valid
// when the rule runs) and reports whether the node's content is acceptable.
//
// A Rule must be a pure function of its arguments and must not depend on the
// order of the parents slice, so that evaluation order among independent
// siblings can never affect the outcome.
type Rule func(rec ledger.Record, parents []ledger.Record) bool

// Option configures optional behavior for Classify.
type Option func(*options)

// options holds resolved settings for a classification run.
type options struct {
	ctx  context.Context // allows cancellation; defaults to Background
	rule Rule            // local semantic rule; defaults to NonNegative
}

// defaultOptions returns the default settings (Background context,
// NonNegative rule).
func defaultOptions() options {
	return options{ctx: context.Background(), rule: NonNegative}
}

// WithRule returns an Option that installs r as the local semantic rule.
// Passing a nil rule has no effect (the default is retained).
func WithRule(r Rule) Option {
	return func(o *options) {
		if r != nil {
			o.rule = r
		}
	}
}

// WithCancelContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
