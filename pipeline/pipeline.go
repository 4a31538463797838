// Package pipeline: run orchestration.

package pipeline

import (
	"io"

	"github.com/btcsuite/btclog"
	"github.com/google/uuid"

	"github.com/ledgerdag/ledgerstat/builder"
	"github.com/ledgerdag/ledgerstat/parse"
	"github.com/ledgerdag/ledgerstat/stats"
	"github.com/ledgerdag/ledgerstat/validity"
)

// Option configures optional behavior for Run.
type Option func(*options)

// options holds resolved pipeline settings.
type options struct {
	parseOpts []parse.Option
	ruleOpts  []validity.Option
	log       btclog.Logger
}

// defaultOptions returns the default settings: whitespace fields, default
// rule, logging disabled.
func defaultOptions() options {
	return options{log: btclog.Disabled}
}

// WithSeparator forwards a field separator to the parser.
func WithSeparator(sep rune) Option {
	return func(o *options) {
		o.parseOpts = append(o.parseOpts, parse.WithSeparator(sep))
	}
}

// WithRule installs the local semantic rule used by the validity engine.
// Passing nil has no effect.
func WithRule(r validity.Rule) Option {
	return func(o *options) {
		if r != nil {
			o.ruleOpts = append(o.ruleOpts, validity.WithRule(r))
		}
	}
}

// WithLogger installs a logger for run diagnostics. Passing nil has no
// effect (logging stays disabled).
func WithLogger(log btclog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Report is the explicit run-state structure threaded out of a pipeline run.
type Report struct {
	// RunID uniquely identifies this invocation in diagnostics.
	RunID uuid.UUID

	// Parsed is the number of well-formed records ingested.
	Parsed int

	// Skipped lists the malformed lines that were excluded from the run.
	// They count toward neither statistic.
	Skipped []parse.RecordError

	// Summary carries the two derived statistics.
	Summary stats.Summary
}

// Run executes one full ledger computation over r.
// The returned error is fatal (unreadable input or a structural graph
// defect); skipped records alone never fail a run.
func Run(r io.Reader, options ...Option) (*Report, error) {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	report := &Report{RunID: uuid.New()}
	opts.log.Debugf("run %s: starting", report.RunID)

	// 1. Parse: per-line failures become diagnostics, reader failure is fatal
	records, skipped, err := parse.Records(r, opts.parseOpts...)
	if err != nil {
		return nil, err
	}
	report.Parsed = len(records)
	report.Skipped = skipped
	for _, sk := range skipped {
		opts.log.Warnf("run %s: skipped record: %v", report.RunID, sk)
	}

	// 2. Build the graph; all builder errors are fatal
	g, err := builder.Build(records)
	if err != nil {
		return nil, err
	}
	opts.log.Debugf("run %s: graph built: %d nodes", report.RunID, g.Len())

	// 3. Classify every node
	if err = validity.Classify(g, opts.ruleOpts...); err != nil {
		return nil, err
	}

	// 4. Aggregate
	report.Summary, err = stats.Compute(g)
	if err != nil {
		return nil, err
	}
	opts.log.Infof("run %s: %d parsed, %d skipped, %d/%d valid",
		report.RunID, report.Parsed, len(report.Skipped),
		report.Summary.Valid, report.Summary.Total)

	return report, nil
}
