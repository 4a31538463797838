// Command ledgerstat reads a transaction ledger, classifies every
// transaction as valid or invalid, and prints the percentage of valid
// transactions and the average transaction rate.
//
// Exit codes: 0 on success (even when malformed lines were skipped), 1 on
// fatal errors (unreadable input, duplicate ids, dangling references,
// self-references, cycles, origin problems), 2 on bad usage.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/jessevdk/go-flags"

	"github.com/ledgerdag/ledgerstat/pipeline"
	"github.com/ledgerdag/ledgerstat/validity"
)

const version = "0.1.0"

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run())
}

// run carries the real main logic so deferred cleanup executes before the
// process exits with a status code.
func run() int {
	cfg, err := loadConfig()
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) {
			// go-flags already printed its own message
			if ferr.Type == flags.ErrHelp {
				return exitSuccess
			}

			return exitUsage
		}
		fmt.Fprintln(os.Stderr, err)

		return exitUsage
	}
	if cfg.ShowVersion {
		fmt.Println("ledgerstat version", version)

		return exitSuccess
	}

	// Diagnostics go to stderr; stdout carries only the two result lines.
	backend := btclog.NewBackend(os.Stderr)
	log := backend.Logger("LDGR")
	if lvl, ok := btclog.LevelFromString(cfg.LogLevel); ok {
		log.SetLevel(lvl)
	} else {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", cfg.LogLevel)

		return exitUsage
	}

	rule, err := resolveRule(cfg)
	if err != nil {
		log.Errorf("rule selection: %v", err)

		return exitFailure
	}

	in, closeIn, err := openInput(cfg.Args.Input)
	if err != nil {
		log.Errorf("input: %v", err)

		return exitFailure
	}
	defer closeIn()

	opts := []pipeline.Option{pipeline.WithLogger(log), pipeline.WithRule(rule)}
	if cfg.Separator != "" {
		opts = append(opts, pipeline.WithSeparator([]rune(cfg.Separator)[0]))
	}

	report, err := pipeline.Run(in, opts...)
	if err != nil {
		log.Errorf("run failed: %v", err)

		return exitFailure
	}

	fmt.Println(report.Summary)

	return exitSuccess
}

// resolveRule picks the local validity rule: a rule file wins over the
// --rule name.
func resolveRule(cfg *config) (validity.Rule, error) {
	if cfg.RuleFile != "" {
		f, err := os.Open(cfg.RuleFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return validity.LoadRule(f)
	}

	return validity.RuleByName(cfg.Rule)
}

// openInput returns the ledger input stream: the named file, or stdin when
// no path was given.
func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}
