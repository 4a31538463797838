package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/jessevdk/go-flags"

	"github.com/ledgerdag/ledgerstat/validity"
)

const (
	defaultRule     = validity.RuleNonNegative
	defaultLogLevel = "warn"
)

// config defines the command-line options for ledgerstat.
//
// See loadConfig for the parse process.
type config struct {
	Rule        string `long:"rule" description:"Local validity rule: non-negative or parent-capped"`
	RuleFile    string `long:"rulefile" description:"Path to a YAML rule file; takes precedence over --rule"`
	Separator   string `short:"s" long:"separator" description:"Single-character field separator (any whitespace when unset)"`
	LogLevel    string `short:"l" long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	Args        struct {
		Input string `positional-arg-name:"ledger-file" description:"Path to the ledger input file; stdin when omitted"`
	} `positional-args:"yes"`
}

// loadConfig parses command-line options into a config. go-flags prints its
// own usage and error messages, so callers only need the error to decide the
// exit path.
func loadConfig() (*config, error) {
	cfg := &config{
		Rule:     defaultRule,
		LogLevel: defaultLogLevel,
	}
	parser := flags.NewParser(cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		return nil, err
	}
	if cfg.Separator != "" && utf8.RuneCountInString(cfg.Separator) != 1 {
		return nil, fmt.Errorf("--separator must be a single character, got %q", cfg.Separator)
	}

	return cfg, nil
}
