// Package validity: rule selection from a YAML document.
//
// The rule file is deliberately tiny:
//
//	rule: non-negative
//
// An empty document selects the default rule, so an empty file is a valid
// configuration.

package validity

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ruleConfig mirrors the YAML rule document.
type ruleConfig struct {
	Rule string `yaml:"rule"`
}

// LoadRule reads a YAML rule document from r and resolves the named rule.
// A document without a rule key yields the default NonNegative rule.
// Returns ErrUnknownRule for unrecognized names, or a wrapped decode error
// for malformed YAML.
func LoadRule(r io.Reader) (Rule, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("validity: read rule file: %w", err)
	}

	var cfg ruleConfig
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("validity: decode rule file: %w", err)
	}
	if cfg.Rule == "" {
		return NonNegative, nil
	}

	rule, err := RuleByName(cfg.Rule)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, cfg.Rule)
	}

	return rule, nil
}
