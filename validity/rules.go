// Package validity: built-in local semantic rules.
//
// Both rules are pure functions of the record and its parent records, and
// both reduce the parent slice through commutative operations only, so they
// satisfy the order-independence contract of the Rule type.

package validity

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerdag/ledgerstat/ledger"
)

// Canonical rule names, as accepted by RuleByName and the YAML rule file.
const (
	RuleNonNegative  = "non-negative"
	RuleParentCapped = "parent-capped"
)

// NonNegative is the default local rule: a transaction is acceptable unless
// its value is negative. Parent content is not consulted.
func NonNegative(rec ledger.Record, _ []ledger.Record) bool {
	return !rec.Value.IsNegative()
}

// ParentCapped accepts a transaction whose value does not exceed the sum of
// its parents' values. Summation is commutative, so parent order is
// irrelevant.
func ParentCapped(rec ledger.Record, parents []ledger.Record) bool {
	sum := decimal.Zero
	for _, p := range parents {
		sum = sum.Add(p.Value)
	}

	return rec.Value.LessThanOrEqual(sum)
}

// RuleByName resolves a canonical rule name to its implementation.
// Returns ErrUnknownRule for anything else.
func RuleByName(name string) (Rule, error) {
	switch name {
	case RuleNonNegative:
		return NonNegative, nil
	case RuleParentCapped:
		return ParentCapped, nil
	default:
		return nil, ErrUnknownRule
	}
}
