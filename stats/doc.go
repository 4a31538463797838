// Package stats derives the ledger statistics from a fully classified
// graph: the shape of the DAG, the share of valid transactions, and the
// average transaction rate.
//
// With depth(n) the shortest distance in edges from the origin to n,
// "total" the non-origin node count, and "ledger" = total + 1 (origin
// included):
//
//   - AVG DAG DEPTH     = Σ depth(n) over non-origin nodes / ledger
//   - AVG TXS PER DEPTH = total / max depth(n)
//   - AVG REFS          = parent-reference count / ledger
//   - PCT VALID         = valid / total × 100
//   - AVG TX RATE       = total / (max timestamp − min timestamp)
//
// Rounding policy: percentages carry two decimal places, the four averages
// three, all rounded half-even (banker's rounding) via decimal.RoundBank.
// Degenerate inputs are defined, not incidental: a ledger containing only
// the origin reports zero for every statistic, and a zero timestamp span
// (all transactions at one instant) reports rate 0.000. Neither is an error.
//
// Compute never mutates the graph. It refuses a graph containing any node
// that has not reached a terminal validity tag, so a skipped classification
// stage cannot leak zeros into the output.
package stats
