// Package stats: aggregation implementation.

package stats

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerdag/ledgerstat/ledger"
)

var (
	// ErrGraphNil is returned when a nil *ledger.Graph is passed to Compute.
	ErrGraphNil = errors.New("stats: graph is nil")

	// ErrNoOrigin indicates the graph has no origin node selected.
	ErrNoOrigin = errors.New("stats: graph has no origin")

	// ErrUnclassified indicates a node without a terminal validity tag; the
	// validity engine must run before aggregation.
	ErrUnclassified = errors.New("stats: node not classified")
)

// Decimal places carried by each statistic.
const (
	pctPlaces = 2
	avgPlaces = 3
)

// Summary holds the derived statistics of one classified ledger.
//
// Total and Valid count non-origin nodes only. Span is the timestamp spread
// (max − min) over non-origin nodes, zero when Total < 2. The decimal fields
// carry the documented rounding already applied.
type Summary struct {
	Total int
	Valid int
	Span  int64

	// AvgDagDepth is the mean shortest distance from the origin over
	// non-origin nodes, averaged over the whole ledger (origin included).
	AvgDagDepth decimal.Decimal

	// AvgTxsPerDepth is the non-origin transaction count divided by the
	// deepest shortest distance.
	AvgTxsPerDepth decimal.Decimal

	// AvgRefs is the parent-reference count divided by the whole ledger
	// node count (origin included).
	AvgRefs decimal.Decimal

	// PctValid is the share of non-origin nodes classified Valid.
	PctValid decimal.Decimal

	// AvgTxRate is the non-origin node count divided by Span.
	AvgTxRate decimal.Decimal
}

// String renders the stable output contract, one labeled statistic per line:
//
//	AVG DAG DEPTH: 1.500
//	AVG TXS PER DEPTH: 1.000
//	AVG REFS: 0.750
//	PCT VALID: 33.33%
//	AVG TX RATE: 1.500
func (s Summary) String() string {
	return fmt.Sprintf(
		"AVG DAG DEPTH: %s\nAVG TXS PER DEPTH: %s\nAVG REFS: %s\nPCT VALID: %s%%\nAVG TX RATE: %s",
		s.AvgDagDepth.StringFixed(avgPlaces),
		s.AvgTxsPerDepth.StringFixed(avgPlaces),
		s.AvgRefs.StringFixed(avgPlaces),
		s.PctValid.StringFixed(pctPlaces),
		s.AvgTxRate.StringFixed(avgPlaces))
}

// Compute derives the Summary for a classified graph. The graph is read-only
// to this function. Returns ErrGraphNil, ErrNoOrigin, or ErrUnclassified
// (naming the offending node) on misuse.
// Complexity: O(V + E).
func Compute(g *ledger.Graph) (Summary, error) {
	// 1. Validate input
	if g == nil {
		return Summary{}, ErrGraphNil
	}
	origin := g.Origin()
	if origin < 0 {
		return Summary{}, ErrNoOrigin
	}

	// 2. Single pass over nodes: count tags, references, timestamp span
	depths := minDepths(g)
	var (
		total, valid    int
		minTS, maxTS    int64
		depthSum, depth int64
		maxDepth, refs  int64
	)
	for idx := 0; idx < g.Len(); idx++ {
		tag := g.ValidityAt(idx)
		if !tag.Terminal() {
			rec, _ := g.RecordAt(idx)

			return Summary{}, fmt.Errorf("%w: %q", ErrUnclassified, rec.ID)
		}
		refs += int64(len(g.ParentsOf(idx)))
		if idx == origin {
			continue
		}

		rec, err := g.RecordAt(idx)
		if err != nil {
			return Summary{}, err
		}
		if total == 0 || rec.Timestamp < minTS {
			minTS = rec.Timestamp
		}
		if total == 0 || rec.Timestamp > maxTS {
			maxTS = rec.Timestamp
		}
		depth = depths[idx]
		depthSum += depth
		if depth > maxDepth {
			maxDepth = depth
		}
		total++
		if tag == ledger.Valid {
			valid++
		}
	}

	// 3. Derive the statistics under the documented sentinel policy
	s := Summary{
		Total:          total,
		Valid:          valid,
		AvgDagDepth:    decimal.Zero.RoundBank(avgPlaces),
		AvgTxsPerDepth: decimal.Zero.RoundBank(avgPlaces),
		AvgRefs:        decimal.Zero.RoundBank(avgPlaces),
		PctValid:       decimal.Zero.RoundBank(pctPlaces),
		AvgTxRate:      decimal.Zero.RoundBank(avgPlaces),
	}
	if total > 0 {
		// The averaging base includes the origin, so depth and reference
		// means describe the whole ledger.
		base := decimal.NewFromInt(int64(total) + 1)
		s.Span = maxTS - minTS
		s.AvgDagDepth = decimal.NewFromInt(depthSum).Div(base).RoundBank(avgPlaces)
		s.AvgRefs = decimal.NewFromInt(refs).Div(base).RoundBank(avgPlaces)
		s.PctValid = decimal.NewFromInt(int64(valid) * 100).
			Div(decimal.NewFromInt(int64(total))).
			RoundBank(pctPlaces)
		if maxDepth > 0 {
			s.AvgTxsPerDepth = decimal.NewFromInt(int64(total)).
				Div(decimal.NewFromInt(maxDepth)).
				RoundBank(avgPlaces)
		}
	}
	if total > 0 && s.Span > 0 {
		s.AvgTxRate = decimal.NewFromInt(int64(total)).
			Div(decimal.NewFromInt(s.Span)).
			RoundBank(avgPlaces)
	}

	return s, nil
}

// minDepths computes, for every node, the shortest distance in edges from
// the origin following parent links: 0 for the origin, 1 + the minimum
// parent depth otherwise. Memoized recursion; the builder's cycle check
// guarantees termination.
func minDepths(g *ledger.Graph) []int64 {
	depths := make([]int64, g.Len())
	for i := range depths {
		depths[i] = -1
	}

	var walk func(idx int) int64
	walk = func(idx int) int64 {
		if depths[idx] >= 0 {
			return depths[idx]
		}
		if idx == g.Origin() {
			depths[idx] = 0

			return 0
		}
		best := int64(-1)
		for _, p := range g.ParentsOf(idx) {
			if d := walk(p) + 1; best < 0 || d < best {
				best = d
			}
		}
		// A parentless non-origin node cannot come out of the builder
		if best < 0 {
			best = 0
		}
		depths[idx] = best

		return best
	}
	for idx := 0; idx < g.Len(); idx++ {
		walk(idx)
	}

	return depths
}
