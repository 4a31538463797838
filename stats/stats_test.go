package stats_test

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerdag/ledgerstat/builder"
	"github.com/ledgerdag/ledgerstat/ledger"
	"github.com/ledgerdag/ledgerstat/stats"
	"github.com/ledgerdag/ledgerstat/validity"
)

// rec builds a record with an integer value.
func rec(id string, ts int64, value int64, parents ...string) ledger.Record {
	return ledger.Record{ID: id, Timestamp: ts, Value: decimal.NewFromInt(value), Parents: parents}
}

// classified builds and classifies a graph or fails the test.
func classified(t *testing.T, records ...ledger.Record) *ledger.Graph {
	t.Helper()
	g, err := builder.Build(records)
	require.NoError(t, err)
	require.NoError(t, validity.Classify(g))

	return g
}

// TestCompute_NilGraph verifies ErrGraphNil.
func TestCompute_NilGraph(t *testing.T) {
	_, err := stats.Compute(nil)
	assert.ErrorIs(t, err, stats.ErrGraphNil)
}

// TestCompute_Unclassified refuses a graph the validity engine never saw.
func TestCompute_Unclassified(t *testing.T) {
	g, err := builder.Build([]ledger.Record{
		rec("O", 0, 0),
		rec("a", 1, 1, "O"),
	})
	require.NoError(t, err)

	_, err = stats.Compute(g)
	assert.ErrorIs(t, err, stats.ErrUnclassified)
}

// TestCompute_ChainExample covers the canonical worked example: one valid of
// three non-origin transactions over a span of two ticks.
func TestCompute_ChainExample(t *testing.T) {
	g := classified(t,
		rec("O", 0, 0),
		rec("A", 1, 5, "O"),
		rec("B", 2, -5, "A"),
		rec("C", 3, 1, "B"),
	)

	s, err := stats.Compute(g)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Valid)
	assert.Equal(t, int64(2), s.Span)
	assert.Equal(t, "33.33", s.PctValid.StringFixed(2))
	assert.Equal(t, "1.500", s.AvgTxRate.StringFixed(3))
	// depths 1+2+3 over 4 ledger nodes; 3 transactions over max depth 3;
	// 3 references over 4 ledger nodes
	assert.Equal(t,
		"AVG DAG DEPTH: 1.500\nAVG TXS PER DEPTH: 1.000\nAVG REFS: 0.750\n"+
			"PCT VALID: 33.33%\nAVG TX RATE: 1.500",
		s.String())
}

// TestCompute_AllValid reports 100.00%.
func TestCompute_AllValid(t *testing.T) {
	g := classified(t,
		rec("O", 0, 0),
		rec("a", 1, 1, "O"),
		rec("b", 3, 2, "a"),
	)

	s, err := stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, "100.00", s.PctValid.StringFixed(2))
	assert.Equal(t, "1.000", s.AvgTxRate.StringFixed(3))
}

// TestCompute_OriginOnly exercises the documented no-transactions sentinel:
// both statistics are zero and the call succeeds.
func TestCompute_OriginOnly(t *testing.T) {
	g := classified(t, rec("O", 0, 0))

	s, err := stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, int64(0), s.Span)
	assert.Equal(t,
		"AVG DAG DEPTH: 0.000\nAVG TXS PER DEPTH: 0.000\nAVG REFS: 0.000\n"+
			"PCT VALID: 0.00%\nAVG TX RATE: 0.000",
		s.String())
}

// TestCompute_ZeroSpan verifies the single-instant sentinel: the percentage
// is still computed, the rate is 0.000 rather than a division by zero.
func TestCompute_ZeroSpan(t *testing.T) {
	g := classified(t,
		rec("O", 0, 0),
		rec("a", 5, 1, "O"),
		rec("b", 5, 1, "O"),
	)

	s, err := stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.Span)
	assert.Equal(t, "100.00", s.PctValid.StringFixed(2))
	assert.Equal(t, "0.000", s.AvgTxRate.StringFixed(3))
}

// TestCompute_SingleTransaction has one non-origin node: span zero, rate
// sentinel, percentage well defined.
func TestCompute_SingleTransaction(t *testing.T) {
	g := classified(t,
		rec("O", 0, 0),
		rec("a", 7, 1, "O"),
	)

	s, err := stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Total)
	assert.Equal(t, "100.00", s.PctValid.StringFixed(2))
	assert.Equal(t, "0.000", s.AvgTxRate.StringFixed(3))
}

// TestCompute_HalfEvenRounding pins the banker's rounding policy: 1 valid of
// 32 is 3.125%, which rounds to 3.12 (even), and 3 of 32 is 9.375%, which
// rounds to 9.38.
func TestCompute_HalfEvenRounding(t *testing.T) {
	build := func(valid int) *ledger.Graph {
		records := []ledger.Record{rec("O", 0, 0)}
		for i := 0; i < 32; i++ {
			v := int64(-1)
			if i < valid {
				v = 1
			}
			records = append(records, rec("n"+strconv.Itoa(i), int64(i+1), v, "O"))
		}

		return classified(t, records...)
	}

	s, err := stats.Compute(build(1))
	require.NoError(t, err)
	assert.Equal(t, "3.12", s.PctValid.StringFixed(2))

	s, err = stats.Compute(build(3))
	require.NoError(t, err)
	assert.Equal(t, "9.38", s.PctValid.StringFixed(2))
}

// TestCompute_RateRounding pins rate rounding to three half-even places:
// two transactions over a span of 32 are 0.0625, rounded to 0.062 (even).
func TestCompute_RateRounding(t *testing.T) {
	g := classified(t,
		rec("O", 0, 0),
		rec("a", 2, 1, "O"),
		rec("b", 34, 1, "a"),
	)

	s, err := stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, int64(32), s.Span)
	assert.Equal(t, "0.062", s.AvgTxRate.StringFixed(3))
}

// TestCompute_DepthStats pins the DAG-shape statistics on a five-transaction
// ledger with shared and duplicated references: shortest distances are
// 1, 1, 2, 2, 2 (sum 8 over 6 ledger nodes), five transactions sit across
// two depth levels, and ten parent references spread over six ledger nodes.
func TestCompute_DepthStats(t *testing.T) {
	g := classified(t,
		rec("O", 0, 0),
		rec("n1", 0, 1, "O", "O"),
		rec("n2", 0, 1, "O", "n1"),
		rec("n3", 1, 1, "n1", "n1"),
		rec("n4", 2, 1, "n2", "n2"),
		rec("n5", 3, 1, "n2", "n3"),
	)

	s, err := stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, "1.333", s.AvgDagDepth.StringFixed(3))
	assert.Equal(t, "2.500", s.AvgTxsPerDepth.StringFixed(3))
	assert.Equal(t, "1.667", s.AvgRefs.StringFixed(3))
	assert.Equal(t, "100.00", s.PctValid.StringFixed(2))
	// 5 transactions over a span of 3 ticks
	assert.Equal(t, "1.667", s.AvgTxRate.StringFixed(3))
}

// TestCompute_DiamondDepth takes the shortest path to each node: the join
// node sits at depth 1 through its direct origin edge, not at depth 3
// through the longer chain.
func TestCompute_DiamondDepth(t *testing.T) {
	g := classified(t,
		rec("O", 0, 0),
		rec("a", 1, 1, "O"),
		rec("b", 2, 1, "a"),
		rec("c", 3, 1, "O", "b"),
	)

	s, err := stats.Compute(g)
	require.NoError(t, err)
	// depths 1, 2, 1 -> sum 4 over 4 ledger nodes; 3 txs over max depth 2
	assert.Equal(t, "1.000", s.AvgDagDepth.StringFixed(3))
	assert.Equal(t, "1.500", s.AvgTxsPerDepth.StringFixed(3))
	assert.Equal(t, "1.000", s.AvgRefs.StringFixed(3))
}

// TestCompute_InvalidCountedInRate verifies the rate denominator counts every
// non-origin node, valid or not.
func TestCompute_InvalidCountedInRate(t *testing.T) {
	g := classified(t,
		rec("O", 0, 0),
		rec("a", 1, -1, "O"),
		rec("b", 3, 1, "O"),
	)

	s, err := stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, "50.00", s.PctValid.StringFixed(2))
	assert.Equal(t, "1.000", s.AvgTxRate.StringFixed(3))
}
