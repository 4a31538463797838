// Package validity: classification implementation.

package validity

import (
	"fmt"

	"github.com/ledgerdag/ledgerstat/ledger"
)

// Visitation states for the topological traversal:
// white = unvisited, gray = on the current DFS path, black = fully explored.
const (
	white = iota
	gray
	black
)

// classifier encapsulates state for one classification run.
type classifier struct {
	graph *ledger.Graph
	opts  options
	state []int // visitation state per arena index
	order []int // recorded post-order sequence
}

// Classify assigns a terminal Valid/Invalid tag to every node of g.
// If g is nil, returns ErrGraphNil; if g has no origin, ErrNoOrigin.
// You may pass WithRule(r) to replace the default NonNegative rule and
// WithCancelContext(ctx) to enable cancellation.
// Complexity: O(V + E).
func Classify(g *ledger.Graph, options ...Option) error {
	// 1. Validate graph pointer and origin
	if g == nil {
		return ErrGraphNil
	}
	if g.Origin() < 0 {
		return ErrNoOrigin
	}
	// 2. Apply optional settings
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Derive a topological order (parents before children)
	c := &classifier{
		graph: g,
		opts:  opts,
		state: make([]int, g.Len()),
		order: make([]int, 0, g.Len()),
	}
	for idx := 0; idx < g.Len(); idx++ {
		if c.state[idx] == white {
			if err := c.visit(idx); err != nil {
				return err
			}
		}
	}
	// 4. Reverse post-order to obtain the topological order
	for i, j := 0, len(c.order)-1; i < j; i, j = i+1, j-1 {
		c.order[i], c.order[j] = c.order[j], c.order[i]
	}
	// 5. Tag every node in dependency order
	return c.classify()
}

// visit performs a DFS from idx over child links, recording post-order and
// detecting cycles via the gray marker. It respects cancellation.
func (c *classifier) visit(idx int) error {
	// Cancellation check at entry
	select {
	case <-c.opts.ctx.Done():
		return c.opts.ctx.Err()
	default:
	}
	// Gray hit means a back-edge: the graph is not a DAG
	if c.state[idx] == gray {
		return ErrCycleDetected
	}
	if c.state[idx] == black {
		return nil
	}
	c.state[idx] = gray

	for _, child := range c.graph.ChildrenOf(idx) {
		if err := c.visit(child); err != nil {
			return err
		}
	}

	c.state[idx] = black
	c.order = append(c.order, idx)

	return nil
}

// classify walks the topological order assigning terminal tags. Every parent
// of a node precedes it in the order, so parent tags are always terminal by
// the time the node is reached.
func (c *classifier) classify() error {
	origin := c.graph.Origin()
	for _, idx := range c.order {
		// The origin has no content to violate: Valid by definition
		if idx == origin {
			if err := c.graph.SetValidity(idx, ledger.Valid); err != nil {
				return err
			}
			continue
		}

		tag, err := c.evaluate(idx)
		if err != nil {
			return err
		}
		if err = c.graph.SetValidity(idx, tag); err != nil {
			return err
		}
	}

	return nil
}

// evaluate decides one non-origin node: structural propagation first, then
// the local rule over the resolved parent records.
func (c *classifier) evaluate(idx int) (ledger.Validity, error) {
	parentIdx := c.graph.ParentsOf(idx)

	// 1. Structural propagation: invalidity is contagious downstream
	for _, p := range parentIdx {
		if c.graph.ValidityAt(p) == ledger.Invalid {
			return ledger.Invalid, nil
		}
	}

	// 2. Local rule over the node's own record and its parent records
	rec, err := c.graph.RecordAt(idx)
	if err != nil {
		return ledger.Unvalidated, fmt.Errorf("validity: node %d: %w", idx, err)
	}
	parents := make([]ledger.Record, 0, len(parentIdx))
	for _, p := range parentIdx {
		prec, perr := c.graph.RecordAt(p)
		if perr != nil {
			return ledger.Unvalidated, fmt.Errorf("validity: parent %d: %w", p, perr)
		}
		parents = append(parents, prec)
	}
	if !c.opts.rule(rec, parents) {
		return ledger.Invalid, nil
	}

	return ledger.Valid, nil
}
