// Package builder: graph assembly implementation.

package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledgerdag/ledgerstat/ledger"
)

// Visitation states for the cycle check: White = unvisited, Gray = on the
// current DFS path, Black = fully explored.
const (
	white = iota
	gray
	black
)

// Build assembles records into a ledger.Graph and verifies its topology.
// Any returned error is fatal to the run; no partial graph is returned.
// Complexity: O(V + E).
func Build(records []ledger.Record) (*ledger.Graph, error) {
	g := ledger.NewGraph()

	// 1. Insert every record; duplicate or empty identifiers are fatal
	indexes := make([]int, len(records))
	for i, rec := range records {
		idx, err := g.Add(rec)
		if err != nil {
			return nil, err
		}
		indexes[i] = idx
	}

	// 2. Resolve parent references now that the whole id set is known
	for i, rec := range records {
		for _, parent := range rec.Parents {
			if err := g.Connect(indexes[i], parent); err != nil {
				switch {
				case errors.Is(err, ledger.ErrSelfLoop):
					return nil, fmt.Errorf("%w: %q", ErrSelfReference, rec.ID)
				case errors.Is(err, ledger.ErrNodeNotFound):
					return nil, fmt.Errorf("%w: %q -> %q", ErrDanglingParent, rec.ID, parent)
				default:
					return nil, err
				}
			}
		}
	}

	// 3. Exactly one record may have zero parents; it becomes the origin
	origin, err := selectOrigin(records, indexes)
	if err != nil {
		return nil, err
	}
	if err = g.SetOrigin(origin); err != nil {
		return nil, err
	}

	// 4. The reference graph must be a DAG
	if err = checkAcyclic(g); err != nil {
		return nil, err
	}

	return g, nil
}

// selectOrigin finds the unique zero-parent record and returns its arena
// index. Zero or multiple candidates are fatal, with every candidate named.
func selectOrigin(records []ledger.Record, indexes []int) (int, error) {
	origin := -1
	var candidates []string
	for i, rec := range records {
		if len(rec.Parents) != 0 {
			continue
		}
		origin = indexes[i]
		candidates = append(candidates, rec.ID)
	}

	switch len(candidates) {
	case 0:
		return 0, ErrNoOrigin
	case 1:
		return origin, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrMultipleOrigins, strings.Join(candidates, ", "))
	}
}

// checkAcyclic runs a three-color DFS over child links from every node.
// Reaching a node that is still Gray means the current path looped back onto
// itself: a cycle.
func checkAcyclic(g *ledger.Graph) error {
	state := make([]int, g.Len())
	for idx := 0; idx < g.Len(); idx++ {
		if state[idx] == white {
			if err := visit(g, idx, state); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit performs the recursive DFS step for checkAcyclic.
func visit(g *ledger.Graph, idx int, state []int) error {
	// Gray hit: a back-edge closes a cycle through this node
	if state[idx] == gray {
		rec, _ := g.RecordAt(idx)

		return fmt.Errorf("%w: through %q", ErrCycle, rec.ID)
	}
	if state[idx] == black {
		return nil
	}
	state[idx] = gray

	for _, child := range g.ChildrenOf(idx) {
		if err := visit(g, child, state); err != nil {
			return err
		}
	}
	state[idx] = black

	return nil
}
