package maze

// visitedNode is the engine's per-cell bookkeeping. open is computed from
// the grid once, when the node is created; went accumulates the directions
// already attempted from the cell. Nodes persist in the engine's node map
// for its whole lifetime, so a re-entered cell never re-attempts a consumed
// direction and the traversal stays bounded even on grids with cycles.
type visitedNode struct {
	cell Cell
	open [4]bool
	went [4]bool
}

// trail is the slice-backed history stack. Invariant: while the engine is
// running, the node on top is the robot's current cell. A cell re-entered
// via a different corridor is pushed again, aliasing its existing node.
type trail struct {
	nodes []*visitedNode
}

func (t *trail) push(n *visitedNode) {
	t.nodes = append(t.nodes, n)
}

// pop removes and returns the top node. Callers guarantee non-emptiness.
func (t *trail) pop() *visitedNode {
	n := t.nodes[len(t.nodes)-1]
	t.nodes = t.nodes[:len(t.nodes)-1]

	return n
}

func (t *trail) top() *visitedNode {
	return t.nodes[len(t.nodes)-1]
}

func (t *trail) empty() bool {
	return len(t.nodes) == 0
}

// cells lists the trail bottom→top, i.e. entrance→robot. Nil when empty.
func (t *trail) cells() []Cell {
	if len(t.nodes) == 0 {
		return nil
	}
	out := make([]Cell, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = n.cell
	}

	return out
}
