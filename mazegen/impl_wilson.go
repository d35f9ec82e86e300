package mazegen

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/katas/maze"
)

// walkDirs is the draw table for random-walk steps.
var walkDirs = [4]maze.Direction{maze.DirDown, maze.DirUp, maze.DirLeft, maze.DirRight}

// wilson carves a uniform spanning maze with loop-erased random walks:
// seed the tree with one room, then repeatedly walk from a room outside
// the tree until the walk touches it, remembering only the LAST exit taken
// from each room, so loops erase themselves. The remembered path is then
// carved and its rooms join the tree.
func wilson(rows, cols int, rng *rand.Rand) *lattice {
	lat := newLattice(rows, cols)
	total := rows * cols

	inTree := mapset.New[maze.Cell]()
	inTree.Put(maze.Cell{Col: rng.Intn(cols), Row: rng.Intn(rows)})

	for inTree.Size() < total {
		start := firstOutside(rows, cols, inTree)

		// 1. Random walk until the tree is hit; overwriting lastExit is
		// the loop erasure.
		lastExit := make(map[maze.Cell]maze.Direction)
		cur := start
		for !inTree.Has(cur) {
			d := walkDirs[rng.Intn(len(walkDirs))]
			nb := cur.Step(d)
			if nb.Col < 0 || nb.Col >= cols || nb.Row < 0 || nb.Row >= rows {
				continue
			}
			lastExit[cur] = d
			cur = nb
		}

		// 2. Carve the erased path into the tree.
		for cur = start; !inTree.Has(cur); {
			inTree.Put(cur)
			d := lastExit[cur]
			lat.knock(cur, d)
			cur = cur.Step(d)
		}
	}

	return lat
}

// firstOutside returns the first room in scan order not yet in the tree.
// Wilson's algorithm stays uniform regardless of how starts are chosen,
// so the deterministic scan costs nothing in quality.
func firstOutside(rows, cols int, inTree mapset.Set[maze.Cell]) maze.Cell {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cell := (maze.Cell{Col: c, Row: r}); !inTree.Has(cell) {
				return cell
			}
		}
	}

	// Unreachable: callers check inTree.Size() < rows*cols first.
	return maze.Cell{}
}
