package mazegen

import (
	"math/rand"

	"github.com/spakin/disjoint"
)

// kruskal carves a spanning maze by random wall knockout: every room
// starts as its own disjoint-set element, and a wall falls whenever it
// separates two rooms that cannot yet reach each other. Exactly
// rows×cols−1 walls fall, so the result is a tree over the rooms.
func kruskal(rows, cols int, rng *rand.Rand) *lattice {
	lat := newLattice(rows, cols)

	// 1. One disjoint-set element per room.
	elems := make([][]*disjoint.Element, rows)
	for r := range elems {
		elems[r] = make([]*disjoint.Element, cols)
		for c := range elems[r] {
			elems[r][c] = disjoint.NewElement()
		}
	}

	// 2. Knock down walls between unconnected neighbors until a single
	// component remains. Draws that hit the boundary or an already
	// connected pair are simply retried.
	for remaining := rows*cols - 1; remaining > 0; {
		r, c := rng.Intn(rows), rng.Intn(cols)
		if rng.Intn(2) == 0 {
			if c+1 < cols && elems[r][c].Find() != elems[r][c+1].Find() {
				disjoint.Union(elems[r][c], elems[r][c+1])
				lat.right[r][c] = true
				remaining--
			}
		} else {
			if r+1 < rows && elems[r][c].Find() != elems[r+1][c].Find() {
				disjoint.Union(elems[r][c], elems[r+1][c])
				lat.down[r][c] = true
				remaining--
			}
		}
	}

	return lat
}
