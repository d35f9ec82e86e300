// Package mazegen carves perfect mazes and emits them as text rows that
// maze.Parse accepts unchanged.
//
// What:
//
//   - Generate produces a random perfect maze (single open region, no
//     cycles) over a rows×cols room lattice, carved by Kruskal-style wall
//     knockout over a disjoint-set forest, or by Wilson's loop-erased
//     random walks.
//   - Corridor produces the deterministic 3-row straight fixture.
//   - Output geometry: a rows×cols lattice renders as (2·rows+1)×(2·cols+1)
//     runes; room (r,c) sits at text cell (2c+1, 2r+1), lattice posts stay
//     walls, one entrance is punched above the first room column and one
//     exit below the last.
//
// Why:
//
//   - Every generated maze is solvable by construction, which makes the
//     generator the property-test feeder for the traversal engine.
//   - Two independent algorithms cross-check each other: both must yield a
//     single open region under maze.OpenRegions.
//
// Options:
//
//   - WithAlgorithm: AlgoKruskal (default) or AlgoWilson.
//   - WithSeed / WithRand: stochastic carving requires an explicit source;
//     Generate without one fails with ErrNeedRandSource. Same seed, same
//     maze.
//
// Errors:
//
//   - ErrBadDimension: lattice smaller than 1×1, corridor shorter than 2.
//   - ErrNeedRandSource: Generate invoked without WithSeed or WithRand.
//   - ErrUnknownAlgorithm: Algorithm value outside the declared set.
//
// Option constructors validate and panic on meaningless inputs
// (WithRand(nil)); the generators themselves never panic.
//
// See: docs/MAZEGEN.md for the geometry walkthrough.
package mazegen
