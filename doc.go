// Package katas is a small collection of classic data-structure and
// algorithm exercises, rebuilt around one centerpiece: a maze-solving
// robot you can watch think.
//
// 🤖 What is katas?
//
//	A set of self-contained packages, each one a complete exercise:
//		• maze:       grid model + tick-driven robot with backtracking memory
//		• mazegen:    random maze carving (Kruskal knockout, Wilson walks)
//		• linkedlist: generic singly linked list with positional access
//		• queue:      generic linked FIFO queue
//		• hashtable:  separately chained hash table with string keys
//		• rpn:        infix to postfix conversion + postfix evaluation
//
// ✨ Why bother?
//
//   - Every structure is built from explicit links and cells, not
//     borrowed from the runtime.
//   - The maze robot advances one tick at a time, so every decision
//     (straight, branch, backtrack) is observable and testable.
//   - Options, sentinel errors and hooks follow one house style across
//     all packages.
//
// Quick ASCII example, a maze mid-solve:
//
//	X X    B is the robot, * the breadcrumb trail,
//	X*X    X walls, blanks corridor.
//	XBX
//	X X
//
// Two commands live under cmd/: mazebot animates a maze file in the
// terminal, mazegen carves a fresh maze to stdout. A scenario reel of
// runnable demos, one per package, lives under examples/.
//
// Dive into docs/ for per-exercise notes and worked traces.
//
//	go get github.com/katalvlaran/katas
package katas
