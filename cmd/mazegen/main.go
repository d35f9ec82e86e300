// Command mazegen carves a random maze and prints it to stdout.
//
// Usage:
//
//	mazegen [-rows 10] [-cols 10] [-seed 42] [-algo kruskal|wilson] [-solve]
//
// Without -seed every run carves a fresh maze. With -solve the robot runs
// the maze first and the solved render is printed instead of the bare one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/katas/maze"
	"github.com/katalvlaran/katas/mazegen"
)

func main() {
	rows := flag.Int("rows", 10, "room rows to carve")
	cols := flag.Int("cols", 10, "room columns to carve")
	seed := flag.Int64("seed", 0, "random seed; 0 derives one from the clock")
	algo := flag.String("algo", "kruskal", "carving algorithm: kruskal or wilson")
	solvePtr := flag.Bool("solve", false, "run the robot and print the solved render")
	flag.Parse()

	logger := log.New(os.Stderr, "mazegen: ", 0)

	algorithm, err := mazegen.ParseAlgorithm(*algo)
	if err != nil {
		logger.Fatal(err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	rendered, err := mazegen.Generate(*rows, *cols,
		mazegen.WithAlgorithm(algorithm),
		mazegen.WithSeed(*seed),
	)
	if err != nil {
		logger.Fatal(err)
	}

	if !*solvePtr {
		for _, row := range rendered {
			fmt.Println(row)
		}
		return
	}

	grid, err := maze.Parse(rendered)
	if err != nil {
		logger.Fatal(err)
	}
	eng, err := maze.NewEngine(grid)
	if err != nil {
		logger.Fatal(err)
	}
	res, err := eng.Solve()
	if err != nil {
		logger.Fatal(err)
	}

	fmt.Print(maze.Snapshot(grid, eng.Position(), res.Path))
	fmt.Printf("%s in %d ticks\n", res.Outcome, res.Ticks)
}
