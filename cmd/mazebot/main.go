// Command mazebot loads a maze from a text file and animates the robot
// solving it in the terminal.
//
// Usage:
//
//	mazebot -file maze.txt [-tick 250ms] [-quiet]
//
// Exit codes: 0 solved, 1 interrupted, 2 load or validation error,
// 3 stuck with no way out.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/katas/maze"
)

// clearScreen homes the cursor and wipes the terminal between frames.
const clearScreen = "\033[H\033[2J"

const (
	exitSolved      = 0
	exitInterrupted = 1
	exitLoad        = 2
	exitStuck       = 3
)

func main() {
	file := flag.String("file", "", "path to the maze file (required)")
	tick := flag.Duration("tick", time.Second, "delay between steps; 0 runs flat out")
	quiet := flag.Bool("quiet", false, "skip the animation and print only the final state")
	flag.Parse()

	logger := log.New(os.Stderr, "mazebot: ", 0)

	if *file == "" {
		flag.Usage()
		os.Exit(exitLoad)
	}

	grid, err := loadGrid(*file)
	if err != nil {
		logger.Print(err)
		os.Exit(exitLoad)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := solve(ctx, grid, *tick, *quiet, logger, os.Stdout)
	stop()

	os.Exit(code)
}

// loadGrid reads the maze rows from path.
func loadGrid(path string) (*maze.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return maze.ParseReader(f)
}

// solve runs the engine to a terminal state and reports the exit code.
func solve(ctx context.Context, g *maze.Grid, delay time.Duration, quiet bool, logger *log.Logger, out io.Writer) int {
	eng, err := maze.NewEngine(g, maze.WithContext(ctx))
	if err != nil {
		logger.Print(err)
		return exitLoad
	}

	if quiet {
		res, err := eng.Solve()
		if err != nil {
			logger.Print("interrupted")
			return exitInterrupted
		}
		fmt.Fprint(out, maze.Snapshot(g, eng.Position(), res.Path))

		return report(out, logger, eng.Ticks(), res.Outcome, len(res.Path))
	}

	return animate(ctx, g, eng, delay, logger, out)
}

// animate redraws the grid after every tick until the run terminates.
func animate(ctx context.Context, g *maze.Grid, eng *maze.Engine, delay time.Duration, logger *log.Logger, out io.Writer) int {
	var ticker *time.Ticker
	if delay > 0 {
		ticker = time.NewTicker(delay)
		defer ticker.Stop()
	}

	for {
		frame := eng.Step()

		fmt.Fprint(out, clearScreen)
		fmt.Fprint(out, maze.Snapshot(g, frame.Cell, frame.Path))
		fmt.Fprintf(out, "tick %d | %s | position %s\n", eng.Ticks(), eng.State(), frame.Cell)

		if frame.Outcome != maze.OutcomeMoved {
			return report(out, logger, eng.Ticks(), frame.Outcome, len(frame.Path))
		}

		if ticker == nil {
			select {
			case <-ctx.Done():
				logger.Print("interrupted")
				return exitInterrupted
			default:
			}
			continue
		}

		select {
		case <-ctx.Done():
			logger.Print("interrupted")
			return exitInterrupted
		case <-ticker.C:
		}
	}
}

// report prints the terminal summary and maps the outcome to an exit code.
func report(out io.Writer, logger *log.Logger, ticks int, outcome maze.Outcome, pathLen int) int {
	if outcome == maze.OutcomeSolved {
		fmt.Fprintf(out, "solved in %d ticks, path length %d\n", ticks, pathLen)
		return exitSolved
	}

	logger.Printf("stuck after %d ticks, no way out", ticks)

	return exitStuck
}
