// Command gridq learns, with tabular Q-learning, how to reach the goal
// cell of a 3x4 gridworld while avoiding a forbidden cell and a wall.
//
// Usage:
//
//	gridq [flags] <goal> <forbidden> <wall> p
//	gridq [flags] <goal> <forbidden> <wall> q <index>
//
// Cell indices are 1-based and row-major. In policy mode (p) the
// greedy direction of every normal cell is printed, in value mode (q)
// the learned value of every action of the given cell is printed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/samuelfneumann/gridq/agent/tabular/qlearning"
	"github.com/samuelfneumann/gridq/config"
	"github.com/samuelfneumann/gridq/environment/envconfig"
	"github.com/samuelfneumann/gridq/environment/gridworld"
	"github.com/samuelfneumann/gridq/experiment"
	"github.com/samuelfneumann/gridq/experiment/savers"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridq: ")

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// run learns on the board given by args and writes the requested report
// to stdout. The board, progress bar, and summary go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	conf, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("gridq", flag.ContinueOnError)
	fs.SetOutput(stderr)
	episodes := fs.Int("episodes", conf.Episodes, "maximum number of "+
		"episodes to learn for")
	seed := fs.Uint64("seed", conf.Seed, "seed for action selection")
	alpha := fs.Float64("alpha", conf.LearningRate, "learning rate")
	gamma := fs.Float64("gamma", conf.Discount, "discount factor")
	epsilon := fs.Float64("epsilon", conf.Epsilon, "initial exploration rate")
	start := fs.Int("start", conf.Start, "1-based index of the start cell")
	render := fs.String("render", "", "render the learned policy to this "+
		"PNG file")
	returns := fs.String("returns", "", "save episodic returns to this file")
	lengths := fs.String("lengths", "", "save episode lengths to this file")
	chart := fs.String("chart", "", "save learning curves as an HTML page "+
		"to this file")
	board := fs.Bool("board", false, "print the learned board to stderr")
	progress := fs.Bool("progress", false, "display a progress bar")
	verbose := fs.Bool("v", false, "log a summary of the run")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	q, err := parseQuery(fs.Args(), gridworld.Rows*gridworld.Cols)
	if err != nil {
		return err
	}
	if *episodes < 0 {
		return fmt.Errorf("episodes cannot be negative")
	}

	c := envconfig.NewConfig(q.goal, q.forbidden, q.wall, *gamma)
	c.Start = *start - 1
	g, err := c.Create()
	if err != nil {
		return err
	}

	agent, err := qlearning.NewConfig(*epsilon, *alpha).CreateAgent(g, *seed)
	if err != nil {
		return err
	}

	e := experiment.NewOnline(agent, *episodes)
	if *returns != "" {
		e.Register(savers.NewReturn(*returns))
	}
	if *lengths != "" {
		e.Register(savers.NewEpisodeLength(*lengths))
	}
	if *chart != "" {
		e.Register(savers.NewChart(*chart))
	}
	if *progress {
		e.Register(savers.NewProgressTo(stderr, 50, *episodes,
			*episodes/100))
	}

	n := e.Run()
	if *verbose {
		logger := log.New(stderr, log.Prefix(), log.Flags())
		logger.Printf("ran %d episodes (seed %d), epsilon %v", n, *seed,
			agent.Epsilon())
		logger.Printf("%v", g)
	}

	if err := e.Save(); err != nil {
		return err
	}

	if *board {
		fmt.Fprint(stderr, g.Board(true))
	}

	if *render != "" {
		if err := g.Render(*render, 100); err != nil {
			return err
		}
	}

	return report(stdout, g, q)
}

// report prints the learned policy or action values requested by q
func report(w io.Writer, g *gridworld.GridWorld, q query) error {
	switch q.mode {
	case policyMode:
		for _, entry := range g.Policy() {
			if _, err := fmt.Fprintf(w, "%d: %s\n", entry.Index+1,
				entry.Direction.Glyph()); err != nil {
				return err
			}
		}

	case valueMode:
		for _, av := range g.Values(q.index) {
			if _, err := fmt.Fprintf(w, "%s: %.2f\n", av.Direction.Glyph(),
				av.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
