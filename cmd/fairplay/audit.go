package main

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/lox/fairplay/internal/moveset"
)

// AuditCmd samples the move picker many times and reports the observed
// distribution, as a quick fairness check of the selection path.
type AuditCmd struct {
	Moves   []string `arg:"" optional:"" help:"Move set to sample (defaults to rock paper scissors)"`
	Trials  int      `help:"Number of samples" default:"100000"`
	Workers int      `help:"Parallel sampling workers" default:"4"`
}

func (c *AuditCmd) Run(cli *CLI) error {
	logger := setupLogger(cli.Debug, "info")

	names := c.Moves
	if len(names) == 0 {
		names = []string{"rock", "paper", "scissors"}
	}
	set, err := moveset.New(names)
	if err != nil {
		return err
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	workers := c.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > c.Trials {
		workers = c.Trials
	}

	// Each worker keeps its own counts; merged after the group finishes
	counts := make([]map[string]int, workers)
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		share := c.Trials / workers
		if w < c.Trials%workers {
			share++
		}
		tally := make(map[string]int, set.Len())
		counts[w] = tally
		g.Go(func() error {
			for i := 0; i < share; i++ {
				move, err := set.Pick()
				if err != nil {
					return err
				}
				tally[move]++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	merged := make(map[string]int, set.Len())
	for _, tally := range counts {
		for move, n := range tally {
			merged[move] += n
		}
	}

	expected := float64(c.Trials) / float64(set.Len())
	var maxDeviation float64
	for _, move := range set.Moves() {
		n := merged[move]
		deviation := (float64(n) - expected) / expected
		if math.Abs(deviation) > maxDeviation {
			maxDeviation = math.Abs(deviation)
		}
		fmt.Printf("%-20s %8d  %6.2f%%  (dev %+.2f%%)\n",
			move, n, 100*float64(n)/float64(c.Trials), 100*deviation)
	}

	logger.Info("audit complete",
		"trials", c.Trials,
		"moves", set.Len(),
		"max_deviation_pct", fmt.Sprintf("%.2f", 100*maxDeviation))
	return nil
}
