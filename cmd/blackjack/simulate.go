package main

import (
	"fmt"
	"os"

	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/simulate"
	"github.com/lox/blackjack-cli/internal/strategy"
)

// SimulateCmd replays many independent games under a fixed automated
// strategy and reports the expected return.
type SimulateCmd struct {
	Strategy  string `enum:"basic,always-hit" default:"basic" help:"Player strategy"`
	NumGames  int    `default:"1000" help:"Number of games to simulate"`
	NumRounds int    `default:"500" help:"Maximum rounds per game"`
	Seed      int64  `default:"0" help:"RNG seed (0 for random)"`
	Workers   int    `default:"0" help:"Worker goroutines (0 = all CPUs)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	opts, err := g.options()
	if err != nil {
		return err
	}

	var newStrategy func() game.Strategy
	switch c.Strategy {
	case "basic":
		newStrategy = func() game.Strategy { return strategy.NewBasic() }
	case "always-hit":
		newStrategy = func() game.Strategy { return strategy.NewAlwaysHit() }
	}

	stats, err := simulate.Run(simulate.Config{
		Options:       opts,
		NewStrategy:   newStrategy,
		NumGames:      c.NumGames,
		RoundsPerGame: c.NumRounds,
		Bankroll:      g.Bankroll,
		Seed:          c.Seed,
		Workers:       c.Workers,
		Logger:        g.logger(os.Stderr),
	})
	if err != nil {
		return err
	}

	low, high := stats.ConfidenceInterval95()
	fmt.Printf("Games:             %d (%d rounds)\n", stats.Games, stats.Rounds)
	fmt.Printf("House edge:        %.2f%%\n", stats.HouseEdgePercent())
	fmt.Printf("95%% CI (EV):       [%.4f, %.4f]\n", low, high)
	fmt.Printf("Std dev (EV):      %.4f\n", stats.StdDev())
	fmt.Printf("Bankruptcy chance: %.2f%%\n", stats.BankruptcyPercent())
	return nil
}
