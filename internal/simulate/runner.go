package simulate

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// Config describes a simulation run.
type Config struct {
	Options game.GameOptions

	// NewStrategy builds a fresh strategy per worker so workers never
	// share state.
	NewStrategy func() game.Strategy

	NumGames int

	// RoundsPerGame is a hard cap per game; games normally end earlier,
	// when the shoe reaches the cut-off.
	RoundsPerGame int

	Bankroll int

	// Seed makes the run reproducible; 0 seeds from the clock.
	Seed int64

	// Workers caps parallelism; 0 uses all CPUs. Each worker owns its
	// shoes, bankrolls and RNG, merged only after every game finishes.
	Workers int

	Logger *log.Logger
}

// Run plays cfg.NumGames independent games, partitioned across workers,
// and returns the merged statistics.
func Run(cfg Config) (*Statistics, error) {
	if cfg.NumGames <= 0 {
		return nil, fmt.Errorf("number of games must be positive, got %d", cfg.NumGames)
	}
	if cfg.NewStrategy == nil {
		return nil, fmt.Errorf("a strategy is required")
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.NumGames {
		workers = cfg.NumGames
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Derive per-worker seeds up front so results depend on the seed
	// alone, not on scheduling.
	master := randutil.New(seed)
	seeds := make([]int64, workers)
	for i := range seeds {
		seeds[i] = master.Int64()
	}

	cfg.Logger.Debug("starting simulation",
		"games", cfg.NumGames,
		"workers", workers,
		"seed", seed)

	perWorker := cfg.NumGames / workers
	remainder := cfg.NumGames % workers

	results := make([]*Statistics, workers)
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		games := perWorker
		if w < remainder {
			games++
		}
		workerSeed := seeds[w]
		stats := &Statistics{}
		results[w] = stats

		eg.Go(func() error {
			rng := randutil.New(workerSeed)
			// One shoe per game: the session ends at the cut-off so every
			// game's EV sample covers a comparable number of rounds.
			session := game.New(cfg.Options, cfg.Logger, game.EndOnCutoff())
			strat := cfg.NewStrategy()

			for i := 0; i < games; i++ {
				result, err := session.Play(strat, cfg.Bankroll, cfg.RoundsPerGame, randutil.New(rng.Int64()))
				if err != nil {
					return fmt.Errorf("simulated game failed: %w", err)
				}
				stats.Add(GameResult{
					EV:            result.EV,
					FinalBankroll: result.FinalBankroll,
					Rounds:        result.Rounds,
					Bankrupt:      result.Bankrupt,
				})
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := &Statistics{}
	for _, stats := range results {
		merged.Merge(stats)
	}

	cfg.Logger.Debug("simulation complete",
		"games", merged.Games,
		"rounds", merged.Rounds,
		"house_edge", merged.HouseEdgePercent())

	return merged, nil
}
