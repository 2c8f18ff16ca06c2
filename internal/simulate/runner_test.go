package simulate

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/strategy"
)

func testConfig() Config {
	return Config{
		Options:       game.DefaultOptions(),
		NewStrategy:   func() game.Strategy { return strategy.NewBasic() },
		NumGames:      20,
		RoundsPerGame: 25,
		Bankroll:      500,
		Seed:          42,
		Workers:       4,
		Logger:        log.New(io.Discard),
	}
}

func TestRunPlaysEveryGame(t *testing.T) {
	stats, err := Run(testConfig())
	require.NoError(t, err)

	assert.Equal(t, 20, stats.Games)
	assert.Greater(t, stats.Rounds, 0)
}

func TestRunIsDeterministicForASeed(t *testing.T) {
	first, err := Run(testConfig())
	require.NoError(t, err)
	second, err := Run(testConfig())
	require.NoError(t, err)

	assert.Equal(t, first.Games, second.Games)
	assert.Equal(t, first.Rounds, second.Rounds)
	assert.Equal(t, first.Bankruptcies, second.Bankruptcies)
	assert.Equal(t, first.MeanEV(), second.MeanEV())
}

func TestRunMoreWorkersThanGames(t *testing.T) {
	cfg := testConfig()
	cfg.NumGames = 2
	cfg.Workers = 16

	stats, err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Games)
}

func TestRunGamesEndAtShoeCutoff(t *testing.T) {
	// Each simulated game plays one shoe: with a single deck and a high
	// cut-off every game is a handful of rounds, far below the per-game
	// round cap.
	cfg := testConfig()
	cfg.Options.NumDecks = 1
	cfg.Options.ShoeMinPercent = 50.0
	cfg.NumGames = 5
	cfg.RoundsPerGame = 1000

	stats, err := Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Games)
	assert.Greater(t, stats.Rounds, 0)
	assert.Less(t, stats.Rounds, 100)
}

func TestRunRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.NumGames = 0
	_, err := Run(cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.NewStrategy = nil
	_, err = Run(cfg)
	assert.Error(t, err)
}
