package game

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Game is one session: a shoe, a bankroll, and a strategy played round
// after round until the strategy quits, the bankroll can no longer cover
// a bet, or the round limit is reached. The shoe cut-off is checked once
// per round boundary, never mid-round: interactive sessions reshuffle
// and keep playing, while EndOnCutoff sessions stop at the cut-off so a
// game spans exactly one shoe.
type Game struct {
	opts        GameOptions
	logger      *log.Logger
	endOnCutoff bool
}

// GameOption adjusts session behavior beyond the table rules.
type GameOption func(*Game)

// EndOnCutoff ends the session when the shoe reaches the cut-off instead
// of reshuffling. The simulator plays one shoe per game so per-game
// results are comparable.
func EndOnCutoff() GameOption {
	return func(g *Game) { g.endOnCutoff = true }
}

// PlayResult summarises a finished session.
type PlayResult struct {
	FinalBankroll float64
	// EV is the net bankroll change per unit wagered, zero when no bet
	// was placed. House edge is -100 * EV percent.
	EV         float64
	Rounds     int
	TotalBet   int
	Bankrupt   bool
	Reshuffles int
}

// New creates a game session for the given table rules.
func New(opts GameOptions, logger *log.Logger, options ...GameOption) *Game {
	g := &Game{opts: opts, logger: logger}
	for _, option := range options {
		option(g)
	}
	return g
}

// Play runs rounds until the strategy bets zero, the bankroll cannot
// cover the wager, or maxRounds is reached (maxRounds <= 0 means no
// limit). The RNG seeds the shoe and must be owned by this session.
func (g *Game) Play(strat Strategy, bankroll int, maxRounds int, rng *rand.Rand) (PlayResult, error) {
	shoe := deck.NewShoe(g.opts.NumDecks, rng)
	funds := float64(bankroll)
	totalBet := 0
	rounds := 0
	reshuffles := 0

	for maxRounds <= 0 || rounds < maxRounds {
		if shoe.RemainingFraction()*100 <= g.opts.ShoeMinPercent {
			if g.endOnCutoff {
				g.logger.Debug("shoe cut-off reached", "round", rounds)
				break
			}
			shoe.Reshuffle()
			reshuffles++
			g.logger.Debug("shoe reshuffled", "round", rounds)
		}

		bet := strat.NextBet(g.opts.MinBet, funds)
		if bet <= 0 || funds < float64(bet) {
			break
		}

		result, err := PlayRound(shoe, g.opts, strat, bet, funds-float64(bet), g.logger)
		if err != nil {
			return PlayResult{}, err
		}

		funds += result.BankrollDelta
		totalBet += result.TotalWagered
		rounds++
	}

	ev := 0.0
	if totalBet > 0 {
		ev = (funds - float64(bankroll)) / float64(totalBet)
	}

	g.logger.Debug("session over",
		"rounds", rounds,
		"bankroll", funds,
		"ev", ev,
		"reshuffles", reshuffles)

	return PlayResult{
		FinalBankroll: funds,
		EV:            ev,
		Rounds:        rounds,
		TotalBet:      totalBet,
		Bankrupt:      funds < float64(g.opts.MinBet),
		Reshuffles:    reshuffles,
	}, nil
}
