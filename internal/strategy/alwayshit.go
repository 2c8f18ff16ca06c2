package strategy

import "github.com/lox/blackjack-cli/internal/game"

// AlwaysHit hits at every decision point. It exists as a worst-case
// baseline for the simulator.
type AlwaysHit struct {
	game.NopObserver
}

// NewAlwaysHit creates the baseline strategy.
func NewAlwaysHit() *AlwaysHit {
	return &AlwaysHit{}
}

// Decide always hits.
func (a *AlwaysHit) Decide(ctx game.DecisionContext) game.Action {
	return game.Hit
}
