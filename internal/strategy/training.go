package strategy

import "github.com/lox/blackjack-cli/internal/game"

// Training wraps a human strategy and grades every decision against a
// reference strategy, so a player can drill basic strategy while
// playing. The human's choice always stands; the reference is only
// consulted for feedback.
type Training struct {
	inner     game.Strategy
	reference game.Strategy
	feedback  func(chosen, correct game.Action)
}

// NewTraining creates a training wrapper. feedback is called after every
// decision with the chosen and the reference action.
func NewTraining(inner, reference game.Strategy, feedback func(chosen, correct game.Action)) *Training {
	return &Training{inner: inner, reference: reference, feedback: feedback}
}

// NextBet delegates to the wrapped strategy.
func (t *Training) NextBet(minBet int, bankroll float64) int {
	return t.inner.NextBet(minBet, bankroll)
}

// Decide returns the wrapped strategy's action and reports how the
// reference would have played the same spot.
func (t *Training) Decide(ctx game.DecisionContext) game.Action {
	chosen := t.inner.Decide(ctx)
	correct := t.reference.Decide(ctx)
	if t.feedback != nil {
		t.feedback(chosen, correct)
	}
	return chosen
}

// ShowHand delegates to the wrapped strategy.
func (t *Training) ShowHand(h *game.Hand) {
	t.inner.ShowHand(h)
}

// ShowResult delegates to the wrapped strategy.
func (t *Training) ShowResult(h *game.Hand, result string) {
	t.inner.ShowResult(h, result)
}
