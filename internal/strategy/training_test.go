package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// fixedStrategy always plays the same action.
type fixedStrategy struct {
	game.NopObserver
	action game.Action
}

func (f *fixedStrategy) Decide(game.DecisionContext) game.Action { return f.action }

func TestTrainingReturnsInnerDecision(t *testing.T) {
	inner := &fixedStrategy{action: game.Hit}
	tr := NewTraining(inner, NewBasic(), nil)

	spot := ctx(hand(deck.Ten, deck.Seven), 6, game.Hit, game.Stand)
	assert.Equal(t, game.Hit, tr.Decide(spot))
}

func TestTrainingGradesAgainstReference(t *testing.T) {
	var chosen, correct game.Action
	calls := 0
	tr := NewTraining(
		&fixedStrategy{action: game.Hit},
		NewBasic(),
		func(c, r game.Action) {
			chosen, correct = c, r
			calls++
		},
	)

	// Hard 17 vs 6: basic strategy stands, the wrapped player hits.
	tr.Decide(ctx(hand(deck.Ten, deck.Seven), 6, game.Hit, game.Stand))

	assert.Equal(t, 1, calls)
	assert.Equal(t, game.Hit, chosen)
	assert.Equal(t, game.Stand, correct)
}

func TestTrainingDelegatesBets(t *testing.T) {
	tr := NewTraining(&fixedStrategy{action: game.Stand}, NewBasic(), nil)
	assert.Equal(t, 25, tr.NextBet(25, 500))
}
