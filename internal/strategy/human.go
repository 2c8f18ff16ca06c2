package strategy

import "github.com/lox/blackjack-cli/internal/game"

// Prompts are the callbacks a user interface supplies to bridge a human
// into the engine. The engine blocks on them; everything else about the
// terminal loop lives in the display layer.
type Prompts struct {
	// Bet asks for the next wager. Returning 0 quits the session.
	Bet func(minBet int, bankroll float64) int

	// Action asks for a decision among the legal actions. The UI must
	// keep prompting until the answer is one of ctx.Actions.
	Action func(ctx game.DecisionContext) game.Action

	// HandShown and ResultShown render game progress.
	HandShown   func(h *game.Hand)
	ResultShown func(h *game.Hand, result string)
}

// Human defers every decision to the user interface through Prompts.
type Human struct {
	prompts Prompts
}

// NewHuman creates a human strategy backed by UI callbacks.
func NewHuman(prompts Prompts) *Human {
	return &Human{prompts: prompts}
}

// NextBet asks the UI for a wager.
func (h *Human) NextBet(minBet int, bankroll float64) int {
	if h.prompts.Bet == nil {
		return 0
	}
	return h.prompts.Bet(minBet, bankroll)
}

// Decide asks the UI for an action.
func (h *Human) Decide(ctx game.DecisionContext) game.Action {
	if h.prompts.Action == nil {
		return game.Stand
	}
	return h.prompts.Action(ctx)
}

// ShowHand forwards a hand update to the UI.
func (h *Human) ShowHand(hand *game.Hand) {
	if h.prompts.HandShown != nil {
		h.prompts.HandShown(hand)
	}
}

// ShowResult forwards a settled hand to the UI.
func (h *Human) ShowResult(hand *game.Hand, result string) {
	if h.prompts.ResultShown != nil {
		h.prompts.ResultShown(hand, result)
	}
}
