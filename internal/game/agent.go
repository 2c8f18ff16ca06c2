package game

// DecisionContext is the read-only view a strategy gets at a decision
// point. The upcard is the dealer's visible card as a blackjack value
// (11 for an ace); the hole card is never exposed to strategies.
type DecisionContext struct {
	Hand    *Hand
	Upcard  int
	Actions []Action
}

// Strategy is any decision maker for the player seat, human or automated.
// Decide must return an action from ctx.Actions; anything else is treated
// by the round state machine as a programming error, not user input.
type Strategy interface {
	// NextBet picks the wager for the upcoming round. Returning 0 ends
	// the session.
	NextBet(minBet int, bankroll float64) int

	// Decide chooses among the legal actions for the current hand.
	Decide(ctx DecisionContext) Action

	// ShowHand is called whenever a visible hand gains a card.
	ShowHand(h *Hand)

	// ShowResult is called once per hand when the round settles.
	ShowResult(h *Hand, result string)
}

// NopObserver provides no-op display hooks and minimum betting for
// automated strategies that only care about Decide.
type NopObserver struct{}

// NextBet always wagers the table minimum.
func (NopObserver) NextBet(minBet int, _ float64) int { return minBet }

// ShowHand ignores hand updates.
func (NopObserver) ShowHand(*Hand) {}

// ShowResult ignores results.
func (NopObserver) ShowResult(*Hand, string) {}
