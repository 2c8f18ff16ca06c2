package game

// Action is a player decision at one point in a hand.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
	Surrender
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	case Surrender:
		return "surrender"
	default:
		return "?"
	}
}

// LegalActions returns the actions available on an active hand. Hit and
// Stand are always legal; the rest depend on the hand shape, the table
// rules, and whether the bankroll covers the extra wager.
//
// Surrender is late surrender: it is offered only on the very first
// decision of the original two-card hand, after naturals have already
// been checked at the round level.
func LegalActions(h *Hand, opts GameOptions, bankroll float64) []Action {
	actions := []Action{Hit, Stand}

	if h.Len() != 2 {
		return actions
	}

	if opts.LateSurrender && !h.FromSplit() {
		actions = append(actions, Surrender)
	}

	if bankroll >= float64(h.Wager()) {
		if opts.DoubleAfterSplit || !h.FromSplit() {
			actions = append(actions, Double)
		}
		if h.CanSplit() && h.SplitDepth() < opts.MaxSplit {
			actions = append(actions, Split)
		}
	}

	return actions
}

// Contains reports whether the action is in the legal set.
func Contains(actions []Action, a Action) bool {
	for _, legal := range actions {
		if legal == a {
			return true
		}
	}
	return false
}

// DealerShouldHit implements the house drawing rule: hit below 17, and on
// soft 17 hit only when the table plays H17. The dealer never doubles,
// splits, or surrenders.
func DealerShouldHit(h *Hand, opts GameOptions) bool {
	total, soft := h.Value()
	if total < 17 {
		return true
	}
	if total == 17 && soft {
		return opts.HitSoftSeventeen
	}
	return false
}

// Settle compares a finished player hand against the finished dealer hand
// and returns the net bankroll multiplier of the hand's wager:
//
//	+payout  unsplit natural beats a non-natural dealer
//	+1       win (dealer bust, or higher total)
//	 0       push
//	-0.5     surrender
//	-1       loss (bust, or lower total)
//
// Each hand from a split settles on its own.
func Settle(player, dealer *Hand, opts GameOptions) float64 {
	switch {
	case player.IsBlackjack():
		if dealer.IsBlackjack() {
			return 0
		}
		return opts.Payout
	case player.IsSurrendered():
		return -0.5
	case player.IsBust():
		// A busted player loses before the dealer ever plays.
		return -1
	case dealer.IsBlackjack():
		return -1
	case dealer.IsBust():
		return 1
	}

	pv, dv := player.Total(), dealer.Total()
	switch {
	case pv > dv:
		return 1
	case pv < dv:
		return -1
	default:
		return 0
	}
}
