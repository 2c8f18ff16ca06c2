package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/deck"
)

// ErrIllegalAction is returned when a strategy picks an action outside
// the legal set. It indicates a defective strategy implementation and is
// fatal to the session.
var ErrIllegalAction = errors.New("strategy returned an illegal action")

// RoundState tracks progress through one round of play.
type RoundState int

const (
	Dealt RoundState = iota
	NaturalsChecked
	PlayerActing
	DealerActing
	Settled
)

// String returns the state name.
func (s RoundState) String() string {
	switch s {
	case Dealt:
		return "dealt"
	case NaturalsChecked:
		return "naturals-checked"
	case PlayerActing:
		return "player-acting"
	case DealerActing:
		return "dealer-acting"
	case Settled:
		return "settled"
	default:
		return "?"
	}
}

// RoundResult is the outcome of one completed round.
type RoundResult struct {
	// BankrollDelta is the net win or loss across all player hands: a
	// push contributes nothing, an even-money win contributes +wager, a
	// natural contributes +wager*payout, a loss contributes -wager.
	BankrollDelta float64

	// TotalWagered sums every wager staked this round, including doubles
	// and split hands. Drivers use it for expected-value accounting.
	TotalWagered int

	PlayerHands []*Hand
	DealerHand  *Hand
}

// Round drives a single round through the states
// Dealt -> NaturalsChecked -> PlayerActing -> DealerActing -> Settled.
// It pulls cards from the shoe, queries the rules for legality and
// payouts, and queries the strategy at every player decision point.
type Round struct {
	shoe   *deck.Shoe
	opts   GameOptions
	strat  Strategy
	logger *log.Logger

	state  RoundState
	dealer *Hand
	hands  []*Hand
	upcard int

	// budget is the bankroll not yet staked this round, gating the extra
	// wagers that doubles and splits require.
	budget float64
}

// PlayRound plays one full round and returns its result. The bet has
// already been committed by the caller; budget is the bankroll remaining
// beyond it. Errors indicate invariant violations (an exhausted shoe or
// an illegal strategy action) and leave the round unusable.
func PlayRound(shoe *deck.Shoe, opts GameOptions, strat Strategy, bet int, budget float64, logger *log.Logger) (*RoundResult, error) {
	r := &Round{
		shoe:   shoe,
		opts:   opts,
		strat:  strat,
		logger: logger,
		state:  Dealt,
		dealer: NewHand("Dealer", 0),
		hands:  []*Hand{NewHand("Player", bet)},
		budget: budget,
	}
	return r.play()
}

func (r *Round) play() (*RoundResult, error) {
	if err := r.deal(); err != nil {
		return nil, err
	}

	if result := r.checkNaturals(); result != nil {
		return result, nil
	}

	r.state = PlayerActing
	for i := 0; i < len(r.hands); i++ {
		if err := r.playHand(i); err != nil {
			return nil, err
		}
	}

	if r.anyViableHand() {
		r.state = DealerActing
		if err := r.playDealer(); err != nil {
			return nil, err
		}
	}

	return r.settle(), nil
}

// deal draws the opening cards: player, dealer upcard, player, dealer
// hole card. The hole card stays hidden from the strategy until the
// dealer acts.
func (r *Round) deal() error {
	player := r.hands[0]

	if err := r.drawTo(player); err != nil {
		return err
	}
	up, err := r.shoe.Draw()
	if err != nil {
		return fmt.Errorf("dealing upcard: %w", err)
	}
	r.dealer.AddCard(up)
	r.upcard = up.Value()
	r.strat.ShowHand(r.dealer)

	if err := r.drawTo(player); err != nil {
		return err
	}
	r.strat.ShowHand(player)

	hole, err := r.shoe.Draw()
	if err != nil {
		return fmt.Errorf("dealing hole card: %w", err)
	}
	r.dealer.AddCard(hole)

	r.logger.Debug("round dealt", "state", r.state, "player", player.String(), "upcard", up.String())
	return nil
}

// checkNaturals settles the round immediately when either side was dealt
// a blackjack, before any player decision. Returns nil when play should
// continue.
func (r *Round) checkNaturals() *RoundResult {
	r.state = NaturalsChecked
	player := r.hands[0]
	if !player.IsBlackjack() && !r.dealer.IsBlackjack() {
		return nil
	}

	r.strat.ShowHand(r.dealer)

	var delta float64
	switch {
	case player.IsBlackjack() && r.dealer.IsBlackjack():
		r.strat.ShowResult(player, "push (blackjack)")
	case player.IsBlackjack():
		delta = r.opts.Payout * float64(player.Wager())
		r.strat.ShowResult(player, "player has blackjack")
	default:
		delta = -float64(player.Wager())
		r.strat.ShowResult(player, "dealer has blackjack")
	}

	r.state = Settled
	r.logger.Debug("naturals settled", "state", r.state, "delta", delta)
	return &RoundResult{
		BankrollDelta: delta,
		TotalWagered:  player.Wager(),
		PlayerHands:   r.hands,
		DealerHand:    r.dealer,
	}
}

// playHand drives the hand at index i until it is resolved. A split
// replaces the hand with its first child and appends the second to the
// end of the iteration order.
func (r *Round) playHand(i int) error {
	for {
		h := r.hands[i]
		if h.IsResolved() {
			return nil
		}

		actions := LegalActions(h, r.opts, r.budget)
		action := r.strat.Decide(DecisionContext{Hand: h, Upcard: r.upcard, Actions: actions})
		if !Contains(actions, action) {
			return fmt.Errorf("%w: %s on %s", ErrIllegalAction, action, h)
		}
		r.logger.Debug("player action", "state", r.state, "hand", h.String(), "action", action)

		switch action {
		case Hit:
			if err := r.drawTo(h); err != nil {
				return err
			}
			r.strat.ShowHand(h)

		case Stand:
			h.Stand()

		case Surrender:
			h.Surrender()

		case Double:
			r.budget -= float64(h.Wager())
			h.Double()
			if err := r.drawTo(h); err != nil {
				return err
			}
			r.strat.ShowHand(h)
			h.Stand()

		case Split:
			r.budget -= float64(h.Wager())
			splitAces := h.HasAce()
			first, second := h.Split()
			for _, child := range []*Hand{first, second} {
				if err := r.drawTo(child); err != nil {
					return err
				}
				if splitAces {
					// Split aces take exactly one card and stand.
					child.Stand()
				}
				r.strat.ShowHand(child)
			}
			r.hands[i] = first
			r.hands = append(r.hands, second)
		}
	}
}

// anyViableHand reports whether the dealer still has anything to beat.
func (r *Round) anyViableHand() bool {
	for _, h := range r.hands {
		if !h.IsBust() && !h.IsSurrendered() {
			return true
		}
	}
	return false
}

// playDealer reveals the hole card and draws per the house rule.
func (r *Round) playDealer() error {
	r.strat.ShowHand(r.dealer)
	for DealerShouldHit(r.dealer, r.opts) {
		if err := r.drawTo(r.dealer); err != nil {
			return err
		}
		r.strat.ShowHand(r.dealer)
	}
	r.logger.Debug("dealer stands", "state", r.state, "dealer", r.dealer.String())
	return nil
}

// settle resolves every player hand against the dealer and sums the
// bankroll delta.
func (r *Round) settle() *RoundResult {
	result := &RoundResult{
		PlayerHands: r.hands,
		DealerHand:  r.dealer,
	}

	for _, h := range r.hands {
		mult := Settle(h, r.dealer, r.opts)
		result.BankrollDelta += mult * float64(h.Wager())
		result.TotalWagered += h.Wager()
		r.strat.ShowResult(h, r.describe(h, mult))
	}

	r.state = Settled
	r.logger.Debug("round settled", "state", r.state, "delta", result.BankrollDelta, "wagered", result.TotalWagered)
	return result
}

func (r *Round) describe(h *Hand, mult float64) string {
	switch {
	case h.IsSurrendered():
		return "player surrender"
	case h.IsBust():
		return "player bust"
	case r.dealer.IsBust():
		return "dealer bust"
	case mult > 0:
		return fmt.Sprintf("player wins (%d > %d)", h.Total(), r.dealer.Total())
	case mult < 0:
		return fmt.Sprintf("dealer wins (%d < %d)", h.Total(), r.dealer.Total())
	default:
		return fmt.Sprintf("push (%d = %d)", h.Total(), r.dealer.Total())
	}
}

func (r *Round) drawTo(h *Hand) error {
	card, err := r.shoe.Draw()
	if err != nil {
		return fmt.Errorf("drawing for %s: %w", h.Name(), err)
	}
	h.AddCard(card)
	return nil
}
