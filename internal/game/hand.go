package game

import (
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Hand is one player or dealer hand: an ordered card sequence plus the
// wager riding on it. Value, softness, bust and blackjack status are all
// derived from the cards on demand so they can never go stale.
type Hand struct {
	cards       []deck.Card
	name        string
	wager       int
	surrendered bool
	doubled     bool
	stood       bool
	splitDepth  int // 0 for the original hand, parent depth+1 for split children
	fromSplit   bool
}

// NewHand creates a hand with the given wager. The dealer hand carries a
// zero wager.
func NewHand(name string, wager int, cards ...deck.Card) *Hand {
	h := &Hand{
		name:  name,
		wager: wager,
		cards: make([]deck.Card, 0, 4),
	}
	h.cards = append(h.cards, cards...)
	return h
}

// Name returns the display name of the hand ("Player", "Dealer", ...).
func (h *Hand) Name() string {
	return h.name
}

// Wager returns the current wager, including any double.
func (h *Hand) Wager() int {
	return h.wager
}

// Cards returns a copy of the hand's cards in deal order.
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// AddCard appends a drawn card to the hand.
func (h *Hand) AddCard(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Value computes the hand total. Aces start at 11 and demote to 1 one at
// a time while the total busts. Soft means an ace is still counted as 11.
func (h *Hand) Value() (total int, soft bool) {
	aces := 0
	for _, c := range h.cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// Total returns the hand total alone.
func (h *Hand) Total() int {
	total, _ := h.Value()
	return total
}

// IsSoft returns true if the hand counts an ace as 11.
func (h *Hand) IsSoft() bool {
	_, soft := h.Value()
	return soft
}

// HasAce returns true if any card in the hand is an ace.
func (h *Hand) HasAce() bool {
	for _, c := range h.cards {
		if c.IsAce() {
			return true
		}
	}
	return false
}

// IsBust returns true if the hand total exceeds 21 after all possible
// ace demotions.
func (h *Hand) IsBust() bool {
	return h.Total() > 21
}

// IsBlackjack reports a natural: exactly two cards totalling 21 on a hand
// that did not come from a split. A split hand reaching 21 in two cards
// is a plain 21 and pays even money.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Total() == 21 && !h.fromSplit
}

// IsTwentyOne returns true when the hand has reached 21; play on such a
// hand always stops.
func (h *Hand) IsTwentyOne() bool {
	return h.Total() == 21
}

// CanSplit returns true for a two-card pair of equal rank. Ten-value
// cards of different ranks (e.g. T and K) are not splittable.
func (h *Hand) CanSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

// FromSplit returns true if the hand was produced by a split.
func (h *Hand) FromSplit() bool {
	return h.fromSplit
}

// SplitDepth returns how many splits led to this hand.
func (h *Hand) SplitDepth() int {
	return h.splitDepth
}

// Double doubles the wager. The round state machine draws the single
// extra card and ends the hand.
func (h *Hand) Double() {
	h.wager *= 2
	h.doubled = true
}

// IsDoubled returns true if the wager was doubled.
func (h *Hand) IsDoubled() bool {
	return h.doubled
}

// Stand ends play on the hand at its current total.
func (h *Hand) Stand() {
	h.stood = true
}

// IsResolved reports that the hand can take no further action: it stood,
// surrendered, busted, or reached 21.
func (h *Hand) IsResolved() bool {
	return h.stood || h.surrendered || h.Total() >= 21
}

// Surrender forfeits the hand for half the wager.
func (h *Hand) Surrender() {
	h.surrendered = true
}

// IsSurrendered returns true if the hand was surrendered.
func (h *Hand) IsSurrendered() bool {
	return h.surrendered
}

// Split partitions a pair into two child hands, each keeping one of the
// original cards and staking the same wager. The children share no cards
// with each other.
func (h *Hand) Split() (*Hand, *Hand) {
	if !h.CanSplit() {
		panic("split on a non-pair hand")
	}
	first := &Hand{
		name:       h.name + " (split 1)",
		wager:      h.wager,
		cards:      []deck.Card{h.cards[0]},
		splitDepth: h.splitDepth + 1,
		fromSplit:  true,
	}
	second := &Hand{
		name:       h.name + " (split 2)",
		wager:      h.wager,
		cards:      []deck.Card{h.cards[1]},
		splitDepth: h.splitDepth + 1,
		fromSplit:  true,
	}
	return first, second
}

// String renders the hand like "Player: A♠ K♥".
func (h *Hand) String() string {
	var sb strings.Builder
	if h.name != "" {
		sb.WriteString(h.name)
		sb.WriteString(": ")
	}
	for i, c := range h.cards {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
