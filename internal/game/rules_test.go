package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack-cli/internal/deck"
)

func TestLegalActionsTwoCardHand(t *testing.T) {
	opts := DefaultOptions()
	h := NewHand("Player", 10, card(deck.Ten), card(deck.Six))

	actions := LegalActions(h, opts, 100)
	assert.ElementsMatch(t, []Action{Hit, Stand, Surrender, Double}, actions)
}

func TestLegalActionsAfterHit(t *testing.T) {
	opts := DefaultOptions()
	h := NewHand("Player", 10, card(deck.Five), card(deck.Six))
	h.AddCard(card(deck.Two))

	actions := LegalActions(h, opts, 100)
	assert.ElementsMatch(t, []Action{Hit, Stand}, actions,
		"double, split, and surrender are only available on two cards")
}

func TestLegalActionsSplit(t *testing.T) {
	opts := DefaultOptions()
	pair := NewHand("Player", 10, card(deck.Eight), deck.NewCard(deck.Hearts, deck.Eight))

	actions := LegalActions(pair, opts, 100)
	assert.Contains(t, actions, Split)

	// Mismatched ten-value cards are not a pair.
	tenKing := NewHand("Player", 10, card(deck.Ten), card(deck.King))
	assert.NotContains(t, LegalActions(tenKing, opts, 100), Split)
}

func TestLegalActionsSplitDepthLimit(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxSplit = 2

	pair := NewHand("Player", 10, card(deck.Eight), deck.NewCard(deck.Hearts, deck.Eight))
	first, _ := pair.Split()
	first.AddCard(deck.NewCard(deck.Diamonds, deck.Eight))
	assert.Contains(t, LegalActions(first, opts, 100), Split, "depth 1 may split again")

	grandchild, _ := first.Split()
	grandchild.AddCard(deck.NewCard(deck.Clubs, deck.Eight))
	assert.NotContains(t, LegalActions(grandchild, opts, 100), Split,
		"a third split attempt is illegal at max_split=2")
}

func TestLegalActionsDoubleAfterSplit(t *testing.T) {
	opts := DefaultOptions()
	pair := NewHand("Player", 10, card(deck.Eight), deck.NewCard(deck.Hearts, deck.Eight))
	first, _ := pair.Split()
	first.AddCard(card(deck.Two))

	opts.DoubleAfterSplit = true
	assert.Contains(t, LegalActions(first, opts, 100), Double)

	opts.DoubleAfterSplit = false
	assert.NotContains(t, LegalActions(first, opts, 100), Double)
}

func TestLegalActionsSurrenderOnlyOnOriginalHand(t *testing.T) {
	opts := DefaultOptions()

	pair := NewHand("Player", 10, card(deck.Eight), deck.NewCard(deck.Hearts, deck.Eight))
	first, _ := pair.Split()
	first.AddCard(card(deck.Two))
	assert.NotContains(t, LegalActions(first, opts, 100), Surrender)

	opts.LateSurrender = false
	original := NewHand("Player", 10, card(deck.Ten), card(deck.Six))
	assert.NotContains(t, LegalActions(original, opts, 100), Surrender)
}

func TestLegalActionsBankrollGatesExtraWagers(t *testing.T) {
	opts := DefaultOptions()
	pair := NewHand("Player", 10, card(deck.Eight), deck.NewCard(deck.Hearts, deck.Eight))

	broke := LegalActions(pair, opts, 5)
	assert.NotContains(t, broke, Double)
	assert.NotContains(t, broke, Split)

	funded := LegalActions(pair, opts, 10)
	assert.Contains(t, funded, Double)
	assert.Contains(t, funded, Split)
}

func TestDealerShouldHit(t *testing.T) {
	tests := []struct {
		name     string
		cards    []deck.Card
		hitSoft  bool
		expected bool
	}{
		{"sixteen hits", []deck.Card{card(deck.Ten), card(deck.Six)}, false, true},
		{"hard seventeen stands", []deck.Card{card(deck.Ten), card(deck.Seven)}, false, false},
		{"soft seventeen stands on S17", []deck.Card{card(deck.Ace), card(deck.Six)}, false, false},
		{"soft seventeen hits on H17", []deck.Card{card(deck.Ace), card(deck.Six)}, true, true},
		{"soft eighteen stands either way", []deck.Card{card(deck.Ace), card(deck.Seven)}, true, false},
		{"eighteen stands", []deck.Card{card(deck.Ten), card(deck.Eight)}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.HitSoftSeventeen = tt.hitSoft
			h := NewHand("Dealer", 0, tt.cards...)
			assert.Equal(t, tt.expected, DealerShouldHit(h, opts))
		})
	}
}

func TestSettle(t *testing.T) {
	opts := DefaultOptions()

	natural := NewHand("P", 10, card(deck.Ace), card(deck.King))
	dealerNatural := NewHand("D", 0, deck.NewCard(deck.Hearts, deck.Ace), deck.NewCard(deck.Hearts, deck.King))
	twenty := NewHand("P", 10, card(deck.Ten), card(deck.Queen))
	nineteen := NewHand("D", 0, card(deck.Ten), card(deck.Nine))
	bust := NewHand("P", 10, card(deck.Ten), card(deck.Nine), card(deck.Five))
	surrendered := NewHand("P", 10, card(deck.Ten), card(deck.Six))
	surrendered.Surrender()

	tests := []struct {
		name     string
		player   *Hand
		dealer   *Hand
		expected float64
	}{
		{"both naturals push", natural, dealerNatural, 0},
		{"natural pays the blackjack payout", natural, nineteen, 1.5},
		{"surrender loses half", surrendered, nineteen, -0.5},
		{"player bust loses before dealer plays", bust, bust, -1},
		{"dealer bust pays even money", twenty, bust, 1},
		{"higher total wins", twenty, nineteen, 1},
		{"lower total loses", nineteen, twenty, -1},
		{"equal totals push", twenty, twenty, 0},
		{"dealer natural beats twenty", twenty, dealerNatural, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Settle(tt.player, tt.dealer, opts))
		})
	}
}

func TestSettleSplitTwentyOnePaysEvenMoney(t *testing.T) {
	opts := DefaultOptions()
	pair := NewHand("P", 10, card(deck.Ace), deck.NewCard(deck.Hearts, deck.Ace))
	first, _ := pair.Split()
	first.AddCard(card(deck.King))

	dealer := NewHand("D", 0, card(deck.Ten), card(deck.Nine))
	assert.Equal(t, 1.0, Settle(first, dealer, opts),
		"a split ace drawing a ten is a plain 21, not a natural")
}

func TestSettleCustomPayout(t *testing.T) {
	opts := DefaultOptions()
	opts.Payout = 1.2

	natural := NewHand("P", 10, card(deck.Ace), card(deck.King))
	dealer := NewHand("D", 0, card(deck.Ten), card(deck.Nine))
	assert.Equal(t, 1.2, Settle(natural, dealer, opts))
}
