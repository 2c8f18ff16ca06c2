// Package strategy provides the player decision makers the engine can be
// wired with: the basic-strategy table, a naive always-hit player, the
// human bridge used by the TUI, and a training wrapper that grades human
// decisions against an automated strategy.
package strategy

import (
	"github.com/lox/blackjack-cli/internal/game"
)

// Basic plays the standard basic-strategy tables: the optimal fixed
// decision for every hand against every upcard. It assumes the default
// rule set and does not adjust for rule variations.
type Basic struct {
	game.NopObserver
}

// NewBasic creates a basic-strategy player.
func NewBasic() *Basic {
	return &Basic{}
}

// Decide looks up the pair, soft, or hard table for the hand.
func (b *Basic) Decide(ctx game.DecisionContext) game.Action {
	canSurrender := game.Contains(ctx.Actions, game.Surrender)
	canDouble := game.Contains(ctx.Actions, game.Double)
	canSplit := game.Contains(ctx.Actions, game.Split)

	hand := ctx.Hand
	cards := hand.Cards()

	if canSplit {
		return pairDecision(cards[0].Value(), ctx.Upcard, canSurrender, canDouble)
	}
	if len(cards) == 2 && hand.HasAce() {
		other := cards[0]
		if other.IsAce() {
			other = cards[1]
		}
		return softDecision(other.Value(), ctx.Upcard, canDouble)
	}
	return hardDecision(hand.Total(), ctx.Upcard, canSurrender, canDouble)
}

// pairDecision plays a splittable pair; player is the value of one of
// the paired cards.
func pairDecision(player, dealer int, canSurrender, canDouble bool) game.Action {
	switch {
	case player == 11:
		return game.Split
	case player == 10:
		return game.Stand
	case player == 9:
		if dealer >= 2 && dealer <= 9 && dealer != 7 {
			return game.Split
		}
		return game.Stand
	case player == 8:
		if canSurrender && dealer == 11 {
			return game.Surrender
		}
		return game.Split
	case player == 7:
		if dealer <= 7 {
			return game.Split
		}
		return game.Hit
	case player == 6:
		if dealer <= 6 {
			return game.Split
		}
		return game.Hit
	case player == 5:
		if canDouble && dealer <= 9 {
			return game.Double
		}
		return game.Hit
	case player == 4:
		if dealer == 5 || dealer == 6 {
			return game.Split
		}
		return game.Hit
	default: // 2s and 3s
		if dealer <= 7 {
			return game.Split
		}
		return game.Hit
	}
}

// softDecision plays a two-card ace hand; player is the value of the
// non-ace card (11 for an unsplittable ace pair).
func softDecision(player, dealer int, canDouble bool) game.Action {
	switch {
	case player == 11:
		// Ace pair that cannot be split, e.g. at max split depth.
		if canDouble && dealer == 6 {
			return game.Double
		}
		return game.Hit
	case player == 9:
		return game.Stand
	case player == 8:
		if canDouble && dealer == 6 {
			return game.Double
		}
		return game.Stand
	case player == 7:
		if dealer >= 9 {
			return game.Hit
		}
		if dealer >= 7 {
			return game.Stand
		}
		if canDouble {
			return game.Double
		}
		return game.Stand
	case player == 6:
		if canDouble && dealer >= 3 && dealer <= 6 {
			return game.Double
		}
		return game.Hit
	case player >= 4:
		if canDouble && dealer >= 4 && dealer <= 6 {
			return game.Double
		}
		return game.Hit
	default: // 2s and 3s
		if canDouble && dealer >= 5 && dealer <= 6 {
			return game.Double
		}
		return game.Hit
	}
}

// hardDecision plays everything else by hard total.
func hardDecision(player, dealer int, canSurrender, canDouble bool) game.Action {
	switch {
	case player >= 17:
		if player == 17 && dealer == 11 && canSurrender {
			return game.Surrender
		}
		return game.Stand
	case player == 16:
		if dealer <= 6 {
			return game.Stand
		}
		if dealer <= 8 {
			return game.Hit
		}
		if canSurrender {
			return game.Surrender
		}
		return game.Hit
	case player == 15:
		if dealer <= 6 {
			return game.Stand
		}
		if dealer <= 9 {
			return game.Hit
		}
		if canSurrender {
			return game.Surrender
		}
		return game.Hit
	case player >= 13:
		if dealer <= 6 {
			return game.Stand
		}
		return game.Hit
	case player == 12:
		if dealer >= 4 && dealer <= 6 {
			return game.Stand
		}
		return game.Hit
	case player == 11:
		if canDouble {
			return game.Double
		}
		return game.Hit
	case player == 10:
		if canDouble && dealer <= 9 {
			return game.Double
		}
		return game.Hit
	case player == 9:
		if canDouble && dealer >= 3 && dealer <= 6 {
			return game.Double
		}
		return game.Hit
	default:
		return game.Hit
	}
}
