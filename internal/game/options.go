package game

import "fmt"

// GameOptions is the immutable table-rules configuration for a session.
// Constructed once by the CLI layer, read-only afterwards.
type GameOptions struct {
	MinBet           int     // minimum wager per round
	Payout           float64 // natural blackjack payout multiplier
	NumDecks         int     // 52-card decks in the shoe
	ShoeMinPercent   float64 // reshuffle when remaining percent falls below this
	HitSoftSeventeen bool    // dealer hits soft 17
	DoubleAfterSplit bool    // doubling allowed on split hands
	LateSurrender    bool    // surrender offered after the natural check
	MaxSplit         int     // maximum split depth (2 splits = up to 4 hands)
}

// DefaultOptions returns the standard six-deck Vegas rule set.
func DefaultOptions() GameOptions {
	return GameOptions{
		MinBet:           10,
		Payout:           1.5,
		NumDecks:         6,
		ShoeMinPercent:   20.0,
		HitSoftSeventeen: false,
		DoubleAfterSplit: true,
		LateSurrender:    true,
		MaxSplit:         2,
	}
}

// Validate rejects option values the engine cannot play under. Validation
// failures are configuration errors and never reach the core.
func (o GameOptions) Validate() error {
	if o.MinBet <= 0 {
		return fmt.Errorf("minimum bet must be positive, got %d", o.MinBet)
	}
	if o.Payout <= 0 {
		return fmt.Errorf("blackjack payout must be positive, got %g", o.Payout)
	}
	if o.NumDecks <= 0 {
		return fmt.Errorf("deck count must be positive, got %d", o.NumDecks)
	}
	if o.ShoeMinPercent < 0 || o.ShoeMinPercent >= 100 {
		return fmt.Errorf("shoe cut-off percent must be in [0, 100), got %g", o.ShoeMinPercent)
	}
	if o.MaxSplit < 0 {
		return fmt.Errorf("max split must not be negative, got %d", o.MaxSplit)
	}
	return nil
}
