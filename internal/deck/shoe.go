package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrShoeEmpty is returned when a card is drawn from an exhausted shoe.
// The cut-off policy is supposed to make this unreachable, so callers
// treat it as an invariant violation rather than a recoverable error.
var ErrShoeEmpty = errors.New("shoe empty: increase decks or the cut-off percent")

// Shoe holds the cards of one or more shuffled 52-card decks. A shoe is
// owned by a single game session; it is not safe for concurrent use.
type Shoe struct {
	cards    []Card
	numDecks int
	rng      *rand.Rand
}

// NewShoe creates a shoe of numDecks shuffled decks. The RNG is required
// so that callers control seeding and simulations stay reproducible.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	if numDecks <= 0 {
		panic("shoe requires a positive deck count")
	}
	if rng == nil {
		panic("rng is required for shoe creation")
	}

	s := &Shoe{
		cards:    make([]Card, 0, numDecks*52),
		numDecks: numDecks,
		rng:      rng,
	}
	s.fill()
	s.shuffle()
	return s
}

// NewStackedShoe creates an unshuffled shoe that deals the given cards in
// order. Intended for tests that need a known deal sequence.
func NewStackedShoe(cards ...Card) *Shoe {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Shoe{
		cards:    stacked,
		numDecks: (len(cards) + 51) / 52,
	}
}

func (s *Shoe) fill() {
	s.cards = s.cards[:0]
	for d := 0; d < s.numDecks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
}

func (s *Shoe) shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw removes and returns the top card of the shoe.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrShoeEmpty
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Size returns the full shoe size (numDecks * 52).
func (s *Shoe) Size() int {
	return s.numDecks * 52
}

// RemainingFraction returns remaining/total in [0, 1]. The session loop
// compares it against the cut-off once per round boundary.
func (s *Shoe) RemainingFraction() float64 {
	return float64(len(s.cards)) / float64(s.Size())
}

// Reshuffle restores the shoe to a full set of decks and shuffles. Only
// valid at a round boundary; the round state machine never calls it.
func (s *Shoe) Reshuffle() {
	if s.rng == nil {
		// Stacked test shoes have no RNG and no reshuffle semantics.
		panic("cannot reshuffle a stacked shoe")
	}
	s.fill()
	s.shuffle()
}
