package engine

import (
	"fmt"
	"strings"
)

// Suit identifies one of the four card suits. The numeric value doubles as
// the foundation slot assigned to the suit.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Rank is a card rank, Ace (0) through King (12).
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Table geometry
const (
	NumTableaux      = 8
	NumFoundations   = 4
	DefaultOpenCells = 4
	MinOpenCells     = 1
	MaxOpenCells     = 4
	DeckSize         = 52
	NumRanks         = 13
	NumSuits         = 4
)

// AllSuits lists suits in foundation slot order.
var AllSuits = [NumSuits]Suit{Hearts, Diamonds, Clubs, Spades}

var suitLetters = [NumSuits]string{"H", "D", "C", "S"}
var suitSymbols = [NumSuits]string{"♥", "♦", "♣", "♠"}
var rankNames = [NumRanks]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Spades
}

// IsRed reports whether the suit is hearts or diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitLetters[s]
}

// Symbol returns the unicode pip for the suit.
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// Valid reports whether r is between Ace and King.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Card is a single playing card. Cards have no identity beyond suit and rank.
type Card struct {
	Suit Suit
	Rank Rank
}

// String returns the compact form, e.g. "AH" or "10S".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the card with a suit symbol, e.g. "10♠".
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// MarshalText encodes the card in its compact form.
func (c Card) MarshalText() ([]byte, error) {
	if !c.Suit.Valid() || !c.Rank.Valid() {
		return nil, fmt.Errorf("%w: %d/%d", ErrInvalidCard, c.Suit, c.Rank)
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card from its compact form.
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCard parses the compact card form ("QH", "10c", "as").
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rankPart, suitPart := s[:len(s)-1], s[len(s)-1:]

	suit := Suit(-1)
	for i, letter := range suitLetters {
		if letter == suitPart {
			suit = Suit(i)
			break
		}
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}

	rank := Rank(-1)
	for i, name := range rankNames {
		if name == rankPart {
			rank = Rank(i)
			break
		}
	}
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// NewSortedDeck returns the 52-card deck ordered by suit, then rank.
func NewSortedDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, suit := range AllSuits {
		for r := Ace; r <= King; r++ {
			deck = append(deck, Card{Suit: suit, Rank: r})
		}
	}
	return deck
}

// IsRankAdjacent reports whether lower sits exactly one rank below higher.
func IsRankAdjacent(higher, lower Rank) bool {
	return lower != King && lower == higher-1
}

// IsSuitOpposingColor reports whether one suit is red and the other black.
func IsSuitOpposingColor(a, b Suit) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return a.IsRed() != b.IsRed()
}

// IsStackable reports whether card may be placed on base in a tableau column.
// A nil base (empty column) accepts any card.
func IsStackable(base *Card, card Card) bool {
	if base == nil {
		return true
	}
	return IsSuitOpposingColor(base.Suit, card.Suit) && IsRankAdjacent(base.Rank, card.Rank)
}
