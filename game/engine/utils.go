package engine

import "fmt"

// FoundationCount returns the number of cards already on the foundations.
func FoundationCount(gs *GameState) int {
	n := 0
	for _, c := range gs.Foundations {
		if c != nil {
			n += int(c.Rank) + 1
		}
	}
	return n
}

// CardsRemaining returns the number of cards not yet on a foundation.
func CardsRemaining(gs *GameState) int {
	return DeckSize - FoundationCount(gs)
}

// FindCard locates card on the table. Cards already on a foundation are
// reported at that foundation slot.
func FindCard(gs *GameState, card Card) (Position, bool) {
	for column, col := range gs.Tableaux {
		for depth, c := range col {
			if c == card {
				return TableauPosition(column, depth), true
			}
		}
	}
	for slot, c := range gs.OpenCells {
		if c != nil && *c == card {
			return OpenPosition(slot), true
		}
	}
	for slot, c := range gs.Foundations {
		if c != nil && c.Suit == card.Suit && card.Rank <= c.Rank {
			return FoundationPosition(slot), true
		}
	}
	return Position{}, false
}

// NextFoundationCard returns the card each foundation slot is waiting for,
// or nil once the slot is complete.
func NextFoundationCard(gs *GameState, slot int) *Card {
	if slot < 0 || slot >= len(gs.Foundations) {
		return nil
	}
	c := gs.Foundations[slot]
	if c == nil {
		return &Card{Suit: AllSuits[slot], Rank: Ace}
	}
	if c.Rank == King {
		return nil
	}
	return &Card{Suit: c.Suit, Rank: c.Rank + 1}
}

// ValidateState checks that gs has the table geometry and holds exactly one
// of each card.
func ValidateState(gs *GameState) error {
	if gs == nil {
		return ErrInvalidState
	}
	if len(gs.Tableaux) != NumTableaux {
		return fmt.Errorf("%w: %d tableau columns, want %d", ErrInvalidState, len(gs.Tableaux), NumTableaux)
	}
	if len(gs.OpenCells) < MinOpenCells || len(gs.OpenCells) > MaxOpenCells {
		return fmt.Errorf("%w: %d open cells, want %d..%d", ErrInvalidState, len(gs.OpenCells), MinOpenCells, MaxOpenCells)
	}
	if len(gs.Foundations) != NumFoundations {
		return fmt.Errorf("%w: %d foundations, want %d", ErrInvalidState, len(gs.Foundations), NumFoundations)
	}
	for slot, c := range gs.Foundations {
		if c != nil && (c.Suit != AllSuits[slot] || !c.Rank.Valid()) {
			return fmt.Errorf("%w: %s on foundation %d", ErrInvalidState, c, slot)
		}
	}

	seen := make(map[Card]bool, DeckSize)
	for _, c := range gs.AllCards() {
		if !c.Suit.Valid() || !c.Rank.Valid() {
			return fmt.Errorf("%w: %w", ErrInvalidState, ErrInvalidCard)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s", ErrInvalidState, c)
		}
		seen[c] = true
	}
	if len(seen) != DeckSize {
		return fmt.Errorf("%w: %d cards, want %d", ErrInvalidState, len(seen), DeckSize)
	}
	return nil
}
