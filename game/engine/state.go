package engine

import "fmt"

// GameState is the full table: tableau columns, open cells and foundations.
// Tableau column arrays are never written through once shared; moves reslice
// or reallocate them. Slot slices are owned by the state that holds them.
type GameState struct {
	Tableaux    [][]Card `json:"tableaux"`
	OpenCells   []*Card  `json:"open_cells"`
	Foundations []*Card  `json:"foundations"`
}

// NewGameState returns an empty table with the given number of open cells.
func NewGameState(openCells int) *GameState {
	return &GameState{
		Tableaux:    make([][]Card, NumTableaux),
		OpenCells:   make([]*Card, openCells),
		Foundations: make([]*Card, NumFoundations),
	}
}

// Clone returns a deep copy of the state.
func (gs *GameState) Clone() *GameState {
	out := &GameState{
		Tableaux:    make([][]Card, len(gs.Tableaux)),
		OpenCells:   make([]*Card, len(gs.OpenCells)),
		Foundations: make([]*Card, len(gs.Foundations)),
	}
	for i, column := range gs.Tableaux {
		out.Tableaux[i] = make([]Card, len(column))
		copy(out.Tableaux[i], column)
	}
	copy(out.OpenCells, gs.OpenCells)
	copy(out.Foundations, gs.Foundations)
	return out
}

// shallowClone copies the top-level containers and shares the column arrays.
func (gs *GameState) shallowClone() *GameState {
	out := &GameState{
		Tableaux:    make([][]Card, len(gs.Tableaux)),
		OpenCells:   make([]*Card, len(gs.OpenCells)),
		Foundations: make([]*Card, len(gs.Foundations)),
	}
	copy(out.Tableaux, gs.Tableaux)
	copy(out.OpenCells, gs.OpenCells)
	copy(out.Foundations, gs.Foundations)
	return out
}

// TopCard returns the exposed card of a column, or nil when it is empty.
func (gs *GameState) TopCard(column int) *Card {
	col := gs.Tableaux[column]
	if len(col) == 0 {
		return nil
	}
	c := col[len(col)-1]
	return &c
}

// CardAt returns the card at p. ok is false when p currently holds nothing.
func (gs *GameState) CardAt(p Position) (card Card, ok bool, err error) {
	if err := gs.checkPosition(p); err != nil {
		return Card{}, false, err
	}
	switch p.Stack {
	case StackTableau:
		col := gs.Tableaux[p.Index]
		if p.Depth >= len(col) {
			return Card{}, false, nil
		}
		return col[p.Depth], true, nil
	case StackOpen:
		if c := gs.OpenCells[p.Index]; c != nil {
			return *c, true, nil
		}
		return Card{}, false, nil
	case StackFoundation:
		if c := gs.Foundations[p.Index]; c != nil {
			return *c, true, nil
		}
		return Card{}, false, nil
	default:
		return Card{}, false, fmt.Errorf("%w: %s", ErrInvalidStack, p.Stack)
	}
}

// CountEmptyTableaux returns the number of empty columns.
func (gs *GameState) CountEmptyTableaux() int {
	n := 0
	for _, col := range gs.Tableaux {
		if len(col) == 0 {
			n++
		}
	}
	return n
}

// CountEmptyOpenCells returns the number of free open cells.
func (gs *GameState) CountEmptyOpenCells() int {
	n := 0
	for _, c := range gs.OpenCells {
		if c == nil {
			n++
		}
	}
	return n
}

// AllCards returns every card on the table: tableaux bottom to top, then open
// cells, then each foundation expanded from Ace to its top card.
func (gs *GameState) AllCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, col := range gs.Tableaux {
		cards = append(cards, col...)
	}
	for _, c := range gs.OpenCells {
		if c != nil {
			cards = append(cards, *c)
		}
	}
	for _, c := range gs.Foundations {
		if c == nil {
			continue
		}
		for r := Ace; r <= c.Rank; r++ {
			cards = append(cards, Card{Suit: c.Suit, Rank: r})
		}
	}
	return cards
}

// IsVictorious reports whether every foundation holds its King.
func IsVictorious(foundations []*Card) bool {
	if len(foundations) == 0 {
		return false
	}
	for _, c := range foundations {
		if c == nil || c.Rank != King {
			return false
		}
	}
	return true
}

// IsVictorious reports whether the game is won.
func (gs *GameState) IsVictorious() bool {
	return IsVictorious(gs.Foundations)
}

// checkPosition reports positions that fall outside the table geometry.
func (gs *GameState) checkPosition(p Position) error {
	switch p.Stack {
	case StackTableau:
		if p.Index < 0 || p.Index >= len(gs.Tableaux) || p.Depth < 0 {
			return fmt.Errorf("%w: %s", ErrPositionOutOfRange, p)
		}
	case StackOpen:
		if p.Index < 0 || p.Index >= len(gs.OpenCells) {
			return fmt.Errorf("%w: %s", ErrPositionOutOfRange, p)
		}
	case StackFoundation:
		if p.Index < 0 || p.Index >= len(gs.Foundations) {
			return fmt.Errorf("%w: %s", ErrPositionOutOfRange, p)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidStack, p.Stack)
	}
	return nil
}

// checkTarget reports destinations that fall outside the table geometry.
func (gs *GameState) checkTarget(t Target) error {
	return gs.checkPosition(Position{Stack: t.Stack, Index: t.Index})
}
