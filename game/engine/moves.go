package engine

import "fmt"

// Apply returns the state that results from m, leaving gs untouched. The
// move is not validated; call CanApply first. Unchanged columns are shared
// with gs.
func (gs *GameState) Apply(m Move) (*GameState, error) {
	next := gs.shallowClone()
	if err := next.ApplyInPlace(m); err != nil {
		return nil, err
	}
	return next, nil
}

// ApplyInPlace performs m on gs. Like Apply it trusts the caller to have
// validated the move.
func (gs *GameState) ApplyInPlace(m Move) error {
	if err := gs.checkPosition(m.From); err != nil {
		return err
	}
	if err := gs.checkTarget(m.To); err != nil {
		return err
	}

	run := gs.take(m.From)
	if len(run) == 0 {
		return nil
	}

	switch m.To.Stack {
	case StackTableau:
		col := gs.Tableaux[m.To.Index]
		// clip capacity so the append never writes into a shared array
		gs.Tableaux[m.To.Index] = append(col[:len(col):len(col)], run...)
	case StackOpen:
		c := run[0]
		gs.OpenCells[m.To.Index] = &c
	case StackFoundation:
		c := run[0]
		gs.Foundations[m.To.Index] = &c
	default:
		return fmt.Errorf("%w: %s", ErrInvalidStack, m.To.Stack)
	}
	return nil
}

// take detaches and returns the cards at p. A foundation gives up its top
// card and exposes the one below it.
func (gs *GameState) take(p Position) []Card {
	switch p.Stack {
	case StackTableau:
		col := gs.Tableaux[p.Index]
		if p.Depth >= len(col) {
			return nil
		}
		gs.Tableaux[p.Index] = col[:p.Depth]
		return col[p.Depth:]
	case StackOpen:
		c := gs.OpenCells[p.Index]
		if c == nil {
			return nil
		}
		gs.OpenCells[p.Index] = nil
		return []Card{*c}
	case StackFoundation:
		c := gs.Foundations[p.Index]
		if c == nil {
			return nil
		}
		if c.Rank == Ace {
			gs.Foundations[p.Index] = nil
		} else {
			below := Card{Suit: c.Suit, Rank: c.Rank - 1}
			gs.Foundations[p.Index] = &below
		}
		return []Card{*c}
	}
	return nil
}
