package engine

// AutoPlay repeatedly sends exposed cards to their foundations until no
// candidate can move, mutating gs. It returns the moves made, in order.
//
// Candidates start as every column's top card followed by every occupied
// open cell and are taken from the back. A successful move re-queues the
// newly exposed card of its column and puts every previously rejected
// candidate back in front of the queue.
func (gs *GameState) AutoPlay() []Move {
	var moves []Move
	unchecked := gs.topPositions()
	var checked []Position

	for len(unchecked) > 0 && len(moves) < DeckSize {
		p := unchecked[len(unchecked)-1]
		unchecked = unchecked[:len(unchecked)-1]

		card, ok, err := gs.CardAt(p)
		if err != nil || !ok {
			continue
		}
		slot := int(card.Suit)
		legal, err := gs.CanMoveToFoundation(p, slot)
		if err != nil || !legal {
			checked = append(checked, p)
			continue
		}

		m := Move{From: p, To: ToFoundation(slot)}
		if err := gs.ApplyInPlace(m); err != nil {
			break
		}
		moves = append(moves, m)

		if p.Stack == StackTableau && p.Depth > 0 {
			unchecked = append(unchecked, TableauPosition(p.Index, p.Depth-1))
		}
		unchecked = append(checked, unchecked...)
		checked = nil
	}
	return moves
}

// topPositions lists the exposed card of every non-empty column, then every
// occupied open cell.
func (gs *GameState) topPositions() []Position {
	positions := make([]Position, 0, len(gs.Tableaux)+len(gs.OpenCells))
	for column, col := range gs.Tableaux {
		if len(col) > 0 {
			positions = append(positions, TableauPosition(column, len(col)-1))
		}
	}
	for slot, c := range gs.OpenCells {
		if c != nil {
			positions = append(positions, OpenPosition(slot))
		}
	}
	return positions
}
