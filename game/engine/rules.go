package engine

import "fmt"

// MaxMoveableCards is the largest run that can be moved onto a non-empty
// column: every free cell buffers one card and every empty column doubles
// the capacity.
func MaxMoveableCards(tableaux [][]Card, openCells []*Card) int {
	emptyColumns := countEmptyColumns(tableaux)
	return (1 + countEmptyCells(openCells)) * (1 << emptyColumns)
}

// MaxMoveableCardsToEmptyTableau is MaxMoveableCards when the destination is
// itself one of the empty columns, so it cannot buffer the move.
func MaxMoveableCardsToEmptyTableau(tableaux [][]Card, openCells []*Card) int {
	emptyColumns := max(0, countEmptyColumns(tableaux)-1)
	return (1 + countEmptyCells(openCells)) * (1 << emptyColumns)
}

// CanMoveToTableau reports whether the card (or run) at from may be moved
// onto column.
func (gs *GameState) CanMoveToTableau(from Locator, column int) (bool, error) {
	p, err := gs.resolveMove(from, ToTableau(column))
	if err != nil {
		return false, err
	}

	movable, err := gs.isMovableFrom(p, false)
	if err != nil || !movable {
		return false, err
	}
	card, _, err := gs.CardAt(p)
	if err != nil {
		return false, err
	}

	land := gs.Tableaux[column]
	if len(land) == 0 {
		if p.Stack != StackTableau {
			return true, nil
		}
		depth := len(gs.Tableaux[p.Index]) - p.Depth
		return depth <= MaxMoveableCardsToEmptyTableau(gs.Tableaux, gs.OpenCells), nil
	}

	top := land[len(land)-1]
	return IsStackable(&top, card), nil
}

// CanMoveToFoundation reports whether the card at from may be moved onto the
// foundation slot.
func (gs *GameState) CanMoveToFoundation(from Locator, slot int) (bool, error) {
	p, err := gs.resolveMove(from, ToFoundation(slot))
	if err != nil {
		return false, err
	}

	movable, err := gs.isMovableFrom(p, true)
	if err != nil || !movable {
		return false, err
	}
	card, _, err := gs.CardAt(p)
	if err != nil {
		return false, err
	}

	if card.Suit != AllSuits[slot] {
		return false, nil
	}
	current := gs.Foundations[slot]
	if current == nil {
		return card.Rank == Ace, nil
	}
	return IsRankAdjacent(card.Rank, current.Rank), nil
}

// CanMoveToOpenCell reports whether the card at from may be moved into the
// open cell.
func (gs *GameState) CanMoveToOpenCell(from Locator, slot int) (bool, error) {
	p, err := gs.resolveMove(from, ToOpenCell(slot))
	if err != nil {
		return false, err
	}

	movable, err := gs.isMovableFrom(p, true)
	if err != nil || !movable {
		return false, err
	}
	return gs.OpenCells[slot] == nil, nil
}

// CanApply dispatches to the validator matching the move's destination.
func (gs *GameState) CanApply(m Move) (bool, error) {
	switch m.To.Stack {
	case StackTableau:
		return gs.CanMoveToTableau(m.From, m.To.Index)
	case StackFoundation:
		return gs.CanMoveToFoundation(m.From, m.To.Index)
	case StackOpen:
		return gs.CanMoveToOpenCell(m.From, m.To.Index)
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidStack, m.To.Stack)
	}
}

// SelectableDepths marks which cards of a column can currently be picked up:
// the top card always, and a deeper card when the run above it stacks and
// fits within MaxMoveableCards.
func (gs *GameState) SelectableDepths(column int) []bool {
	if column < 0 || column >= len(gs.Tableaux) {
		return nil
	}
	col := gs.Tableaux[column]
	limit := MaxMoveableCards(gs.Tableaux, gs.OpenCells)

	selectable := make([]bool, len(col))
	for i := len(col) - 1; i >= 0; i-- {
		if i == len(col)-1 {
			selectable[i] = true
			continue
		}
		depth := len(col) - i
		selectable[i] = depth <= limit && IsStackable(&col[i], col[i+1]) && selectable[i+1]
	}
	return selectable
}

// PossibleMoves lists every legal move. Equivalent destinations are
// collapsed: only the first empty open cell and the first empty column are
// offered. Foundation moves come first, then tableau moves, then open cells.
func (gs *GameState) PossibleMoves() []Move {
	var sources []Position
	for column, col := range gs.Tableaux {
		for depth := range col {
			sources = append(sources, TableauPosition(column, depth))
		}
	}
	for slot, c := range gs.OpenCells {
		if c != nil {
			sources = append(sources, OpenPosition(slot))
		}
	}

	firstEmptyColumn := -1
	for column, col := range gs.Tableaux {
		if len(col) == 0 {
			firstEmptyColumn = column
			break
		}
	}
	firstEmptyCell := -1
	for slot, c := range gs.OpenCells {
		if c == nil {
			firstEmptyCell = slot
			break
		}
	}

	var foundation, tableau, open []Move
	for _, p := range sources {
		for slot := range gs.Foundations {
			if ok, _ := gs.CanMoveToFoundation(p, slot); ok {
				foundation = append(foundation, Move{From: p, To: ToFoundation(slot)})
			}
		}
		for column, col := range gs.Tableaux {
			if p.Stack == StackTableau && p.Index == column {
				continue
			}
			if len(col) == 0 && column != firstEmptyColumn {
				continue
			}
			if ok, _ := gs.CanMoveToTableau(p, column); ok {
				tableau = append(tableau, Move{From: p, To: ToTableau(column)})
			}
		}
		if firstEmptyCell >= 0 && p.Stack == StackTableau {
			if ok, _ := gs.CanMoveToOpenCell(p, firstEmptyCell); ok {
				open = append(open, Move{From: p, To: ToOpenCell(firstEmptyCell)})
			}
		}
	}

	moves := make([]Move, 0, len(foundation)+len(tableau)+len(open))
	moves = append(moves, foundation...)
	moves = append(moves, tableau...)
	return append(moves, open...)
}

// resolveMove resolves the source and checks both ends against the table.
func (gs *GameState) resolveMove(from Locator, to Target) (Position, error) {
	p, err := ResolvePosition(from)
	if err != nil {
		return Position{}, err
	}
	if err := gs.checkPosition(p); err != nil {
		return Position{}, err
	}
	if err := gs.checkTarget(to); err != nil {
		return Position{}, err
	}
	return p, nil
}

// isMovableFrom reports whether p is currently a unit that can be picked up.
// topCardOnly restricts tableau sources to the exposed card.
func (gs *GameState) isMovableFrom(p Position, topCardOnly bool) (bool, error) {
	switch p.Stack {
	case StackTableau:
		col := gs.Tableaux[p.Index]
		if p.Depth >= len(col) {
			return false, nil
		}
		if topCardOnly {
			return p.Depth == len(col)-1, nil
		}
		return isRunMovable(col, p.Depth, MaxMoveableCards(gs.Tableaux, gs.OpenCells)), nil
	case StackFoundation:
		return false, nil
	case StackOpen:
		return gs.OpenCells[p.Index] != nil, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidStack, p.Stack)
	}
}

// isRunMovable checks the run from depth to the top of col.
func isRunMovable(col []Card, depth, limit int) bool {
	if len(col)-depth > limit {
		return false
	}
	for i := depth; i < len(col)-1; i++ {
		if !IsStackable(&col[i], col[i+1]) {
			return false
		}
	}
	return true
}

func countEmptyColumns(tableaux [][]Card) int {
	n := 0
	for _, col := range tableaux {
		if len(col) == 0 {
			n++
		}
	}
	return n
}

func countEmptyCells(cells []*Card) int {
	n := 0
	for _, c := range cells {
		if c == nil {
			n++
		}
	}
	return n
}
