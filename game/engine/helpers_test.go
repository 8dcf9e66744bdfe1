package engine

import (
	"strings"
	"testing"
)

func mustCard(t *testing.T, s string) Card {
	t.Helper()
	c, err := ParseCard(s)
	if err != nil {
		t.Fatalf("ParseCard(%q): %v", s, err)
	}
	return c
}

func cardPtr(t *testing.T, s string) *Card {
	t.Helper()
	c := mustCard(t, s)
	return &c
}

// newTestState builds a table from space separated columns, buried card
// first. Columns not given stay empty; all four open cells start free.
func newTestState(t *testing.T, columns ...string) *GameState {
	t.Helper()
	gs := NewGameState(DefaultOpenCells)
	for i, column := range columns {
		for _, s := range strings.Fields(column) {
			gs.Tableaux[i] = append(gs.Tableaux[i], mustCard(t, s))
		}
	}
	return gs
}

// fullColumns pads the remaining columns with one filler card each so the
// table has no empty column.
func fullColumns(columns ...string) []string {
	fillers := []string{"2C", "3C", "4C", "5C", "6C", "7C", "8C", "9C"}
	out := make([]string, NumTableaux)
	copy(out, columns)
	for i := range out {
		if out[i] == "" {
			out[i] = fillers[i]
		}
	}
	return out
}

// cardsString joins a column in the same form newTestState reads.
func cardsString(cards []Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}
