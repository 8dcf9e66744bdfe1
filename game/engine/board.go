package engine

import (
	"fmt"
	"strings"
)

const cellWidth = 5

// RenderBoard draws the table as plain text: the open cells and foundations
// on the first line, then the tableau columns side by side with the buried
// card first.
func RenderBoard(gs *GameState) string {
	var b strings.Builder

	b.WriteString("Open:")
	for _, c := range gs.OpenCells {
		b.WriteString(" " + slotLabel(c))
	}
	b.WriteString("   Foundations:")
	for _, c := range gs.Foundations {
		b.WriteString(" " + slotLabel(c))
	}
	b.WriteString("\n\n")

	height := 0
	for column := range gs.Tableaux {
		b.WriteString(pad(fmt.Sprintf("%d", column)))
		height = max(height, len(gs.Tableaux[column]))
	}
	b.WriteString("\n")

	for depth := 0; depth < height; depth++ {
		for _, col := range gs.Tableaux {
			if depth < len(col) {
				b.WriteString(pad(col[depth].String()))
			} else {
				b.WriteString(pad(""))
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), " \n") + "\n"
}

func slotLabel(c *Card) string {
	if c == nil {
		return "[  ]"
	}
	return "[" + c.String() + "]"
}

func pad(s string) string {
	if len(s) >= cellWidth {
		return s + " "
	}
	return s + strings.Repeat(" ", cellWidth-len(s))
}
