package engine

import "math/rand"

// Shuffle performs an in-place Fisher-Yates shuffle drawing from rng.
func Shuffle(deck []Card, rng *rand.Rand) {
	for i := len(deck) - 1; i >= 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// Deal shuffles a fresh deck and deals it onto a table with the default
// number of open cells.
func Deal(rng *rand.Rand) *GameState {
	return DealWithOpenCells(rng, DefaultOpenCells)
}

// DealWithOpenCells shuffles a fresh deck and deals it round-robin into the
// tableau columns, starting at column 0 and drawing from the end of the deck.
func DealWithOpenCells(rng *rand.Rand, openCells int) *GameState {
	deck := NewSortedDeck()
	Shuffle(deck, rng)

	gs := NewGameState(openCells)
	column := 0
	for len(deck) > 0 {
		card := deck[len(deck)-1]
		deck = deck[:len(deck)-1]
		gs.Tableaux[column] = append(gs.Tableaux[column], card)
		column = (column + 1) % NumTableaux
	}
	return gs
}

// DealSeed deals the game identified by seed.
func DealSeed(seed int64, openCells int) *GameState {
	return DealWithOpenCells(rand.New(rand.NewSource(seed)), openCells)
}
