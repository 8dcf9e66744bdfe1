package engine

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsVictorious(t *testing.T) {
	kings := func() []*Card {
		out := make([]*Card, NumFoundations)
		for i, suit := range AllSuits {
			out[i] = &Card{Suit: suit, Rank: King}
		}
		return out
	}

	if !IsVictorious(kings()) {
		t.Error("Expected four kings to be a victory")
	}

	missing := kings()
	missing[2] = nil
	if IsVictorious(missing) {
		t.Error("Expected an empty foundation to block victory")
	}

	short := kings()
	short[1] = &Card{Suit: Diamonds, Rank: Queen}
	if IsVictorious(short) {
		t.Error("Expected a queen to block victory")
	}

	if IsVictorious(nil) {
		t.Error("Expected no foundations not to be a victory")
	}
	if NewGameState(DefaultOpenCells).IsVictorious() {
		t.Error("Expected an empty table not to be a victory")
	}
}

func TestCardAt(t *testing.T) {
	gs := newTestState(t, "KS QH")
	gs.OpenCells[1] = cardPtr(t, "3D")
	gs.Foundations[2] = cardPtr(t, "4C")

	tests := []struct {
		p      Position
		want   string
		wantOK bool
	}{
		{TableauPosition(0, 0), "KS", true},
		{TableauPosition(0, 1), "QH", true},
		{TableauPosition(0, 2), "", false},
		{TableauPosition(3, 0), "", false},
		{OpenPosition(1), "3D", true},
		{OpenPosition(0), "", false},
		{FoundationPosition(2), "4C", true},
	}
	for _, tt := range tests {
		card, ok, err := gs.CardAt(tt.p)
		if err != nil {
			t.Fatalf("CardAt(%s) failed: %v", tt.p, err)
		}
		if ok != tt.wantOK || (ok && card.String() != tt.want) {
			t.Errorf("CardAt(%s) = %s, %v; want %s, %v", tt.p, card, ok, tt.want, tt.wantOK)
		}
	}

	if _, _, err := gs.CardAt(OpenPosition(DefaultOpenCells)); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("Expected ErrPositionOutOfRange, got %v", err)
	}
}

func TestValidateState(t *testing.T) {
	if err := ValidateState(DealSeed(11, DefaultOpenCells)); err != nil {
		t.Errorf("Expected a dealt table to be valid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(gs *GameState)
	}{
		{"missing card", func(gs *GameState) { gs.Tableaux[0] = gs.Tableaux[0][1:] }},
		{"duplicate card", func(gs *GameState) { gs.OpenCells[0] = &gs.Tableaux[1][0] }},
		{"too few columns", func(gs *GameState) { gs.Tableaux = gs.Tableaux[:7] }},
		{"too many open cells", func(gs *GameState) { gs.OpenCells = make([]*Card, 6) }},
		{"wrong suit on foundation", func(gs *GameState) {
			gs.Foundations[0] = &Card{Suit: Spades, Rank: Ace}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := DealSeed(11, DefaultOpenCells)
			tt.mutate(gs)
			if err := ValidateState(gs); !errors.Is(err, ErrInvalidState) {
				t.Errorf("Expected ErrInvalidState, got %v", err)
			}
		})
	}

	if err := ValidateState(nil); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState for nil, got %v", err)
	}
}

func TestGameStateJSON(t *testing.T) {
	gs := DealSeed(8, DefaultOpenCells)
	if err := gs.ApplyInPlace(Move{From: TableauPosition(0, 6), To: ToOpenCell(2)}); err != nil {
		t.Fatalf("ApplyInPlace failed: %v", err)
	}
	gs.AutoPlay()

	data, err := json.Marshal(gs)
	if err != nil {
		t.Fatalf("Failed to marshal state: %v", err)
	}

	var decoded GameState
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal state: %v", err)
	}
	if diff := cmp.Diff(normalize(gs), normalize(&decoded)); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFindCardAndNextFoundationCard(t *testing.T) {
	gs := newTestState(t, "KS QH")
	gs.Foundations[2] = cardPtr(t, "4C")

	if p, ok := FindCard(gs, mustCard(t, "QH")); !ok || p != TableauPosition(0, 1) {
		t.Errorf("FindCard(QH) = %s, %v", p, ok)
	}
	if p, ok := FindCard(gs, mustCard(t, "2C")); !ok || p != FoundationPosition(2) {
		t.Errorf("FindCard(2C) = %s, %v", p, ok)
	}
	if _, ok := FindCard(gs, mustCard(t, "5C")); ok {
		t.Error("Expected 5C to be missing")
	}

	if next := NextFoundationCard(gs, 2); next == nil || next.String() != "5C" {
		t.Errorf("Expected 5C next on clubs, got %v", next)
	}
	if next := NextFoundationCard(gs, 0); next == nil || next.String() != "AH" {
		t.Errorf("Expected AH next on hearts, got %v", next)
	}
	if FoundationCount(gs) != 4 || CardsRemaining(gs) != DeckSize-4 {
		t.Errorf("Unexpected counts %d/%d", FoundationCount(gs), CardsRemaining(gs))
	}
}

func TestClone_EmptyColumnEncodesAsArray(t *testing.T) {
	gs := DealSeed(2, DefaultOpenCells)
	gs.Tableaux[5] = gs.Tableaux[5][:0]

	clone := gs.Clone()
	data, err := json.Marshal(clone.Tableaux[5])
	if err != nil {
		t.Fatalf("Failed to marshal column: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Expected empty column to encode as [], got %s", data)
	}

	original := gs.Tableaux[0][0]
	clone.Tableaux[0][0] = Card{Suit: original.Suit, Rank: (original.Rank + 1) % NumRanks}
	if gs.Tableaux[0][0] != original {
		t.Error("Clone shares column storage with the original")
	}
}
