package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func createTestConfig() *GameConfig {
	config := &GameConfig{
		Name:        "Engine Test Config",
		Description: "Configuration for engine integration tests",
		OpenCells:   4,
		AutoPlay:    true,
	}
	config.Messages.Welcome = "Welcome to engine test!"
	config.Messages.Victory = "Victory!"
	config.Messages.IllegalMove = "Can't move there!"
	config.Messages.AutoPlayed = "Auto-played %d card(s)"
	return config
}

func TestNewEngine(t *testing.T) {
	config := createTestConfig()
	engine, err := NewEngineWithSeed(config, 17)
	if err != nil {
		t.Fatalf("Failed to create new engine: %v", err)
	}

	if engine.GetSeed() != 17 {
		t.Errorf("Expected seed 17, got %d", engine.GetSeed())
	}
	if engine.IsVictory() {
		t.Error("Expected game not to be victory initially")
	}
	if diff := cmp.Diff(DealSeed(17, 4), engine.GetState()); diff != "" {
		t.Errorf("Unexpected initial deal (-want +got):\n%s", diff)
	}
	if engine.GetConfig() != config {
		t.Error("Expected the engine to keep its config")
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	config := createTestConfig()
	config.OpenCells = 0

	if _, err := NewEngine(config); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewEngine_PinnedSeed(t *testing.T) {
	config := createTestConfig()
	seed := int64(123)
	config.Seed = &seed

	a, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	b, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	if a.GetSeed() != seed || b.GetSeed() != seed {
		t.Errorf("Expected pinned seed %d, got %d and %d", seed, a.GetSeed(), b.GetSeed())
	}
	if diff := cmp.Diff(a.GetState(), b.GetState()); diff != "" {
		t.Errorf("Pinned seed dealt different games:\n%s", diff)
	}
}

func TestNewEngineWithDefaults(t *testing.T) {
	engine := NewEngineWithDefaults()
	if engine.GetConfig() == nil || engine.GetConfig().Name != "classic" {
		t.Fatalf("Expected the classic default config, got %+v", engine.GetConfig())
	}
	if len(engine.GetState().OpenCells) != DefaultOpenCells {
		t.Errorf("Expected %d open cells", DefaultOpenCells)
	}
}

func TestEngine_IllegalMoveKeepsState(t *testing.T) {
	engine, err := NewEngineWithSeed(createTestConfig(), 3)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	before := engine.GetState()

	outcome, err := engine.Move(Move{From: FoundationPosition(0), To: ToTableau(0)})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if outcome.Legal {
		t.Error("Expected a foundation source to be illegal")
	}
	if engine.GetState() != before {
		t.Error("Expected an illegal move to keep the same state")
	}

	if _, err := engine.Move(Move{From: TableauPosition(12, 0), To: ToTableau(0)}); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("Expected ErrPositionOutOfRange, got %v", err)
	}
}

func TestEngine_MoveInstallsNewState(t *testing.T) {
	config := createTestConfig()
	config.AutoPlay = false
	engine, err := NewEngineWithSeed(config, 3)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	before := engine.GetState()
	snapshot := before.Clone()

	m := Move{From: TableauPosition(0, 6), To: ToOpenCell(0)}
	outcome, err := engine.Move(m)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !outcome.Legal || len(outcome.AutoPlay) != 0 {
		t.Errorf("Unexpected outcome %+v", outcome)
	}
	if engine.GetState().OpenCells[0] == nil {
		t.Error("Expected open cell 0 to be filled")
	}
	if diff := cmp.Diff(snapshot, before); diff != "" {
		t.Errorf("Move mutated a previously returned state:\n%s", diff)
	}
}

func TestEngine_MoveAutoPlays(t *testing.T) {
	engine := NewEngineWithDefaults()
	gs := newTestState(t, "KS AH", "2H", "QD")
	// park the rest of the deck so the table stays valid
	rest := NewGameState(DefaultOpenCells)
	used := map[string]bool{"KS": true, "AH": true, "2H": true, "QD": true}
	column := 3
	for _, c := range NewSortedDeck() {
		if used[c.String()] {
			continue
		}
		rest.Tableaux[column] = append(rest.Tableaux[column], c)
		column = 3 + (column-2)%5
	}
	for i := 3; i < NumTableaux; i++ {
		gs.Tableaux[i] = rest.Tableaux[i]
	}
	if err := engine.SetState(gs); err != nil {
		t.Fatalf("SetState failed: %v", err)
	}

	outcome, err := engine.Move(Move{From: TableauPosition(1, 0), To: ToOpenCell(0)})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !outcome.Legal {
		t.Fatal("Expected the move to be legal")
	}

	// AH goes first, then the 2H waiting in the open cell follows
	want := []Move{
		{From: TableauPosition(0, 1), To: ToFoundation(0)},
		{From: OpenPosition(0), To: ToFoundation(0)},
	}
	if diff := cmp.Diff(want, outcome.AutoPlay); diff != "" {
		t.Errorf("Auto-play mismatch (-want +got):\n%s", diff)
	}
	if f := engine.GetState().Foundations[0]; f == nil || f.String() != "2H" {
		t.Errorf("Expected 2H on the hearts foundation, got %v", f)
	}
}

func TestEngine_Reset(t *testing.T) {
	engine, err := NewEngineWithSeed(createTestConfig(), 77)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	initial := engine.GetState().Clone()

	for _, m := range engine.GetPossibleMoves()[:1] {
		if _, err := engine.Move(m); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
	}

	state := engine.Reset()
	if diff := cmp.Diff(initial, state); diff != "" {
		t.Errorf("Reset did not redeal the same game (-want +got):\n%s", diff)
	}
}

func TestEngine_SetState(t *testing.T) {
	engine := NewEngineWithDefaults()

	if err := engine.SetState(nil); err == nil {
		t.Error("Expected error for nil state")
	}

	broken := DealSeed(1, DefaultOpenCells)
	broken.Tableaux[0] = broken.Tableaux[0][:3]
	if err := engine.SetState(broken); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState, got %v", err)
	}

	good := DealSeed(1, DefaultOpenCells)
	if err := engine.SetState(good); err != nil {
		t.Fatalf("SetState failed: %v", err)
	}
	if engine.GetState() == good {
		t.Error("Expected SetState to copy the state")
	}
}

func TestEngine_AutoPlayAndSelectable(t *testing.T) {
	config := createTestConfig()
	config.AutoPlay = false
	engine, err := NewEngineWithSeed(config, 5)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	selectable := engine.GetSelectable()
	if len(selectable) != NumTableaux {
		t.Fatalf("Expected %d columns, got %d", NumTableaux, len(selectable))
	}
	for column, depths := range selectable {
		if len(depths) == 0 || !depths[len(depths)-1] {
			t.Errorf("column %d: expected the top card to be selectable", column)
		}
	}
	if engine.GetMaxMoveable() != 5 {
		t.Errorf("Expected capacity 5 on a fresh deal, got %d", engine.GetMaxMoveable())
	}

	moves := engine.AutoPlay()
	if err := ValidateState(engine.GetState()); err != nil {
		t.Errorf("Auto-play broke the table: %v", err)
	}
	if FoundationCount(engine.GetState()) != len(moves) {
		t.Errorf("Expected %d foundation cards, got %d", len(moves), FoundationCount(engine.GetState()))
	}
}

func TestEngine_ConfigManagement(t *testing.T) {
	engine := NewEngineWithDefaults()

	config := createTestConfig()
	config.OpenCells = 2
	if err := engine.SetConfig(config); err != nil {
		t.Fatalf("SetConfig failed: %v", err)
	}
	if len(engine.GetState().OpenCells) != 2 {
		t.Errorf("Expected 2 open cells after SetConfig, got %d", len(engine.GetState().OpenCells))
	}

	bad := createTestConfig()
	bad.Name = ""
	if err := engine.SetConfig(bad); err == nil {
		t.Error("Expected SetConfig to reject an invalid config")
	}
}

func TestEngine_BulkMove(t *testing.T) {
	config := createTestConfig()
	config.AutoPlay = false
	engine, err := NewEngineWithSeed(config, 9)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	moves := []Move{
		{From: TableauPosition(0, 6), To: ToOpenCell(0)},
		{From: TableauPosition(1, 6), To: ToOpenCell(0)},
		{From: FoundationPosition(0), To: ToOpenCell(1)},
	}
	results, err := engine.BulkMove(moves)
	if err != nil {
		t.Fatalf("BulkMove failed: %v", err)
	}
	if diff := cmp.Diff([]bool{true, false, false}, results); diff != "" {
		t.Errorf("BulkMove results mismatch (-want +got):\n%s", diff)
	}

	if _, err := engine.BulkMove(make([]Move, MaxBulkMoves+1)); err == nil {
		t.Error("Expected an error for too many moves")
	}
}
