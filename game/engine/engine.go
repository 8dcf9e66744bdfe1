package engine

import "fmt"

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsVictory() bool
	GetSeed() int64

	// Move operations
	Move(m Move) (MoveOutcome, error)
	CanMove(m Move) (bool, error)
	AutoPlay() []Move
	GetPossibleMoves() []Move
	GetSelectable() [][]bool
	GetMaxMoveable() int

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error
}

// GameEngine implements the Engine interface. States handed out by GetState
// are never mutated afterwards; every change installs a new state.
type GameEngine struct {
	state  *GameState
	config *GameConfig
	seed   int64
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	return NewEngineWithSeed(config, SeedFor(config))
}

// NewEngineWithSeed creates an engine dealing the game identified by seed.
func NewEngineWithSeed(config *GameConfig, seed int64) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	engine := &GameEngine{
		config: config,
		seed:   seed,
		state:  InitGameStateFromConfig(config, seed),
	}
	return engine, nil
}

// NewEngineWithDefaults creates a new game engine with default configuration
func NewEngineWithDefaults() *GameEngine {
	config := DefaultGameConfig()
	seed := SeedFor(config)
	return &GameEngine{
		config: config,
		seed:   seed,
		state:  InitGameStateFromConfig(config, seed),
	}
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState replaces the game state after checking it is a legal table.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if err := ValidateState(state); err != nil {
		return err
	}
	e.state = state.Clone()
	return nil
}

// Reset redeals the current seed.
func (e *GameEngine) Reset() *GameState {
	e.state = InitGameStateFromConfig(e.config, e.seed)
	return e.state
}

// IsVictory returns whether the player has won
func (e *GameEngine) IsVictory() bool {
	return e.state.IsVictorious()
}

// GetSeed returns the seed the current game was dealt from.
func (e *GameEngine) GetSeed() int64 {
	return e.seed
}

// Move validates and performs m. An illegal move leaves the state untouched
// and reports Legal false. When the configuration enables it, every card
// that can go to a foundation afterwards is sent there.
func (e *GameEngine) Move(m Move) (MoveOutcome, error) {
	outcome := MoveOutcome{Move: m}

	legal, err := e.state.CanApply(m)
	if err != nil {
		return outcome, err
	}
	if !legal {
		outcome.Victory = e.state.IsVictorious()
		return outcome, nil
	}

	next, err := e.state.Apply(m)
	if err != nil {
		return outcome, err
	}
	if e.config.AutoPlay {
		outcome.AutoPlay = next.AutoPlay()
	}

	e.state = next
	outcome.Legal = true
	outcome.Victory = next.IsVictorious()
	return outcome, nil
}

// CanMove reports whether m is legal in the current state.
func (e *GameEngine) CanMove(m Move) (bool, error) {
	return e.state.CanApply(m)
}

// AutoPlay sends every eligible card to the foundations regardless of the
// configuration.
func (e *GameEngine) AutoPlay() []Move {
	next := e.state.shallowClone()
	moves := next.AutoPlay()
	if len(moves) > 0 {
		e.state = next
	}
	return moves
}

// GetPossibleMoves returns every legal move in the current state
func (e *GameEngine) GetPossibleMoves() []Move {
	return e.state.PossibleMoves()
}

// GetSelectable returns SelectableDepths for every column.
func (e *GameEngine) GetSelectable() [][]bool {
	out := make([][]bool, len(e.state.Tableaux))
	for column := range e.state.Tableaux {
		out[column] = e.state.SelectableDepths(column)
	}
	return out
}

// GetMaxMoveable returns how many cards can currently move onto a non-empty column.
func (e *GameEngine) GetMaxMoveable() int {
	return MaxMoveableCards(e.state.Tableaux, e.state.OpenCells)
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and deals a new game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	e.seed = SeedFor(config)
	e.state = InitGameStateFromConfig(config, e.seed)
	return nil
}

// BulkMove executes multiple moves in sequence, returning the legality of
// each. It stops at the first error or once the game is won.
func (e *GameEngine) BulkMove(moves []Move) ([]bool, error) {
	if len(moves) > MaxBulkMoves {
		return nil, fmt.Errorf("too many moves: %d (max %d)", len(moves), MaxBulkMoves)
	}

	results := make([]bool, 0, len(moves))
	for _, m := range moves {
		if e.IsVictory() {
			break
		}
		outcome, err := e.Move(m)
		if err != nil {
			return results, err
		}
		results = append(results, outcome.Legal)
	}
	return results, nil
}
