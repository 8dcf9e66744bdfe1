package engine

const (
	// Validation constants
	MaxNameLength = 64
	MaxBulkMoves  = 50
)

// GameConfig represents the game configuration from JSON
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OpenCells   int    `json:"open_cells"`
	AutoPlay    bool   `json:"auto_play"`
	// Seed pins the deal. Nil means every new game draws its own seed.
	Seed     *int64 `json:"seed,omitempty"`
	Messages struct {
		Welcome     string `json:"welcome"`
		Victory     string `json:"victory"`
		IllegalMove string `json:"illegal_move"`
		AutoPlayed  string `json:"auto_played"`
	} `json:"messages"`
}

// MoveOutcome describes what a single GameEngine.Move did.
type MoveOutcome struct {
	Legal    bool   `json:"legal"`
	Move     Move   `json:"move"`
	AutoPlay []Move `json:"auto_play,omitempty"`
	Victory  bool   `json:"victory"`
}
