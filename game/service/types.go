package service

import (
	"time"

	"github.com/wricardo/mcp-training/freecell/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	Seed           int64              `json:"seed"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// CreateOptions selects the configuration and, optionally, the deal of a new session.
type CreateOptions struct {
	ConfigName string `json:"config_name,omitempty"`
	Seed       *int64 `json:"seed,omitempty"`
}

// MoveRequest names a move in the text encoding, e.g. From "TABLEAU:3/5", To "FOUNDATION:0".
type MoveRequest struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Reset bool   `json:"reset,omitempty"`
}

// GameView is the game state together with the derived values a client needs
// to present it.
type GameView struct {
	State              *engine.GameState `json:"state"`
	Selectable         [][]bool          `json:"selectable"`
	MaxMoveable        int               `json:"max_moveable"`
	MaxMoveableToEmpty int               `json:"max_moveable_to_empty"`
	FoundationCards    int               `json:"foundation_cards"`
	Victory            bool              `json:"victory"`
	Board              string            `json:"board"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message"`
	Move     *engine.Move  `json:"move,omitempty"`
	AutoPlay []engine.Move `json:"auto_play,omitempty"`
	Events   []GameEvent   `json:"events,omitempty"`
	View     *GameView     `json:"view"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	MovesExecuted  int         `json:"moves_executed"`
	RequestedMoves int         `json:"requested_moves"`
	Success        bool        `json:"success"`
	StoppedReason  string      `json:"stopped_reason,omitempty"`
	StoppedOnMove  int         `json:"stopped_on_move,omitempty"` // 1-based index of the move that caused the stop
	Events         []GameEvent `json:"events"`
	View           *GameView   `json:"view"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "move", "foundation", "victory", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Card      string    `json:"card,omitempty"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	OpenCells   int    `json:"open_cells"`
	AutoPlay    bool   `json:"auto_play"`
	Seed        *int64 `json:"seed,omitempty"`
}

// Event types
const (
	EventMove       = "move"
	EventFoundation = "foundation"
	EventVictory    = "victory"
	EventReset      = "reset"
)
