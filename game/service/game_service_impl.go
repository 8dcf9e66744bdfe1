package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wricardo/mcp-training/freecell/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, opts CreateOptions) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if opts.ConfigName != "" {
		config, err = s.configs.LoadConfig(opts.ConfigName)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("%w: '%s'. Available configs: %v", ErrConfigNotFound, opts.ConfigName, configIDs)
				}
				return nil, fmt.Errorf("%w: '%s'. Use /api/configs to list available configurations", ErrConfigNotFound, opts.ConfigName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", opts.ConfigName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	if opts.Seed != nil && *opts.Seed < 0 {
		return nil, fmt.Errorf("%w: seed must not be negative, got %d", ErrInvalidRequest, *opts.Seed)
	}

	session, err := s.sessions.Create("", config, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := opts.ConfigName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	log.Info().
		Str("session", session.ID).
		Str("config", configID).
		Int64("seed", session.Engine.GetSeed()).
		Msg("session created")

	return newSessionInfo(session, configID), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return newSessionInfo(session, s.getConfigID(session.Config.Name)), nil
}

// ListSessions returns all active sessions, oldest first
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	slices.SortFunc(sessions, func(a, b *Session) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, newSessionInfo(sess, s.getConfigID(sess.Config.Name)))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	log.Info().Str("session", sessionID).Msg("session deleted")
	return nil
}

// Move validates and executes a single move for a session
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, req MoveRequest) (*MoveResult, error) {
	m, err := parseMoveRequest(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	var events []GameEvent
	if req.Reset {
		sess.Engine.Reset()
		events = append(events, newEvent(EventReset, "Game reset to the initial deal", ""))
	}

	result, err := s.applyMove(sess, m)
	if err != nil {
		return nil, err
	}
	result.Events = append(events, result.Events...)
	return result, nil
}

// BulkMove executes moves in order until one is illegal or the game is won
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, moves []MoveRequest) (*BulkMoveResult, error) {
	if len(moves) > engine.MaxBulkMoves {
		return nil, fmt.Errorf("%w: too many moves: %d (max %d)", ErrInvalidMove, len(moves), engine.MaxBulkMoves)
	}

	parsed := make([]engine.Move, 0, len(moves))
	for i, req := range moves {
		m, err := parseMoveRequest(req)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		parsed = append(parsed, m)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	result := &BulkMoveResult{
		RequestedMoves: len(moves),
		Success:        true,
		Events:         []GameEvent{},
	}
	if len(moves) > 0 && moves[0].Reset {
		sess.Engine.Reset()
		result.Events = append(result.Events, newEvent(EventReset, "Game reset to the initial deal", ""))
	}
	for i, m := range parsed {
		if sess.Engine.IsVictory() {
			result.StoppedReason = "game already won"
			result.StoppedOnMove = i + 1
			break
		}

		step, err := s.applyMove(sess, m)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		result.Events = append(result.Events, step.Events...)
		if !step.Success {
			result.Success = false
			result.StoppedReason = step.Message
			result.StoppedOnMove = i + 1
			break
		}
		result.MovesExecuted++
	}

	result.View = newGameView(sess.Engine)
	return result, nil
}

// AutoPlay sends every eligible card of a session to the foundations
func (s *gameServiceImpl) AutoPlay(ctx context.Context, sessionID string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	before := sess.Engine.GetState()
	moves := sess.Engine.AutoPlay()

	result := &MoveResult{
		Success:  len(moves) > 0,
		AutoPlay: moves,
		Events:   foundationEvents(before, moves),
		View:     newGameView(sess.Engine),
	}
	result.Message = autoPlayedMessage(sess.Config, len(moves))
	if result.View.Victory && len(moves) > 0 {
		result.Events = append(result.Events, newEvent(EventVictory, sess.Config.Messages.Victory, ""))
		result.Message = sess.Config.Messages.Victory
	}

	log.Debug().Str("session", sessionID).Int("moves", len(moves)).Msg("auto-play")
	return result, nil
}

// Reset redeals the session's game
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Engine.Reset()
	log.Info().Str("session", sessionID).Int64("seed", sess.Engine.GetSeed()).Msg("game reset")
	return newGameView(sess.Engine), nil
}

// GetGameState returns the current view of a session's game
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*GameView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return newGameView(sess.Engine), nil
}

// PossibleMoves lists every legal move of a session's game
func (s *gameServiceImpl) PossibleMoves(ctx context.Context, sessionID string) ([]engine.Move, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	moves := sess.Engine.GetPossibleMoves()
	if moves == nil {
		moves = []engine.Move{}
	}
	return moves, nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// getSession looks a session up and marks it as accessed.
func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	_ = s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}

// applyMove runs m through the session engine and describes what happened.
func (s *gameServiceImpl) applyMove(sess *Session, m engine.Move) (*MoveResult, error) {
	before := sess.Engine.GetState()
	card, _, err := before.CardAt(m.From)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}

	outcome, err := sess.Engine.Move(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}

	result := &MoveResult{
		Success: outcome.Legal,
		Move:    &m,
		View:    newGameView(sess.Engine),
	}

	log.Debug().
		Str("session", sess.ID).
		Str("move", m.String()).
		Bool("legal", outcome.Legal).
		Int("auto_play", len(outcome.AutoPlay)).
		Msg("move")

	if !outcome.Legal {
		result.Message = illegalMoveMessage(sess.Config)
		return result, nil
	}

	eventType := EventMove
	if m.To.Stack == engine.StackFoundation {
		eventType = EventFoundation
	}
	result.Events = append(result.Events,
		newEvent(eventType, fmt.Sprintf("Moved %s from %s to %s", card, m.From, m.To), card.String()))

	afterMove, err := before.Apply(m)
	if err != nil {
		return nil, err
	}
	result.AutoPlay = outcome.AutoPlay
	result.Events = append(result.Events, foundationEvents(afterMove, outcome.AutoPlay)...)

	result.Message = "Move accepted"
	if len(outcome.AutoPlay) > 0 {
		result.Message = autoPlayedMessage(sess.Config, len(outcome.AutoPlay))
	}
	if outcome.Victory {
		result.Events = append(result.Events, newEvent(EventVictory, sess.Config.Messages.Victory, ""))
		result.Message = sess.Config.Messages.Victory
	}
	return result, nil
}

// foundationEvents replays moves on a copy of from to name the card of each.
func foundationEvents(from *engine.GameState, moves []engine.Move) []GameEvent {
	if len(moves) == 0 {
		return nil
	}
	state := from.Clone()
	events := make([]GameEvent, 0, len(moves))
	for _, m := range moves {
		card, ok, _ := state.CardAt(m.From)
		if !ok {
			break
		}
		events = append(events, newEvent(EventFoundation,
			fmt.Sprintf("%s auto-played to %s", card, m.To), card.String()))
		if err := state.ApplyInPlace(m); err != nil {
			break
		}
	}
	return events
}

func parseMoveRequest(req MoveRequest) (engine.Move, error) {
	from, err := engine.ParsePosition(req.From)
	if err != nil {
		return engine.Move{}, fmt.Errorf("%w: from: %w", ErrInvalidMove, err)
	}
	to, err := engine.ParseTarget(req.To)
	if err != nil {
		return engine.Move{}, fmt.Errorf("%w: to: %w", ErrInvalidMove, err)
	}
	return engine.Move{From: from, To: to}, nil
}

func newGameView(e *engine.GameEngine) *GameView {
	state := e.GetState()
	return &GameView{
		State:              state,
		Selectable:         e.GetSelectable(),
		MaxMoveable:        e.GetMaxMoveable(),
		MaxMoveableToEmpty: engine.MaxMoveableCardsToEmptyTableau(state.Tableaux, state.OpenCells),
		FoundationCards:    engine.FoundationCount(state),
		Victory:            e.IsVictory(),
		Board:              engine.RenderBoard(state),
	}
}

func newSessionInfo(sess *Session, configID string) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     configID,
		Seed:           sess.Engine.GetSeed(),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
		GameConfig:     sess.Config,
	}
}

func newEvent(eventType, message, card string) GameEvent {
	return GameEvent{
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
		Card:      card,
	}
}

func illegalMoveMessage(config *engine.GameConfig) string {
	if config.Messages.IllegalMove != "" {
		return config.Messages.IllegalMove
	}
	return "That move is not allowed"
}

func autoPlayedMessage(config *engine.GameConfig, n int) string {
	if n == 0 {
		return "No card can go to the foundations"
	}
	if config.Messages.AutoPlayed != "" {
		return fmt.Sprintf(config.Messages.AutoPlayed, n)
	}
	return fmt.Sprintf("Auto-played %d card(s) to the foundations", n)
}
