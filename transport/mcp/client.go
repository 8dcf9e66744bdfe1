package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/mcp-training/freecell/game/engine"
	"github.com/wricardo/mcp-training/freecell/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"FreeCell",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`FreeCell - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Move all 52 cards onto the four foundations, each built from Ace to King in one suit.

POSITIONS:
- TABLEAU:c/d  card at depth d (0 = buried) of column c (0-7)
- OPEN:s       open cell s
- FOUNDATION:s foundation s (0=H, 1=D, 2=C, 3=S)
Destinations name only the stack: TABLEAU:c, OPEN:s, FOUNDATION:s.

AVAILABLE TOOLS:
- create_session, get_session, list_sessions: session management
- game_state: board and derived values
- possible_moves: every legal move right now
- move: one move - requires intent explanation
- bulk_move: several moves in order - requires intent explanation
- auto_play: send every eligible card to the foundations
- describe_position: what card sits at a position and whether it can be picked up
- reset_game: redeal the same game
- list_configs, game_instructions

NOTE: The 'intent' parameter on move/bulk_move serves as rubber duck debugging - explain your reasoning!`),
	)

	c.registerTools()
}

func sessionIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config and deal seed",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Config ID to use (optional, see list_configs)",
				},
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Deal seed; the same seed always deals the same game (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board, foundations and movable run sizes",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "possible_moves",
		Description: "List every legal move in the current position",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handlePossibleMoves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Move a card or run from one position to a stack",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"from": map[string]interface{}{
					"type":        "string",
					"description": "Source position, e.g. TABLEAU:3/5 or OPEN:1",
				},
				"to": map[string]interface{}{
					"type":        "string",
					"description": "Destination stack, e.g. TABLEAU:2, OPEN:0 or FOUNDATION:1",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Redeal before moving",
				},
			},
			Required: []string{"session_id", "from", "to"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: "Execute several moves in order, stopping at the first illegal one",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"moves": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"from": map[string]interface{}{"type": "string"},
							"to":   map[string]interface{}{"type": "string"},
						},
						"required": []string{"from", "to"},
					},
					"description": fmt.Sprintf("Moves to perform (at most %d)", engine.MaxBulkMoves),
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of moves (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Redeal before moving",
				},
			},
			Required: []string{"session_id", "moves"},
		},
	}, c.handleBulkMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "auto_play",
		Description: "Send every card that can go to a foundation there",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleAutoPlay)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Redeal the session's game from its seed",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_position",
		Description: "Describe the card at a position and whether it can be picked up. Useful for checking a run before moving it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"position": map[string]interface{}{
					"type":        "string",
					"description": "Position, e.g. TABLEAU:4/2, OPEN:0 or FOUNDATION:3",
				},
			},
			Required: []string{"session_id", "position"},
		},
	}, c.handleDescribePosition)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		return map[string]interface{}{}
	}
	return args
}

func sessionPath(sessionID, suffix string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	body := map[string]interface{}{}
	if configName, _ := args["config_name"].(string); configName != "" {
		body["config_id"] = configName
	}
	if seed, ok := args["seed"].(float64); ok {
		body["seed"] = int64(seed)
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\nSeed: %d\n", session.ID, session.ConfigName, session.Seed)
	if session.GameConfig != nil && session.GameConfig.Messages.Welcome != "" {
		result += session.GameConfig.Messages.Welcome + "\n"
	}
	if session.GameState != nil {
		result += "\n" + engine.RenderBoard(session.GameState)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		foundation := 0
		if s.GameState != nil {
			foundation = engine.FoundationCount(s.GameState)
		}
		fmt.Fprintf(&b, "- %s (Config: %s, Seed: %d, Foundations: %d/%d, Created: %s)\n",
			s.ID, s.ConfigName, s.Seed, foundation, engine.DeckSize, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, ""), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var view service.GameView
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &view); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameView(&view)), nil
}

func (c *Client) handlePossibleMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var response struct {
		Count int           `json:"count"`
		Moves []engine.Move `json:"moves"`
	}
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/moves"), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoves(response.Moves)), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	from, _ := args["from"].(string)
	to, _ := args["to"].(string)
	reset, _ := args["reset"].(bool)

	// intent is accepted and ignored

	body := service.MoveRequest{From: from, To: to, Reset: reset}

	var result service.MoveResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/move"), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(&result)), nil
}

func (c *Client) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	movesRaw, _ := args["moves"].([]interface{})
	reset, _ := args["reset"].(bool)

	moves := make([]service.MoveRequest, 0, len(movesRaw))
	for i, raw := range movesRaw {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("move %d: expected an object with from and to", i+1)), nil
		}
		from, _ := m["from"].(string)
		to, _ := m["to"].(string)
		moves = append(moves, service.MoveRequest{From: from, To: to})
	}

	body := map[string]interface{}{
		"moves": moves,
		"reset": reset,
	}

	var result service.BulkMoveResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/bulk-move"), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBulkMoveResult(sessionID, &result)), nil
}

func (c *Client) handleAutoPlay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var result service.MoveResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/autoplay"), nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	if len(result.AutoPlay) == 0 {
		b.WriteString("No card can go to a foundation right now.\n\n")
	} else {
		b.WriteString(result.Message + "\n")
		writeMoveList(&b, result.AutoPlay)
		b.WriteString("\n")
	}
	if result.View != nil {
		b.WriteString(formatGameView(result.View))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		View    *service.GameView `json:"view"`
	}
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/reset"), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := response.Message + "\n\n"
	if response.View != nil {
		result += formatGameView(response.View)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Configurations:\n\n")
	for _, config := range configs {
		autoPlay := "off"
		if config.AutoPlay {
			autoPlay = "on"
		}
		fmt.Fprintf(&b, "• %s (config_name: %s)\n  %s\n  Open cells: %d, Auto-play: %s",
			config.Name, config.ConfigID, config.Description, config.OpenCells, autoPlay)
		if config.Seed != nil {
			fmt.Fprintf(&b, ", Fixed deal: %d", *config.Seed)
		}
		b.WriteString("\n\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(gameInstructions), nil
}

func (c *Client) handleDescribePosition(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	raw, _ := args["position"].(string)

	pos, err := engine.ParsePosition(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var view service.GameView
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &view); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if view.State == nil {
		return mcp.NewToolResultError("no game state returned"), nil
	}

	return mcp.NewToolResultText(describePosition(&view, pos)), nil
}

const gameInstructions = `🃏 FreeCell - Complete Instructions

GAME OBJECTIVE:
Move all 52 cards onto the four foundations. Each foundation holds one suit
and is built upward from Ace to King.

THE TABLE:
• 8 tableau columns, dealt face up (4 columns of 7 cards, 4 of 6)
• Open cells (usually 4), each holding a single card
• 4 foundations, slot 0=Hearts, 1=Diamonds, 2=Clubs, 3=Spades

CARDS:
Written rank then suit: A, 2-10, J, Q, K followed by H, D, C or S.
Examples: AH, 10C, QS.

POSITIONS:
• TABLEAU:c/d   card at depth d of column c; depth 0 is the buried card
• OPEN:s        open cell s
• FOUNDATION:s  foundation s
Destinations name a stack only: TABLEAU:c, OPEN:s, FOUNDATION:s.

MOVE RULES:
• A card goes onto a column whose top card is one rank higher and of the
  opposite color (red on black, black on red). Any card may go to an empty column.
• A card goes into an empty open cell. Only exposed (top) cards may.
• A card goes onto its suit's foundation when it is the next rank up.
• A run of cards (each one lower and alternating color) moves as a unit when
  (free open cells + 1) × 2^(empty columns) is at least its length. Moving
  to an empty column does not count that column.
• Cards on foundations stay there.

AUTO-PLAY:
When the configuration enables it, every card that can go to a foundation is
sent there after each move. The auto_play tool does the same on demand.

STRATEGY TIPS:
• Free Aces and Twos early; they block everything above them.
• Empty columns are worth more than open cells: each doubles your run size.
• Use possible_moves and describe_position before long sequences.
• Keep open cells free; a full set of cells leaves only single-card moves.

MOVE COMMANDS:
• move: {"from": "TABLEAU:3/6", "to": "FOUNDATION:0"}
• bulk_move: {"moves": [{"from": "OPEN:1", "to": "TABLEAU:2"}, ...]}
• An illegal move changes nothing and reports failure.

VICTORY CONDITIONS:
The game is won when every foundation holds its King.

Good luck!`

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session: %s\nConfig: %s\nSeed: %d\nCreated: %s\nLast accessed: %s\n",
		session.ID, session.ConfigName, session.Seed,
		session.CreatedAt.Format(time.RFC3339), session.LastAccessedAt.Format(time.RFC3339))
	if session.GameState != nil {
		fmt.Fprintf(&b, "Foundation cards: %d/%d\n\n", engine.FoundationCount(session.GameState), engine.DeckSize)
		b.WriteString(engine.RenderBoard(session.GameState))
	}
	return b.String()
}

func formatGameView(view *service.GameView) string {
	var b strings.Builder

	if view.Victory {
		b.WriteString("🎉 VICTORY! Every foundation is complete.\n\n")
	}

	board := view.Board
	if board == "" && view.State != nil {
		board = engine.RenderBoard(view.State)
	}
	b.WriteString(board)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Foundation cards: %d/%d\n", view.FoundationCards, engine.DeckSize)
	fmt.Fprintf(&b, "Max run: %d (to an empty column: %d)\n", view.MaxMoveable, view.MaxMoveableToEmpty)

	if view.State != nil {
		var next []string
		for slot := range view.State.Foundations {
			if card := engine.NextFoundationCard(view.State, slot); card != nil {
				next = append(next, card.String())
			}
		}
		if len(next) > 0 {
			fmt.Fprintf(&b, "Foundations need: %s\n", strings.Join(next, " "))
		}
	}
	return b.String()
}

func formatMoves(moves []engine.Move) string {
	if len(moves) == 0 {
		return "No legal moves.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Legal moves (%d):\n", len(moves))
	writeMoveList(&b, moves)
	return b.String()
}

func writeMoveList(b *strings.Builder, moves []engine.Move) {
	for i, m := range moves {
		fmt.Fprintf(b, "%2d. %s\n", i+1, m)
	}
}

func formatMoveResult(result *service.MoveResult) string {
	var b strings.Builder

	if result.Success {
		b.WriteString("✓ Move successful")
		if result.Move != nil {
			b.WriteString(": " + result.Move.String())
		}
		b.WriteString("\n")
	} else {
		b.WriteString("✗ Move failed")
		if result.Move != nil {
			b.WriteString(": " + result.Move.String())
		}
		b.WriteString("\n")
	}
	if result.Message != "" {
		b.WriteString(result.Message + "\n")
	}

	if len(result.AutoPlay) > 0 {
		fmt.Fprintf(&b, "\nAuto-played (%d):\n", len(result.AutoPlay))
		writeMoveList(&b, result.AutoPlay)
	}

	if result.View != nil {
		b.WriteString("\n" + formatGameView(result.View))
	}
	return b.String()
}

func formatBulkMoveResult(sessionID string, result *service.BulkMoveResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bulk move on %s: %d/%d executed\n", sessionID, result.MovesExecuted, result.RequestedMoves)
	if result.StoppedReason != "" {
		fmt.Fprintf(&b, "Stopped on move %d: %s\n", result.StoppedOnMove, result.StoppedReason)
	}

	foundation := 0
	for _, ev := range result.Events {
		if ev.Type == service.EventFoundation {
			foundation++
		}
	}
	if foundation > 0 {
		fmt.Fprintf(&b, "Cards sent to foundations: %d\n", foundation)
	}

	if result.View != nil {
		b.WriteString("\n" + formatGameView(result.View))
	}
	return b.String()
}

func describePosition(view *service.GameView, pos engine.Position) string {
	card, ok, err := view.State.CardAt(pos)
	if err != nil {
		return fmt.Sprintf("%s: %v\n", pos, err)
	}
	if !ok {
		return fmt.Sprintf("%s is empty\n", pos)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s holds %s (%s)\n", pos, card, card.Pretty())

	switch pos.Stack {
	case engine.StackTableau:
		col := view.State.Tableaux[pos.Index]
		run := len(col) - pos.Depth
		selectable := view.Selectable != nil && pos.Index < len(view.Selectable) &&
			pos.Depth < len(view.Selectable[pos.Index]) && view.Selectable[pos.Index][pos.Depth]
		if selectable {
			fmt.Fprintf(&b, "Can be picked up as a run of %d card(s)\n", run)
		} else {
			fmt.Fprintf(&b, "Cannot be picked up: the %d card(s) from here do not form a movable run\n", run)
		}
	case engine.StackOpen:
		b.WriteString("Can be moved to a column, a foundation or another open cell\n")
	case engine.StackFoundation:
		b.WriteString("Top of a foundation; foundation cards do not move\n")
	}
	return b.String()
}
