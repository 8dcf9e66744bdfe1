// Package mcp provides a Model Context Protocol server for the FreeCell game.
//
// The server is a thin proxy: every tool call is translated into a request
// against the REST API and the JSON response is rendered as text for the
// agent.
//
// MCP Tools:
//   - create_session, get_session, list_sessions: session management
//   - game_state: board, foundations and movable run sizes
//   - possible_moves: every legal move
//   - move, bulk_move: perform moves given as TABLEAU:c/d, OPEN:s, FOUNDATION:s
//   - auto_play: send eligible cards to the foundations
//   - describe_position: inspect one position
//   - reset_game: redeal from the session seed
//   - list_configs, game_instructions
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	if err := server.ServeStdio(client.GetMCPServer()); err != nil {
//		log.Fatal(err)
//	}
package mcp
