// Package service provides the business logic layer for the FreeCell game server.
//
// The service package implements:
//   - Multi-session game management
//   - Configuration lookup
//   - Move parsing, validation and execution
//   - Auto-play and game events for clients
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages game configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine. Each session owns its own engine instance. Moves arrive in
// the text encoding ("TABLEAU:3/5" to "FOUNDATION:0"); requests that do not
// parse, or that point outside the table, fail with ErrInvalidMove, while a
// well-formed illegal move is reported through MoveResult.Success.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, service.CreateOptions{ConfigName: "classic"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Move(ctx, info.ID, service.MoveRequest{From: "TABLEAU:0/6", To: "OPEN:0"})
package service
