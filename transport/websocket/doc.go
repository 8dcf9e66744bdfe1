// Package websocket provides WebSocket transport for the FreeCell game
// server.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Broadcasting of game views after each state change
//   - Connection lifecycle management
//
// Architecture:
//
// A central Hub owns all connections. Each client has a read goroutine and
// a write goroutine; the Hub's Run loop is the only writer of the session
// table, so broadcasts from HTTP handlers are queued rather than delivered
// directly.
//
// Message Protocol:
//
// Outgoing messages are JSON:
//
//	{"session_id": "3f9a0c1b", "event": "state_update", "view": {...}}
//
// Incoming messages are read and discarded.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run(ctx)
//
//	hub.ServeWS(w, r, sessionID)
//	hub.BroadcastToSession(sessionID, view)
package websocket
