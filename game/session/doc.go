// Package session provides in-memory session management for the FreeCell
// game server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each service.Session owns its own engine instance and records creation and
// last access times.
//
// Session Identifiers:
//
// Generated IDs are the first eight hex characters of a random UUID. Lookups
// are case-insensitive. Callers may also supply their own IDs.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", config, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	go manager.RunCleanup(ctx, time.Minute, 24*time.Hour)
//
// Sessions are not persisted; they are lost when the process exits.
package session
