// Package engine provides the core rules of FreeCell solitaire.
//
// The engine package implements:
//   - Card and deck model with seeded, reproducible deals
//   - Position addressing and its text encoding (TABLEAU:3/5, OPEN:1, FOUNDATION:0)
//   - Move validation, including the free-cell capacity for multi-card runs
//   - Move execution, copy-on-write (Apply) or in place (ApplyInPlace)
//   - Auto-play of eligible cards to the foundations
//   - Victory detection and configuration loading
//
// Core Types:
//
// GameState is the serializable table. The Engine interface, implemented by
// GameEngine, wraps a state together with its GameConfig and deal seed.
// The rules themselves are methods on *GameState and perform no I/O.
//
// Usage:
//
//	config, err := engine.LoadConfigByName("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	from, _ := engine.ParsePosition("TABLEAU:2/6")
//	outcome, err := gameEngine.Move(engine.Move{From: from, To: engine.ToFoundation(0)})
//
// Game Rules:
//
// Cards are dealt into eight columns. A card may go onto a column whose top
// card is one rank higher and of the opposite color, into an empty open cell,
// or onto the foundation of its suit in ascending order. Runs longer than one
// card can move as a unit when enough open cells and empty columns exist to
// shuttle them. The game is won when every foundation holds its King.
package engine
