// Package api provides the HTTP REST API of the FreeCell game server.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create a session ({"config_id": "classic", "seed": 42}, both optional)
//   - GET /api/sessions - List sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET /api/sessions/{id} - Get a session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game view
//   - GET /api/sessions/{id}/board - Plain-text board
//   - GET /api/sessions/{id}/moves - Every legal move
//   - POST /api/sessions/{id}/move - Perform one move
//   - POST /api/sessions/{id}/bulk-move - Perform several moves in order
//   - POST /api/sessions/{id}/autoplay - Send eligible cards to the foundations
//   - POST /api/sessions/{id}/reset - Redeal the session's seed
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - GET /api/configs/{name} - Get one configuration
//
// Other:
//   - GET /api/health - Liveness
//   - GET /ws?session={id} - WebSocket stream of view updates
//
// Moves:
//
// Positions use the text encoding of the engine package:
//
//	{"from": "TABLEAU:3/5", "to": "FOUNDATION:0"}
//	{"moves": [{"from": "OPEN:1", "to": "TABLEAU:2"}], "reset": true}
//
// An illegal move is not an HTTP error: the response is 200 with
// "success": false. A request naming no valid position is a 400.
//
// Error Handling:
//
// Errors are returned as JSON:
//
//	{"error": "session not found: 3f9a0c1b"}
//
// Unknown sessions and configurations map to 404, malformed moves to 400
// and everything else to 500.
package api
