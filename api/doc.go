// Package api provides the HTTP surface for the WordWar server.
//
// The api package implements:
//   - Room listings and per-room game state reads
//   - Administrative room disposal
//   - Game configuration listing, retrieval and creation
//   - Health checks and the /ws WebSocket mount
//
// Endpoints:
//
//	GET    /api/rooms             - List active rooms
//	GET    /api/rooms/{id}/state  - Latest game state of a room
//	DELETE /api/rooms/{id}        - Dispose a room
//	GET    /api/configs           - List configurations
//	POST   /api/configs           - Save a configuration
//	GET    /api/configs/{name}    - Load a configuration
//	GET    /api/health            - Health check
//	       /ws                    - Game WebSocket
//
// All gameplay happens over the WebSocket; the REST surface is read-mostly
// and intended for dashboards and operators.
package api
