// Package service defines the operation boundary between the WordWar core
// and its transports.
//
// GameService is the interface the websocket dispatcher, the REST API and
// the MCP surface call into; its implementation delegates to the room
// registry. Request/response types in this package mirror the wire payloads
// (create_room, join_room, start_game, select_letter) so transports can
// decode straight into them.
//
// The service also fills in generated UUIDs for requests that omit room or
// player identifiers and returns the assigned pair as a RoomHandle, which
// the transport keeps for connection-level cleanup.
package service
