// Package websocket provides the WebSocket transport for WordWar rooms.
//
// The websocket package implements:
//   - Real-time bidirectional communication per player connection
//   - Frame dispatch into the game service
//   - Delivery of room broadcasts back to the peer
//   - Connection lifecycle management
//
// Message Protocol:
//
// Incoming frames are an event name, a '#' separator and a JSON body:
//
//	create_room#{"id":"R1","playerId":"p1","playerName":"Ana"}
//	join_room#{"id":"R1","playerId":"p2","playerName":"Rui"}
//	start_game#{"roomId":"R1"}
//	select_letter#{"letterId":"3","roomId":"R1","playerId":"p2"}
//
// Outgoing frames are either plain advisory/error texts ("The match will
// start in 3", "Room R1 does not exist.") or the broadcast envelope
// {"event":"game_state_changed","payload":"<GameState JSON>"}.
//
// Connection Lifecycle:
//
// 1. Client connects and upgrades
// 2. A successful create_room or join_room binds the connection to a
// room/player pair and attaches it to that room's broadcaster
// 3. Client sends events, receives state updates
// 4. Disconnection removes the player from its room
//
// Concurrency:
//
// Each connection runs a read pump and a write pump. Room broadcasts enqueue
// onto a buffered send channel and never block the game core.
package websocket
