// Package broadcast implements per-room message fan-out for the WordWar
// server.
//
// A Broadcaster holds the sessions currently connected to one room and
// pushes two kinds of messages to them: plain advisory text (countdown
// ticks, disposal notices, error messages) and serialized game-state
// versions wrapped in a tagged envelope. Delivery is best effort per
// session; a broken session is logged and skipped so it cannot stall the
// rest of the room.
package broadcast
