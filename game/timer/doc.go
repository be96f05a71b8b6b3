// Package timer provides the per-room scheduler for the WordWar server.
//
// Each room owns one Scheduler, which runs the pre-match countdown and the
// fixed-length game clock. Every timer of a scheduler hangs off a single
// context; stopping the scheduler (which happens when the room is disposed)
// cancels them all, so a stale game clock can never mutate a room that has
// already been torn down.
package timer
