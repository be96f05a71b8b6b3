// Package registry provides room management for the WordWar server.
//
// The registry package implements:
//   - Thread-safe room creation, joining, disconnection and disposal
//   - Per-room wiring of state machine, broadcaster and timer scope
//   - Room-addressed gameplay operations (start game, claim letter)
//
// Core Types:
//
// Registry is the process-wide room directory. Room bundles one game
// session: its members, its engine.Machine, its broadcast.Broadcaster and
// its timer.Scheduler.
//
// Concurrency:
//
// Membership operations are linearized by one coarse lock held for the full
// operation, so duplicate rooms and duplicate players cannot slip through a
// race. Gameplay operations resolve the room under that lock but mutate
// state through the room's machine, which has its own per-room lock; rooms
// therefore play fully independently of each other.
//
// Lifecycle:
//
// A room is created with its first player, grows and shrinks with
// join/disconnect, and is removed either explicitly (DisposeRoom) or
// automatically when its last player disconnects. Disposal broadcasts a
// notice and stops the room's timers.
package registry
