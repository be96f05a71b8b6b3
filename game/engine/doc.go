// Package engine provides the core game logic for the WordWar server.
//
// The engine package implements the game mechanics including:
//   - The per-room game state machine (waiting, playing, finished)
//   - Versioned, immutable game state snapshots
//   - First-claim-wins letter assignment
//   - Weighted letter board generation
//   - Configuration types and validation
//
// Core Types:
//
// Machine drives a single room's game. Every mutation publishes a fresh
// GameState version to subscribed listeners, which is how state changes
// reach the broadcast layer. GameConfig defines the tunable rules (board
// size, countdown length, match duration, alphabet weights) loaded from
// JSON files.
//
// Usage:
//
//	machine := engine.NewMachine([]engine.PlayerInfo{{Name: "Ana", ID: "p1"}})
//	machine.Subscribe(func(s *engine.GameState) {
//		// push s to connected clients
//	})
//
//	sampler := engine.NewLetterSampler(engine.DefaultAlphabet())
//	machine.BeginPlaying(sampler.GenerateBoard(20))
//	machine.Claim("0", "p1")
//
// Concurrency:
//
// A Machine serializes all writes through one mutex, so concurrent claims on
// the same letter resolve to exactly one winner and listeners observe
// versions in strictly increasing order. Machines of different rooms share
// no state.
package engine
