package service

import (
	"time"

	"github.com/lgoncalvess/WordWar-Server/game/broadcast"
	"github.com/lgoncalvess/WordWar-Server/game/engine"
)

// CreateRoomRequest carries a create_room event into the core. The Session is
// the delivery capability for the creating player's connection.
type CreateRoomRequest struct {
	RoomID     string `json:"id"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`

	Session broadcast.Sender `json:"-"`
}

// JoinRoomRequest carries a join_room event into the core.
type JoinRoomRequest struct {
	RoomID     string `json:"id"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`

	Session broadcast.Sender `json:"-"`
}

// StartGameRequest carries a start_game event into the core.
type StartGameRequest struct {
	RoomID string `json:"roomId"`
}

// SelectLetterRequest carries a select_letter event into the core.
type SelectLetterRequest struct {
	LetterID string `json:"letterId"`
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

// RoomHandle identifies the room/player pair a successful create or join
// bound a connection to. The dispatcher keeps it for connection cleanup.
type RoomHandle struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

// RoomInfo summarizes one active room for listings.
type RoomInfo struct {
	RoomID       string       `json:"roomId"`
	Players      int          `json:"players"`
	GameStatus   engine.Phase `json:"gameStatus"`
	StateVersion uint64       `json:"stateVersion"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use when starting the server
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	BoardSize   int    `json:"board_size"`
	GameSeconds int    `json:"game_seconds"`
}
