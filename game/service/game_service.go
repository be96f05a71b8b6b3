package service

import (
	"context"

	"github.com/lgoncalvess/WordWar-Server/game/engine"
)

// GameService defines all room and gameplay operations the transports call
// into. It is the boundary between message dispatch (websocket, REST, MCP)
// and the core.
type GameService interface {
	// Room membership
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*RoomHandle, error)
	JoinRoom(ctx context.Context, req JoinRoomRequest) (*RoomHandle, error)
	DisconnectPlayer(ctx context.Context, roomID, playerID string)
	DisposeRoom(ctx context.Context, roomID string)

	// Gameplay
	StartGame(ctx context.Context, roomID string) error
	SelectLetter(ctx context.Context, req SelectLetterRequest) error

	// Observability
	GetGameState(ctx context.Context, roomID string) (*engine.GameState, error)
	ListRooms(ctx context.Context) ([]*RoomInfo, error)
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}
