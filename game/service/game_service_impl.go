package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lgoncalvess/WordWar-Server/game/engine"
	"github.com/lgoncalvess/WordWar-Server/game/registry"
)

// gameServiceImpl implements the GameService interface on top of the room
// registry.
type gameServiceImpl struct {
	rooms *registry.Registry
}

// NewGameService creates a new game service instance
func NewGameService(rooms *registry.Registry) GameService {
	return &gameServiceImpl{rooms: rooms}
}

// CreateRoom registers a new room for the requesting session. Empty room or
// player IDs are filled with generated UUIDs; the assigned IDs come back in
// the handle so the dispatcher can track the connection.
func (s *gameServiceImpl) CreateRoom(ctx context.Context, req CreateRoomRequest) (*RoomHandle, error) {
	if req.Session == nil {
		return nil, fmt.Errorf("create room: session is required")
	}
	if req.RoomID == "" {
		req.RoomID = uuid.NewString()
	}
	if req.PlayerID == "" {
		req.PlayerID = uuid.NewString()
	}

	if _, err := s.rooms.CreateRoom(req.RoomID, req.PlayerID, req.PlayerName, req.Session); err != nil {
		return nil, err
	}
	return &RoomHandle{RoomID: req.RoomID, PlayerID: req.PlayerID}, nil
}

// JoinRoom adds the requesting session's player to an existing room.
func (s *gameServiceImpl) JoinRoom(ctx context.Context, req JoinRoomRequest) (*RoomHandle, error) {
	if req.Session == nil {
		return nil, fmt.Errorf("join room: session is required")
	}
	if req.PlayerID == "" {
		req.PlayerID = uuid.NewString()
	}

	if _, err := s.rooms.JoinRoom(req.RoomID, req.PlayerID, req.PlayerName, req.Session); err != nil {
		return nil, err
	}
	return &RoomHandle{RoomID: req.RoomID, PlayerID: req.PlayerID}, nil
}

// DisconnectPlayer removes a player from a room; absent rooms and players
// are ignored. This is the transport's cleanup contract for dropped
// connections.
func (s *gameServiceImpl) DisconnectPlayer(ctx context.Context, roomID, playerID string) {
	s.rooms.DisconnectPlayer(roomID, playerID)
}

// DisposeRoom removes a room unconditionally; an absent room is ignored.
func (s *gameServiceImpl) DisposeRoom(ctx context.Context, roomID string) {
	s.rooms.DisposeRoom(roomID)
}

// StartGame runs the pre-match countdown and moves the room into the playing
// phase. It blocks for the countdown's duration.
func (s *gameServiceImpl) StartGame(ctx context.Context, roomID string) error {
	return s.rooms.StartGame(roomID)
}

// SelectLetter forwards a letter claim. Losing claims are dropped without
// error; unknown rooms or players are reported.
func (s *gameServiceImpl) SelectLetter(ctx context.Context, req SelectLetterRequest) error {
	return s.rooms.ClaimLetter(req.RoomID, req.PlayerID, req.LetterID)
}

// GetGameState returns the latest published state version of a room.
func (s *gameServiceImpl) GetGameState(ctx context.Context, roomID string) (*engine.GameState, error) {
	room, err := s.rooms.Room(roomID)
	if err != nil {
		return nil, err
	}
	return room.Machine.State(), nil
}

// ListRooms summarizes every active room, oldest first.
func (s *gameServiceImpl) ListRooms(ctx context.Context) ([]*RoomInfo, error) {
	rooms := s.rooms.List()
	result := make([]*RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		state := room.Machine.State()
		result = append(result, &RoomInfo{
			RoomID:       room.ID,
			Players:      len(state.ConnectedPlayers),
			GameStatus:   state.GameStatus,
			StateVersion: state.Version,
			CreatedAt:    room.CreatedAt,
		})
	}
	return result, nil
}
