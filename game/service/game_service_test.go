package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lgoncalvess/WordWar-Server/game/engine"
	"github.com/lgoncalvess/WordWar-Server/game/registry"
)

type nullSession struct {
	mu       sync.Mutex
	messages []string
}

func (n *nullSession) Send(message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

func newTestService() GameService {
	config := engine.DefaultConfig()
	config.CountdownTicks = 0
	config.GameSeconds = 1
	return NewGameService(registry.NewRegistry(context.Background(), config))
}

func TestGameService_CreateRoom(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("create with explicit IDs", func(t *testing.T) {
		handle, err := svc.CreateRoom(ctx, CreateRoomRequest{
			RoomID: "R1", PlayerID: "p1", PlayerName: "Ana", Session: &nullSession{},
		})
		if err != nil {
			t.Fatalf("Failed to create room: %v", err)
		}
		if handle.RoomID != "R1" || handle.PlayerID != "p1" {
			t.Errorf("Expected handle R1/p1, got %s/%s", handle.RoomID, handle.PlayerID)
		}
	})

	t.Run("create with generated IDs", func(t *testing.T) {
		handle, err := svc.CreateRoom(ctx, CreateRoomRequest{
			PlayerName: "Rui", Session: &nullSession{},
		})
		if err != nil {
			t.Fatalf("Failed to create room: %v", err)
		}
		if handle.RoomID == "" || handle.PlayerID == "" {
			t.Errorf("Expected generated IDs, got %q/%q", handle.RoomID, handle.PlayerID)
		}
	})

	t.Run("duplicate room", func(t *testing.T) {
		_, err := svc.CreateRoom(ctx, CreateRoomRequest{
			RoomID: "R1", PlayerID: "p2", PlayerName: "Rui", Session: &nullSession{},
		})
		if !errors.Is(err, registry.ErrRoomAlreadyExists) {
			t.Errorf("Expected ErrRoomAlreadyExists, got %v", err)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		if _, err := svc.CreateRoom(ctx, CreateRoomRequest{RoomID: "R2"}); err == nil {
			t.Error("Expected error for request without session")
		}
	})
}

func TestGameService_GameFlow(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateRoom(ctx, CreateRoomRequest{
		RoomID: "R1", PlayerID: "p1", PlayerName: "Ana", Session: &nullSession{},
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Single player cannot start.
	if err := svc.StartGame(ctx, "R1"); !errors.Is(err, registry.ErrInsufficientPlayers) {
		t.Fatalf("Expected ErrInsufficientPlayers, got %v", err)
	}

	if _, err := svc.JoinRoom(ctx, JoinRoomRequest{
		RoomID: "R1", PlayerID: "p2", PlayerName: "Rui", Session: &nullSession{},
	}); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	if err := svc.StartGame(ctx, "R1"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	state, err := svc.GetGameState(ctx, "R1")
	if err != nil {
		t.Fatalf("GetGameState failed: %v", err)
	}
	if state.GameStatus != engine.PhasePlaying {
		t.Fatalf("Expected phase %s, got %s", engine.PhasePlaying, state.GameStatus)
	}

	letterID := state.Letters[0].ID
	if err := svc.SelectLetter(ctx, SelectLetterRequest{
		LetterID: letterID, RoomID: "R1", PlayerID: "p1",
	}); err != nil {
		t.Fatalf("SelectLetter failed: %v", err)
	}

	state, _ = svc.GetGameState(ctx, "R1")
	if owner := state.SelectedLetters[letterID]; owner != "p1" {
		t.Errorf("Expected letter %s claimed by p1, got %q", letterID, owner)
	}

	// A second claim on the same letter changes nothing and returns no error.
	if err := svc.SelectLetter(ctx, SelectLetterRequest{
		LetterID: letterID, RoomID: "R1", PlayerID: "p2",
	}); err != nil {
		t.Errorf("Expected losing claim to return nil, got %v", err)
	}
}

func TestGameService_ListRooms(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rooms, err := svc.ListRooms(ctx)
	if err != nil {
		t.Fatalf("ListRooms failed: %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("Expected no rooms, got %d", len(rooms))
	}

	svc.CreateRoom(ctx, CreateRoomRequest{RoomID: "R1", PlayerID: "p1", PlayerName: "Ana", Session: &nullSession{}})
	svc.CreateRoom(ctx, CreateRoomRequest{RoomID: "R2", PlayerID: "p1", PlayerName: "Rui", Session: &nullSession{}})

	rooms, _ = svc.ListRooms(ctx)
	if len(rooms) != 2 {
		t.Fatalf("Expected 2 rooms, got %d", len(rooms))
	}
	for _, info := range rooms {
		if info.GameStatus != engine.PhaseWaiting {
			t.Errorf("Expected room %s waiting, got %s", info.RoomID, info.GameStatus)
		}
		if info.Players != 1 {
			t.Errorf("Expected room %s to have 1 player, got %d", info.RoomID, info.Players)
		}
	}
}

func TestGameService_DisconnectAndDispose(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	svc.CreateRoom(ctx, CreateRoomRequest{RoomID: "R1", PlayerID: "p1", PlayerName: "Ana", Session: &nullSession{}})

	// Disconnecting the last player removes the room.
	svc.DisconnectPlayer(ctx, "R1", "p1")
	if _, err := svc.GetGameState(ctx, "R1"); !errors.Is(err, registry.ErrRoomNotFound) {
		t.Errorf("Expected ErrRoomNotFound after last disconnect, got %v", err)
	}

	// Dispose of a missing room is a no-op.
	svc.DisposeRoom(ctx, "R1")

	svc.CreateRoom(ctx, CreateRoomRequest{RoomID: "R2", PlayerID: "p1", PlayerName: "Ana", Session: &nullSession{}})
	svc.DisposeRoom(ctx, "R2")
	if _, err := svc.GetGameState(ctx, "R2"); !errors.Is(err, registry.ErrRoomNotFound) {
		t.Errorf("Expected ErrRoomNotFound after dispose, got %v", err)
	}
}
