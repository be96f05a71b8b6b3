package registry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/lgoncalvess/WordWar-Server/game/broadcast"
	"github.com/lgoncalvess/WordWar-Server/game/engine"
	"github.com/lgoncalvess/WordWar-Server/game/timer"
)

var (
	ErrRoomAlreadyExists   = errors.New("room already exists")
	ErrRoomNotFound        = errors.New("room does not exist")
	ErrPlayerAlreadyExists = errors.New("player already exists")
	ErrPlayerNotFound      = errors.New("player does not exist")
	ErrInsufficientPlayers = errors.New("room should await other player")
)

// Registry is the concurrency-safe room directory. Every membership-changing
// operation (create, join, disconnect, dispose) runs under one process-wide
// lock for its full duration, which makes room and player uniqueness checks
// race free. Gameplay mutations go through each room's machine and only
// touch the registry lock long enough to resolve the room.
type Registry struct {
	mu      sync.Mutex
	rooms   map[string]*Room
	ctx     context.Context
	config  *engine.GameConfig
	sampler *engine.LetterSampler
}

// NewRegistry creates an empty registry. The context bounds the timer scopes
// of all rooms; cancelling it stops every room's timers.
func NewRegistry(ctx context.Context, config *engine.GameConfig) *Registry {
	return &Registry{
		rooms:   make(map[string]*Room),
		ctx:     ctx,
		config:  config,
		sampler: engine.NewLetterSampler(config.Alphabet),
	}
}

// Config returns the game configuration the registry was built with.
func (g *Registry) Config() *engine.GameConfig {
	return g.config
}

// CreateRoom registers a new room holding its first player and wires the
// room's state stream into its broadcaster, so every future state version is
// pushed to the room's sessions.
func (g *Registry) CreateRoom(roomID, playerID, playerName string, session broadcast.Sender) (*Room, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Player check runs first, mirroring the error precedence clients rely
	// on. It only bites when the target room already exists; player IDs are
	// not unique across rooms.
	if existing, ok := g.rooms[roomID]; ok {
		if _, taken := existing.players[playerID]; taken {
			return nil, fmt.Errorf("create room %s: player %s: %w", roomID, playerID, ErrPlayerAlreadyExists)
		}
		return nil, fmt.Errorf("create room %s: %w", roomID, ErrRoomAlreadyExists)
	}

	player := &Player{ID: playerID, Name: playerName, Session: session}
	room := &Room{
		ID:        roomID,
		CreatedAt: time.Now(),
		Broadcast: broadcast.NewBroadcaster(roomID),
		Timers:    timer.NewScheduler(g.ctx),
		players:   map[string]*Player{playerID: player},
		order:     []string{playerID},
	}
	room.Machine = engine.NewMachine(room.playerList())
	room.Machine.Subscribe(room.Broadcast.PublishState)
	room.Broadcast.Attach(playerID, session)
	// New subscribers see the current state right away, starting with the
	// creator and the initial waiting state.
	room.Broadcast.PublishState(room.Machine.State())

	g.rooms[roomID] = room
	log.Printf("Room %s created by player %s (%s)", roomID, playerID, playerName)
	return room, nil
}

// JoinRoom adds a player to an existing room and republishes the state with
// the updated membership.
func (g *Registry) JoinRoom(roomID, playerID, playerName string, session broadcast.Sender) (*Room, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("join room %s: %w", roomID, ErrRoomNotFound)
	}
	if _, taken := room.players[playerID]; taken {
		return nil, fmt.Errorf("join room %s: player %s: %w", roomID, playerID, ErrPlayerAlreadyExists)
	}

	room.players[playerID] = &Player{ID: playerID, Name: playerName, Session: session}
	room.order = append(room.order, playerID)
	room.Broadcast.Attach(playerID, session)
	room.Machine.SetPlayers(room.playerList())

	log.Printf("Player %s (%s) joined room %s (players: %d)", playerID, playerName, roomID, len(room.players))
	return room, nil
}

// DisconnectPlayer removes a player from a room. A missing room or player is
// a no-op. When the last player leaves, the room is disposed.
func (g *Registry) DisconnectPlayer(roomID, playerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[roomID]
	if !ok {
		return
	}
	if !room.removePlayer(playerID) {
		return
	}

	if len(room.players) == 0 {
		g.disposeLocked(room)
		return
	}

	room.Machine.SetPlayers(room.playerList())
	log.Printf("Player %s disconnected from room %s (players: %d)", playerID, roomID, len(room.players))
}

// DisposeRoom broadcasts a disposal notice and unconditionally removes the
// room, cancelling its timers. A missing room is a no-op.
func (g *Registry) DisposeRoom(roomID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[roomID]
	if !ok {
		return
	}
	g.disposeLocked(room)
}

// disposeLocked tears a room down. Caller must hold the registry lock.
func (g *Registry) disposeLocked(room *Room) {
	room.Broadcast.SendAll(fmt.Sprintf("Room %s will be disposed.", room.ID))
	room.Timers.Stop()
	delete(g.rooms, room.ID)
	log.Printf("Room %s disposed", room.ID)
}

// StartGame validates the room and player count, then runs the staged
// countdown (one advisory broadcast per second), generates a fresh weighted
// board, moves the room into the playing phase and arms the game clock.
// The call blocks for the duration of the countdown; disposing the room
// meanwhile aborts the start.
func (g *Registry) StartGame(roomID string) error {
	g.mu.Lock()
	room, ok := g.rooms[roomID]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("start game %s: %w", roomID, ErrRoomNotFound)
	}
	if len(room.players) < g.config.MinPlayers {
		g.mu.Unlock()
		return fmt.Errorf("start game %s: %w", roomID, ErrInsufficientPlayers)
	}
	g.mu.Unlock()

	err := room.Timers.Countdown(g.config.CountdownTicks, time.Second, func(remaining int) {
		room.Broadcast.SendAll(fmt.Sprintf("The match will start in %d", remaining))
	})
	if err != nil {
		// Room was disposed mid-countdown; nothing left to start.
		return nil
	}

	if !room.Machine.BeginPlaying(g.sampler.GenerateBoard(g.config.BoardSize)) {
		// A concurrent start already won.
		return nil
	}

	room.Timers.AfterFunc(g.config.GameDuration(), func() {
		if room.Machine.Finish() {
			log.Printf("Room %s: game clock expired, match finished", roomID)
		}
	})

	log.Printf("Room %s: match started (%d letters, %v)", roomID, g.config.BoardSize, g.config.GameDuration())
	return nil
}

// ClaimLetter resolves a player's claim on a letter against the latest state.
// Unknown rooms and players are errors; a claim that loses the race or
// arrives outside the playing phase is silently dropped.
func (g *Registry) ClaimLetter(roomID, playerID, letterID string) error {
	g.mu.Lock()
	room, ok := g.rooms[roomID]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("select letter in room %s: %w", roomID, ErrRoomNotFound)
	}
	if _, ok := room.players[playerID]; !ok {
		g.mu.Unlock()
		return fmt.Errorf("select letter in room %s: player %s: %w", roomID, playerID, ErrPlayerNotFound)
	}
	g.mu.Unlock()

	room.Machine.Claim(letterID, playerID)
	return nil
}

// Room returns a registered room.
func (g *Registry) Room(roomID string) (*Room, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("room %s: %w", roomID, ErrRoomNotFound)
	}
	return room, nil
}

// List returns all registered rooms sorted by creation time.
func (g *Registry) List() []*Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	rooms := make([]*Room, 0, len(g.rooms))
	for _, room := range g.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].CreatedAt.Before(rooms[j].CreatedAt)
	})
	return rooms
}

// Count returns the number of registered rooms.
func (g *Registry) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rooms)
}

// HasPlayer reports whether a player currently sits in a room.
func (g *Registry) HasPlayer(roomID, playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[roomID]
	if !ok {
		return false
	}
	_, ok = room.players[playerID]
	return ok
}
