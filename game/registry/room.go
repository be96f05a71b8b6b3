package registry

import (
	"time"

	"github.com/lgoncalvess/WordWar-Server/game/broadcast"
	"github.com/lgoncalvess/WordWar-Server/game/engine"
	"github.com/lgoncalvess/WordWar-Server/game/timer"
)

// Player is one connected participant of a room. The Session is the delivery
// capability handed over by the transport layer when the player created or
// joined the room.
type Player struct {
	ID      string
	Name    string
	Session broadcast.Sender
}

// Room is an isolated game session: its members, its state machine, its
// broadcaster and its timer scope. Membership (players and order) is guarded
// by the registry's lock; gameplay state lives behind the machine's own lock.
type Room struct {
	ID        string
	CreatedAt time.Time

	Machine   *engine.Machine
	Broadcast *broadcast.Broadcaster
	Timers    *timer.Scheduler

	players map[string]*Player
	order   []string // player IDs in join order
}

// playerList mirrors current membership as state-snapshot player info, in
// join order. Caller must hold the registry lock.
func (r *Room) playerList() []engine.PlayerInfo {
	players := make([]engine.PlayerInfo, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.players[id]; ok {
			players = append(players, engine.PlayerInfo{Name: p.Name, ID: p.ID})
		}
	}
	return players
}

// removePlayer drops a player from membership. Caller must hold the registry
// lock. Reports whether the player was present.
func (r *Room) removePlayer(playerID string) bool {
	if _, ok := r.players[playerID]; !ok {
		return false
	}
	delete(r.players, playerID)
	for i, id := range r.order {
		if id == playerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.Broadcast.Detach(playerID)
	return true
}
