package broadcast

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/lgoncalvess/WordWar-Server/game/engine"
)

// EventGameStateChanged tags outbound state-update envelopes.
const EventGameStateChanged = "game_state_changed"

// Sender delivers a text message to one connected participant. Implementations
// must be safe for concurrent use; the transport layer's client connection is
// the usual implementation.
type Sender interface {
	Send(message string) error
}

// ServerMessage is the tagged envelope for state updates. The payload is the
// already-serialized game state, framed as-is by the transport.
type ServerMessage struct {
	Event   string `json:"event"`
	Payload string `json:"payload"`
}

// Broadcaster fans messages out to every session currently attached to one
// room. Delivery is best effort per session: one failing session never blocks
// or fails delivery to the others.
type Broadcaster struct {
	roomID  string
	mu      sync.RWMutex
	senders map[string]Sender
}

// NewBroadcaster creates an empty broadcaster for a room.
func NewBroadcaster(roomID string) *Broadcaster {
	return &Broadcaster{
		roomID:  roomID,
		senders: make(map[string]Sender),
	}
}

// Attach registers a player's session for future broadcasts.
func (b *Broadcaster) Attach(playerID string, sender Sender) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.senders[playerID] = sender
}

// Detach removes a player's session. Detaching an unknown player is a no-op.
func (b *Broadcaster) Detach(playerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.senders, playerID)
}

// Count returns the number of attached sessions.
func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.senders)
}

// SendTo delivers an advisory text to a single player, if attached.
func (b *Broadcaster) SendTo(playerID, message string) {
	b.mu.RLock()
	sender, ok := b.senders[playerID]
	b.mu.RUnlock()

	if !ok {
		return
	}
	if err := sender.Send(message); err != nil {
		log.Printf("Failed to send to player %s in room %s: %v", playerID, b.roomID, err)
	}
}

// SendAll delivers an advisory text to every attached session.
func (b *Broadcaster) SendAll(message string) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for playerID, sender := range b.senders {
		if err := sender.Send(message); err != nil {
			log.Printf("Failed to send to player %s in room %s: %v", playerID, b.roomID, err)
		}
	}
}

// PublishState serializes a state version and delivers it to every attached
// session wrapped in the game_state_changed envelope. Publishers call this
// synchronously per room, so each session observes versions in publish order.
func (b *Broadcaster) PublishState(state *engine.GameState) {
	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("Failed to marshal game state for room %s: %v", b.roomID, err)
		return
	}

	envelope, err := json.Marshal(ServerMessage{
		Event:   EventGameStateChanged,
		Payload: string(payload),
	})
	if err != nil {
		log.Printf("Failed to marshal state envelope for room %s: %v", b.roomID, err)
		return
	}

	b.SendAll(string(envelope))
}
