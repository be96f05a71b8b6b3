package engine

import "sync"

// StateListener receives every published state version, in publish order.
// Listeners run synchronously on the publishing goroutine and must not call
// back into the Machine.
type StateListener func(*GameState)

// Machine owns one room's game state and applies validated transitions.
// All writes go through a single mutex, so two simultaneous claims on the
// same letter can never both succeed. Machines of different rooms are fully
// independent.
type Machine struct {
	mu        sync.Mutex
	state     *GameState
	listeners []StateListener
}

// NewMachine creates a machine holding the initial state: waiting phase,
// the given players, no letters and no claims.
func NewMachine(players []PlayerInfo) *Machine {
	initial := &GameState{
		ConnectedPlayers: players,
		Letters:          []Letter{},
		SelectedLetters:  map[string]string{},
		GameStatus:       PhaseWaiting,
		Version:          1,
	}
	return &Machine{state: initial}
}

// Subscribe registers a listener for future state versions.
func (m *Machine) Subscribe(fn StateListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// State returns the latest published version. The returned snapshot is
// immutable; callers must not modify it.
func (m *Machine) State() *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// publish clones the current state, applies mutate to the clone, bumps the
// version and notifies listeners. Caller must hold m.mu.
func (m *Machine) publish(mutate func(*GameState)) {
	next := m.state.Clone()
	mutate(next)
	next.Version = m.state.Version + 1
	m.state = next
	for _, fn := range m.listeners {
		fn(next)
	}
}

// SetPlayers republishes the state with the connected-players list replaced,
// keeping it an exact mirror of room membership after a join or disconnect.
func (m *Machine) SetPlayers(players []PlayerInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publish(func(s *GameState) {
		s.ConnectedPlayers = players
	})
}

// BeginPlaying moves the game from waiting to playing with a fresh board.
// It reports false, without publishing, when the game already left the
// waiting phase.
func (m *Machine) BeginPlaying(board []Letter) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.GameStatus != PhaseWaiting {
		return false
	}
	m.publish(func(s *GameState) {
		s.Letters = board
		s.GameStatus = PhasePlaying
	})
	return true
}

// Finish moves the game from playing to finished. Finishing an already
// finished game is a no-op, so an expired game clock can fire safely more
// than once.
func (m *Machine) Finish() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.GameStatus != PhasePlaying {
		return false
	}
	m.publish(func(s *GameState) {
		s.GameStatus = PhaseFinished
	})
	return true
}

// Claim assigns a letter to a player. The first successful claim wins: a
// claim on an already taken letter, or outside the playing phase, is dropped
// without publishing and reports false. The check and the insert happen under
// one lock acquisition, so the winner is decided against the latest version.
func (m *Machine) Claim(letterID, playerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.GameStatus != PhasePlaying {
		return false
	}
	if _, taken := m.state.SelectedLetters[letterID]; taken {
		return false
	}
	m.publish(func(s *GameState) {
		s.SelectedLetters[letterID] = playerID
	})
	return true
}
