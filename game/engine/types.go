package engine

// Phase represents the lifecycle stage of a room's game
type Phase string

const (
	PhaseWaiting  Phase = "WAITING"
	PhasePlaying  Phase = "PLAYING"
	PhaseFinished Phase = "FINISHED"

	// Validation constants
	MinBoardSize      = 4
	MaxBoardSize      = 100
	MinCountdownTicks = 0
	MaxCountdownTicks = 10
	MinPlayersFloor   = 2
)

// PlayerInfo is the public identity of a connected player as it appears
// in broadcast state snapshots
type PlayerInfo struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Letter is a single slot on the board. The ID is unique within one board
// generation; the value is a character drawn from the weighted alphabet.
type Letter struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// GameState is one published version of a room's game. Versions are
// immutable: every mutation produces a fresh snapshot with a higher Version.
type GameState struct {
	ConnectedPlayers []PlayerInfo      `json:"connectedPlayers"`
	Letters          []Letter          `json:"letters"`
	SelectedLetters  map[string]string `json:"selectedLetters"`
	GameStatus       Phase             `json:"gameStatus"`
	Version          uint64            `json:"version"`
}

// Clone returns a deep copy of the state so the original version stays
// untouched when the copy is mutated.
func (s *GameState) Clone() *GameState {
	players := make([]PlayerInfo, len(s.ConnectedPlayers))
	copy(players, s.ConnectedPlayers)

	letters := make([]Letter, len(s.Letters))
	copy(letters, s.Letters)

	selected := make(map[string]string, len(s.SelectedLetters))
	for id, playerID := range s.SelectedLetters {
		selected[id] = playerID
	}

	return &GameState{
		ConnectedPlayers: players,
		Letters:          letters,
		SelectedLetters:  selected,
		GameStatus:       s.GameStatus,
		Version:          s.Version,
	}
}

// ClaimedBy returns the player holding a letter, if any.
func (s *GameState) ClaimedBy(letterID string) (string, bool) {
	playerID, ok := s.SelectedLetters[letterID]
	return playerID, ok
}
