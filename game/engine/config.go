package engine

import (
	"fmt"
	"time"
)

// LetterWeight is one entry of the weighted alphabet table. Letters with a
// higher weight are drawn more often when a board is generated.
type LetterWeight struct {
	Value  string `json:"value"`
	Weight int    `json:"weight"`
}

// GameConfig represents a game configuration loaded from JSON
type GameConfig struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	BoardSize      int            `json:"board_size"`
	CountdownTicks int            `json:"countdown_ticks"`
	GameSeconds    int            `json:"game_seconds"`
	MinPlayers     int            `json:"min_players"`
	Alphabet       []LetterWeight `json:"alphabet"`
}

// GameDuration returns the length of one match as a duration.
func (c *GameConfig) GameDuration() time.Duration {
	return time.Duration(c.GameSeconds) * time.Second
}

// DefaultConfig returns the built-in configuration: a 20-letter board, a
// 3-tick countdown and a 120 second match, with the stock weighted alphabet.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:           "Classic",
		Description:    "Standard rules: 20 letters, 3 second countdown, 2 minute match",
		BoardSize:      20,
		CountdownTicks: 3,
		GameSeconds:    120,
		MinPlayers:     2,
		Alphabet:       DefaultAlphabet(),
	}
}

// ValidateGameConfig validates a game configuration for correctness
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.BoardSize < MinBoardSize || config.BoardSize > MaxBoardSize {
		return fmt.Errorf("config validation: board_size must be between %d and %d, got %d",
			MinBoardSize, MaxBoardSize, config.BoardSize)
	}
	if config.CountdownTicks < MinCountdownTicks || config.CountdownTicks > MaxCountdownTicks {
		return fmt.Errorf("config validation: countdown_ticks must be between %d and %d, got %d",
			MinCountdownTicks, MaxCountdownTicks, config.CountdownTicks)
	}
	if config.GameSeconds <= 0 {
		return fmt.Errorf("config validation: game_seconds must be positive, got %d", config.GameSeconds)
	}
	if config.MinPlayers < MinPlayersFloor {
		return fmt.Errorf("config validation: min_players must be at least %d, got %d",
			MinPlayersFloor, config.MinPlayers)
	}
	if len(config.Alphabet) == 0 {
		return fmt.Errorf("config validation: alphabet must not be empty")
	}
	for i, entry := range config.Alphabet {
		if entry.Value == "" {
			return fmt.Errorf("config validation: alphabet[%d] has an empty value", i)
		}
		if entry.Weight <= 0 {
			return fmt.Errorf("config validation: alphabet[%d] (%q) must have a positive weight, got %d",
				i, entry.Value, entry.Weight)
		}
	}
	return nil
}
