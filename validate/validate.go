// Command validate provides a small CLI that validates game configuration JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Board size, countdown and game length against the engine's limits
//   - Minimum player count
//   - Alphabet entries (non-empty values, positive weights, no duplicates)
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgoncalvess/WordWar-Server/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}

	if config.BoardSize < engine.MinBoardSize || config.BoardSize > engine.MaxBoardSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("board_size must be between %d and %d, got %d",
			engine.MinBoardSize, engine.MaxBoardSize, config.BoardSize))
	}

	if config.CountdownTicks < engine.MinCountdownTicks || config.CountdownTicks > engine.MaxCountdownTicks {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("countdown_ticks must be between %d and %d, got %d",
			engine.MinCountdownTicks, engine.MaxCountdownTicks, config.CountdownTicks))
	}

	if config.GameSeconds <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("game_seconds must be positive, got %d", config.GameSeconds))
	}

	if config.MinPlayers < engine.MinPlayersFloor {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("min_players must be at least %d, got %d",
			engine.MinPlayersFloor, config.MinPlayers))
	}

	totalWeight := validateAlphabet(&config, &result)

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %d letters", config.BoardSize))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Countdown: %d ticks", config.CountdownTicks))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Game length: %ds", config.GameSeconds))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Minimum players: %d", config.MinPlayers))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Alphabet: %d letters, total weight %d", len(config.Alphabet), totalWeight))
	}

	return result
}

// validateAlphabet checks alphabet entries and returns the total sampling
// weight. An absent alphabet is valid; the engine falls back to the default.
func validateAlphabet(config *engine.GameConfig, result *ValidationResult) int {
	if config.Alphabet == nil {
		result.Errors = append(result.Errors, "✓ Alphabet: default")
		return 0
	}

	if len(config.Alphabet) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "alphabet must not be empty when present")
		return 0
	}

	totalWeight := 0
	seen := make(map[string]bool)
	for i, entry := range config.Alphabet {
		if entry.Value == "" {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("alphabet entry %d has an empty value", i+1))
		}
		if entry.Weight <= 0 {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("alphabet entry %q must have a positive weight, got %d", entry.Value, entry.Weight))
		}
		if seen[entry.Value] {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("alphabet entry %q is duplicated", entry.Value))
		}
		seen[entry.Value] = true
		totalWeight += entry.Weight
	}

	return totalWeight
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
