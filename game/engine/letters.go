package engine

import (
	"math/rand/v2"
	"strconv"
)

// DefaultAlphabet returns the stock letter distribution. Vowels and common
// consonants carry higher weights so generated boards resemble natural
// letter frequency.
func DefaultAlphabet() []LetterWeight {
	return []LetterWeight{
		{Value: "A", Weight: 7},
		{Value: "E", Weight: 8},
		{Value: "I", Weight: 5},
		{Value: "O", Weight: 4},
		{Value: "U", Weight: 3},
		{Value: "S", Weight: 4},
		{Value: "R", Weight: 3},
		{Value: "T", Weight: 3},
		{Value: "N", Weight: 3},
		{Value: "M", Weight: 2},
		{Value: "L", Weight: 2},
		{Value: "D", Weight: 2},
		{Value: "C", Weight: 2},
		{Value: "P", Weight: 1},
		{Value: "B", Weight: 1},
		{Value: "V", Weight: 1},
		{Value: "F", Weight: 1},
		{Value: "G", Weight: 1},
		{Value: "H", Weight: 1},
		{Value: "J", Weight: 1},
		{Value: "Q", Weight: 1},
		{Value: "X", Weight: 1},
		{Value: "Z", Weight: 1},
		{Value: "Ç", Weight: 1},
	}
}

// LetterSampler draws letter values from a weighted alphabet
type LetterSampler struct {
	values     []string
	cumulative []int
	total      int
}

// NewLetterSampler builds a sampler from the given alphabet table. The table
// must be non-empty with positive weights (see ValidateGameConfig).
func NewLetterSampler(alphabet []LetterWeight) *LetterSampler {
	s := &LetterSampler{
		values:     make([]string, 0, len(alphabet)),
		cumulative: make([]int, 0, len(alphabet)),
	}
	for _, entry := range alphabet {
		s.total += entry.Weight
		s.values = append(s.values, entry.Value)
		s.cumulative = append(s.cumulative, s.total)
	}
	return s
}

// Sample returns one letter value drawn according to the weights.
func (s *LetterSampler) Sample() string {
	n := rand.IntN(s.total)
	for i, bound := range s.cumulative {
		if n < bound {
			return s.values[i]
		}
	}
	// Unreachable: n < total by construction
	return s.values[len(s.values)-1]
}

// GenerateBoard produces a fresh board of count letters. Letter IDs are the
// board index as a string, unique within this generation.
func (s *LetterSampler) GenerateBoard(count int) []Letter {
	board := make([]Letter, count)
	for i := range board {
		board[i] = Letter{
			ID:    strconv.Itoa(i),
			Value: s.Sample(),
		}
	}
	return board
}
