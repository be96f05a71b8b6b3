package engine

import "testing"

func TestGenerateBoard(t *testing.T) {
	sampler := NewLetterSampler(DefaultAlphabet())
	board := sampler.GenerateBoard(20)

	if len(board) != 20 {
		t.Fatalf("Expected 20 letters, got %d", len(board))
	}

	seen := make(map[string]bool)
	for i, letter := range board {
		if letter.Value == "" {
			t.Errorf("Letter %d has an empty value", i)
		}
		if seen[letter.ID] {
			t.Errorf("Duplicate letter ID %q in one board generation", letter.ID)
		}
		seen[letter.ID] = true
	}
}

func TestLetterSampler_Distribution(t *testing.T) {
	sampler := NewLetterSampler(DefaultAlphabet())

	const samples = 10000
	counts := make(map[string]int)
	for i := 0; i < samples; i++ {
		counts[sampler.Sample()]++
	}

	vowels := counts["A"] + counts["E"] + counts["I"] + counts["O"] + counts["U"]
	for _, rare := range []string{"J", "Q", "X", "Z", "Ç"} {
		if vowels <= counts[rare] {
			t.Errorf("Expected vowel frequency (%d) to exceed frequency of rare consonant %s (%d)",
				vowels, rare, counts[rare])
		}
	}
}

func TestLetterSampler_SingleEntry(t *testing.T) {
	sampler := NewLetterSampler([]LetterWeight{{Value: "E", Weight: 1}})
	for i := 0; i < 100; i++ {
		if got := sampler.Sample(); got != "E" {
			t.Fatalf("Expected only letter E, got %q", got)
		}
	}
}
