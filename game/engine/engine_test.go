package engine

import (
	"fmt"
	"sync"
	"testing"
)

func testPlayers() []PlayerInfo {
	return []PlayerInfo{
		{Name: "Ana", ID: "p1"},
		{Name: "Rui", ID: "p2"},
	}
}

func testBoard(n int) []Letter {
	board := make([]Letter, n)
	for i := range board {
		board[i] = Letter{ID: fmt.Sprintf("%d", i), Value: "A"}
	}
	return board
}

func TestNewMachine(t *testing.T) {
	machine := NewMachine(testPlayers())

	state := machine.State()
	if state.GameStatus != PhaseWaiting {
		t.Errorf("Expected initial phase %s, got %s", PhaseWaiting, state.GameStatus)
	}
	if len(state.ConnectedPlayers) != 2 {
		t.Errorf("Expected 2 connected players, got %d", len(state.ConnectedPlayers))
	}
	if len(state.Letters) != 0 {
		t.Errorf("Expected empty board while waiting, got %d letters", len(state.Letters))
	}
	if len(state.SelectedLetters) != 0 {
		t.Errorf("Expected empty claims map while waiting, got %d entries", len(state.SelectedLetters))
	}
	if state.Version != 1 {
		t.Errorf("Expected initial version 1, got %d", state.Version)
	}
}

func TestMachine_PhaseTransitions(t *testing.T) {
	t.Run("waiting to playing", func(t *testing.T) {
		machine := NewMachine(testPlayers())
		if !machine.BeginPlaying(testBoard(20)) {
			t.Fatal("Expected BeginPlaying to succeed from waiting phase")
		}
		state := machine.State()
		if state.GameStatus != PhasePlaying {
			t.Errorf("Expected phase %s, got %s", PhasePlaying, state.GameStatus)
		}
		if len(state.Letters) != 20 {
			t.Errorf("Expected 20 letters after start, got %d", len(state.Letters))
		}
	})

	t.Run("playing to finished", func(t *testing.T) {
		machine := NewMachine(testPlayers())
		machine.BeginPlaying(testBoard(20))
		if !machine.Finish() {
			t.Fatal("Expected Finish to succeed from playing phase")
		}
		if got := machine.State().GameStatus; got != PhaseFinished {
			t.Errorf("Expected phase %s, got %s", PhaseFinished, got)
		}
	})

	t.Run("cannot skip playing", func(t *testing.T) {
		machine := NewMachine(testPlayers())
		if machine.Finish() {
			t.Error("Expected Finish to be rejected while waiting")
		}
		if got := machine.State().GameStatus; got != PhaseWaiting {
			t.Errorf("Expected phase to remain %s, got %s", PhaseWaiting, got)
		}
	})

	t.Run("cannot restart a running game", func(t *testing.T) {
		machine := NewMachine(testPlayers())
		machine.BeginPlaying(testBoard(20))
		version := machine.State().Version
		if machine.BeginPlaying(testBoard(20)) {
			t.Error("Expected second BeginPlaying to be rejected")
		}
		if machine.State().Version != version {
			t.Error("Rejected transition should not publish a new version")
		}
	})

	t.Run("finish is idempotent", func(t *testing.T) {
		machine := NewMachine(testPlayers())
		machine.BeginPlaying(testBoard(20))
		machine.Finish()
		version := machine.State().Version
		if machine.Finish() {
			t.Error("Expected second Finish to be a no-op")
		}
		if machine.State().Version != version {
			t.Error("Repeated Finish should not publish a new version")
		}
	})
}

func TestMachine_Claim(t *testing.T) {
	t.Run("claim while playing", func(t *testing.T) {
		machine := NewMachine(testPlayers())
		machine.BeginPlaying(testBoard(20))

		if !machine.Claim("3", "p1") {
			t.Fatal("Expected first claim to succeed")
		}
		playerID, ok := machine.State().ClaimedBy("3")
		if !ok || playerID != "p1" {
			t.Errorf("Expected letter 3 claimed by p1, got %q (ok=%v)", playerID, ok)
		}
	})

	t.Run("second claim on same letter is dropped", func(t *testing.T) {
		machine := NewMachine(testPlayers())
		machine.BeginPlaying(testBoard(20))

		machine.Claim("3", "p1")
		version := machine.State().Version
		if machine.Claim("3", "p2") {
			t.Error("Expected claim on taken letter to be dropped")
		}
		state := machine.State()
		if state.Version != version {
			t.Error("Dropped claim should not publish a new version")
		}
		if playerID, _ := state.ClaimedBy("3"); playerID != "p1" {
			t.Errorf("Expected letter 3 to stay with p1, got %q", playerID)
		}
	})

	t.Run("claim while waiting is dropped", func(t *testing.T) {
		machine := NewMachine(testPlayers())
		if machine.Claim("0", "p1") {
			t.Error("Expected claim before start to be dropped")
		}
	})

	t.Run("claim after finish is dropped", func(t *testing.T) {
		machine := NewMachine(testPlayers())
		machine.BeginPlaying(testBoard(20))
		machine.Finish()
		if machine.Claim("0", "p1") {
			t.Error("Expected claim after finish to be dropped")
		}
	})
}

func TestMachine_ConcurrentClaims(t *testing.T) {
	machine := NewMachine(testPlayers())
	machine.BeginPlaying(testBoard(20))

	const claimants = 32
	var wg sync.WaitGroup
	wins := make(chan string, claimants)

	for i := 0; i < claimants; i++ {
		playerID := fmt.Sprintf("racer-%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if machine.Claim("7", playerID) {
				wins <- playerID
			}
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for range wins {
		winners++
	}
	if winners != 1 {
		t.Errorf("Expected exactly 1 winning claim, got %d", winners)
	}

	if owner, ok := machine.State().ClaimedBy("7"); !ok || owner == "" {
		t.Error("Expected letter 7 to have an owner after the race")
	}
}

func TestMachine_ConcurrentClaimsAcrossLetters(t *testing.T) {
	machine := NewMachine(testPlayers())
	machine.BeginPlaying(testBoard(20))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		for _, playerID := range []string{"p1", "p2"} {
			letterID := fmt.Sprintf("%d", i)
			playerID := playerID
			wg.Add(1)
			go func() {
				defer wg.Done()
				machine.Claim(letterID, playerID)
			}()
		}
	}
	wg.Wait()

	state := machine.State()
	if len(state.SelectedLetters) != 20 {
		t.Errorf("Expected all 20 letters claimed, got %d", len(state.SelectedLetters))
	}
	for letterID, owner := range state.SelectedLetters {
		if owner != "p1" && owner != "p2" {
			t.Errorf("Letter %s claimed by unknown player %q", letterID, owner)
		}
	}
}

func TestMachine_SetPlayers(t *testing.T) {
	machine := NewMachine(testPlayers())

	machine.SetPlayers([]PlayerInfo{{Name: "Ana", ID: "p1"}})

	state := machine.State()
	if len(state.ConnectedPlayers) != 1 {
		t.Errorf("Expected 1 connected player after update, got %d", len(state.ConnectedPlayers))
	}
	if state.ConnectedPlayers[0].ID != "p1" {
		t.Errorf("Expected remaining player p1, got %s", state.ConnectedPlayers[0].ID)
	}
	if state.Version != 2 {
		t.Errorf("Expected version 2 after one update, got %d", state.Version)
	}
}

func TestMachine_ListenerOrdering(t *testing.T) {
	machine := NewMachine(testPlayers())

	var versions []uint64
	machine.Subscribe(func(s *GameState) {
		versions = append(versions, s.Version)
	})

	machine.BeginPlaying(testBoard(20))
	machine.Claim("0", "p1")
	machine.Claim("1", "p2")
	machine.Finish()

	if len(versions) != 4 {
		t.Fatalf("Expected 4 published versions, got %d", len(versions))
	}
	for i := 1; i < len(versions); i++ {
		if versions[i] <= versions[i-1] {
			t.Errorf("Versions delivered out of order: %v", versions)
			break
		}
	}
}

func TestMachine_PublishedStatesAreImmutable(t *testing.T) {
	machine := NewMachine(testPlayers())
	machine.BeginPlaying(testBoard(20))

	before := machine.State()
	machine.Claim("0", "p1")

	if len(before.SelectedLetters) != 0 {
		t.Error("Earlier version was mutated by a later claim")
	}
}
