package engine

import (
	"testing"

	"golang.org/x/exp/rand"

	"go-splendor/entities"
)

func TestInitBoardSupplyByPlayerCount(t *testing.T) {
	tests := []struct {
		players int
		colored int
	}{
		{2, 4},
		{3, 5},
		{4, 7},
	}
	for _, tt := range tests {
		board := InitBoard(rand.New(rand.NewSource(1)), tt.players)
		for _, gem := range entities.ColoredGems {
			if got := board.Gems.Get(gem); got != tt.colored {
				t.Fatalf("%d players: %s supply = %d, want %d", tt.players, gem, got, tt.colored)
			}
		}
		if got := board.Gems.Get(entities.Gold); got != 5 {
			t.Fatalf("%d players: gold supply = %d, want 5", tt.players, got)
		}
	}
}

func TestInitBoardDealsFourPerTier(t *testing.T) {
	board := InitBoard(rand.New(rand.NewSource(1)), 4)

	wantDecks := [entities.TierCount]int{36, 26, 16}
	for tier := 0; tier < entities.TierCount; tier++ {
		if got := len(board.Revealed[tier]); got != entities.RevealedPerTier {
			t.Fatalf("tier %d revealed = %d, want %d", tier+1, got, entities.RevealedPerTier)
		}
		if got := len(board.Decks[tier]); got != wantDecks[tier] {
			t.Fatalf("tier %d deck = %d, want %d", tier+1, got, wantDecks[tier])
		}
		for _, c := range board.Revealed[tier] {
			if c.Tier != tier+1 {
				t.Fatalf("card %s on tier %d row has tier %d", c.ID, tier+1, c.Tier)
			}
		}
	}
}

func TestInitBoardShuffleIsSeeded(t *testing.T) {
	a := InitBoard(rand.New(rand.NewSource(7)), 4)
	b := InitBoard(rand.New(rand.NewSource(7)), 4)
	for tier := range a.Revealed {
		for i := range a.Revealed[tier] {
			if a.Revealed[tier][i].ID != b.Revealed[tier][i].ID {
				t.Fatalf("same seed produced different deals")
			}
		}
	}
}

func TestSelectNoblesByPlayerCount(t *testing.T) {
	tests := []struct {
		players int
		want    int
	}{
		{2, 3},
		{3, 4},
		{4, 5},
	}
	for _, tt := range tests {
		nobles := SelectNobles(rand.New(rand.NewSource(1)), tt.players)
		if len(nobles) != tt.want {
			t.Fatalf("%d players: nobles = %d, want %d", tt.players, len(nobles), tt.want)
		}
		seen := map[string]bool{}
		for _, n := range nobles {
			if seen[n.ID] {
				t.Fatalf("duplicate noble %s", n.ID)
			}
			seen[n.ID] = true
		}
	}
}
