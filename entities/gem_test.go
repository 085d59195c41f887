package entities

import (
	"encoding/json"
	"testing"
)

func TestBankFromMap(t *testing.T) {
	b, err := BankFromMap(map[string]int{"ruby": 2, "gold": 1})
	if err != nil {
		t.Fatalf("BankFromMap: %v", err)
	}
	if b.Get(Ruby) != 2 || b.Get(Gold) != 1 || b.Total() != 3 {
		t.Fatalf("bank = %v", b)
	}

	if _, err := BankFromMap(map[string]int{"amethyst": 1}); err == nil {
		t.Fatal("unknown gem name accepted")
	}
	if _, err := BankFromMap(map[string]int{"ruby": -1}); err == nil {
		t.Fatal("negative count accepted")
	}
}

func TestGemBankSub(t *testing.T) {
	var b GemBank
	b[Ruby] = 2

	var take GemBank
	take[Ruby] = 3
	if err := b.Sub(take); err == nil {
		t.Fatal("overdraw accepted")
	}
	if b.Get(Ruby) != 2 {
		t.Fatalf("failed Sub mutated bank: %v", b)
	}

	take[Ruby] = 2
	if err := b.Sub(take); err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if !b.IsZero() {
		t.Fatalf("bank not empty: %v", b)
	}
}

func TestGemBankJSON(t *testing.T) {
	var b GemBank
	b[Sapphire] = 3

	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}

	var got GemBank
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got != b {
		t.Fatalf("roundtrip: %v != %v", got, b)
	}

	var m map[string]int
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	// 六种颜色全部外发，前端不需要判空
	if len(m) != GemTypeCount {
		t.Fatalf("marshalled keys = %d, want %d", len(m), GemTypeCount)
	}
}

func TestGameClone(t *testing.T) {
	g := &Game{
		ID:    "g1",
		State: GameStateActive,
		Players: []*Player{
			{ID: "p1", Cards: []Card{{ID: "c1", Points: 1, Bonus: Ruby}}, Points: 1},
		},
	}
	g.Board.Revealed[0] = []Card{{ID: "c2", Tier: 1}}
	g.Board.Nobles = []Noble{{ID: "n1", Points: 3}}
	g.Board.Gems[Ruby] = 4

	cp := g.Clone()
	cp.Players[0].Points = 99
	cp.Players[0].Cards[0].Points = 99
	cp.Board.Revealed[0][0].ID = "mutated"
	cp.Board.Nobles[0].Points = 99
	cp.Board.Gems[Ruby] = 0

	if g.Players[0].Points != 1 || g.Players[0].Cards[0].Points != 1 {
		t.Fatal("clone shares player state")
	}
	if g.Board.Revealed[0][0].ID != "c2" || g.Board.Nobles[0].Points != 3 {
		t.Fatal("clone shares board state")
	}
	if g.Board.Gems[Ruby] != 4 {
		t.Fatal("clone shares gem supply")
	}
}
