package const_data

import (
	"testing"

	"go-splendor/entities"
)

func TestCatalogIntegrity(t *testing.T) {
	if err := Check(); err != nil {
		t.Fatalf("catalog: %v", err)
	}
}

func TestCatalogCounts(t *testing.T) {
	if len(Cards) != 90 {
		t.Fatalf("cards = %d, want 90", len(Cards))
	}
	if len(Nobles) != 10 {
		t.Fatalf("nobles = %d, want 10", len(Nobles))
	}

	tiers := map[int]int{}
	for _, c := range Cards {
		tiers[c.Tier]++
	}
	want := map[int]int{1: 40, 2: 30, 3: 20}
	for tier, n := range want {
		if tiers[tier] != n {
			t.Fatalf("tier %d cards = %d, want %d", tier, tiers[tier], n)
		}
	}
}

func TestNoblesRequireNoGold(t *testing.T) {
	for _, n := range Nobles {
		if n.Requirement.Get(entities.Gold) != 0 {
			t.Fatalf("noble %s requires gold", n.ID)
		}
		if n.Points != 3 {
			t.Fatalf("noble %s points = %d, want 3", n.ID, n.Points)
		}
	}
}
