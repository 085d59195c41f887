package repository

import (
	"context"
	"testing"

	"go-splendor/entities"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	if _, err := s.Get("missing"); err == nil {
		t.Fatal("missing game returned without error")
	}

	g := &entities.Game{ID: "g1", State: entities.GameStateForming}
	if err := s.Save(g); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Get("g1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "g1" {
		t.Fatalf("got %q", got.ID)
	}

	if n := len(s.List()); n != 1 {
		t.Fatalf("list = %d, want 1", n)
	}

	if err := s.Delete("g1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get("g1"); err == nil {
		t.Fatal("deleted game still present")
	}
	if n := len(s.List()); n != 0 {
		t.Fatalf("list = %d, want 0", n)
	}
}

// Redis 未挂载时目录操作全部是安全空操作
func TestRoomIndexNilSafe(t *testing.T) {
	var idx *RoomIndex
	ctx := context.Background()

	if err := idx.Put(ctx, entities.RoomSummary{GameID: "g1"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := idx.Delete(ctx, "g1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	rooms, err := idx.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rooms) != 0 {
		t.Fatalf("rooms = %+v, want empty", rooms)
	}
}
