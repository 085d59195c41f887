package repository

import (
	"fmt"
	"sync"

	"go-splendor/entities"
)

// GameStore 对局状态的注入式存储。权威状态常驻内存、
// 随会话生命周期存在，进程重启不要求恢复。
type GameStore interface {
	Save(g *entities.Game) error
	Get(gameID string) (*entities.Game, error)
	Delete(gameID string) error
	List() []*entities.Game
}

// MemoryStore 进程内实现，构造后注入给 Session Manager，
// 不允许任何包级全局访问
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]*entities.Game
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[string]*entities.Game)}
}

func (s *MemoryStore) Save(g *entities.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g
	return nil
}

func (s *MemoryStore) Get(gameID string) (*entities.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("对局 %s 不存在", gameID)
	}
	return g, nil
}

func (s *MemoryStore) Delete(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, gameID)
	return nil
}

func (s *MemoryStore) List() []*entities.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entities.Game, 0, len(s.games))
	for _, g := range s.games {
		out = append(out, g)
	}
	return out
}
