package game

import (
	"sync"

	"github.com/dgconway/hive/internal/hive"
)

// MemoryStore 内存存储：本地跑、测试用。存的是副本，防止外部别名改动。
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]*hive.Game
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[string]*hive.Game)}
}

func (s *MemoryStore) Create(g *hive.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g.Clone()
	return nil
}

func (s *MemoryStore) Get(id string) (*hive.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return nil, hive.ErrGameNotFound
	}
	return g.Clone(), nil
}

func (s *MemoryStore) Update(g *hive.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[g.ID]; !ok {
		return hive.ErrGameNotFound
	}
	s.games[g.ID] = g.Clone()
	return nil
}

func (s *MemoryStore) Close() error { return nil }
