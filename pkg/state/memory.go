package state

import (
	"sync"
)

type InMemoryStore struct {
	lock      sync.RWMutex
	gameState map[string]any
}

var _ Store = &InMemoryStore{}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		gameState: make(map[string]any),
	}
}

func (s *InMemoryStore) UpdateScore(points int) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.gameState[ScoreKey] = s.score() + points
}

func (s *InMemoryStore) Score() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.score()
}

// score must be called with the lock held.
func (s *InMemoryStore) score() int {
	score, ok := s.gameState[ScoreKey].(int)
	if !ok {
		return 0
	}
	return score
}

func (s *InMemoryStore) Set(key string, value any) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.gameState[key] = value
}

func (s *InMemoryStore) Get(key string) (any, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	value, ok := s.gameState[key]
	return value, ok
}

func (s *InMemoryStore) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.gameState = map[string]any{
		ScoreKey: 0,
	}
}
