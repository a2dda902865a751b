package cache

import (
	"sync"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// Memory is an in-process Cache: a typed article map under an RWMutex.
// Unbounded, no TTL.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*model.Article
}

// NewMemory returns an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]*model.Article)}
}

func (m *Memory) Get(key string) (*model.Article, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.entries[key]

	return a, ok
}

func (m *Memory) Set(key string, article *model.Article) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = article
}

// Len reports the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
