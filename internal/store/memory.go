package store

import (
	"context"
	"sync"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// Memory is an in-process Store. It backs the unit tests and is handy as a
// fixture store when no database is around.
type Memory struct {
	mu       sync.Mutex
	articles []*model.Article
	nextID   int64
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

// NewMemoryWith returns an in-memory store seeded with fixture articles.
// Seeded articles keep their ids; newly saved ones get the next free id.
func NewMemoryWith(articles ...*model.Article) *Memory {
	m := NewMemory()
	for _, a := range articles {
		m.articles = append(m.articles, a)
		if a.ID >= m.nextID {
			m.nextID = a.ID + 1
		}
	}

	return m
}

func (m *Memory) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.articles {
		if a.ID == id {
			return a, nil
		}
	}

	return nil, nil
}

func (m *Memory) Save(ctx context.Context, article *model.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	article.ID = m.nextID
	m.nextID++
	m.articles = append(m.articles, article)

	return nil
}
