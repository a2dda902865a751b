package store

import (
	"context"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// Store is the persistence collaborator for Article entities.
//
// GetByID returns (nil, nil) when no article exists for the id: a missing
// article is a normal absent result, not a failure. Save persists the article
// and assigns its ID as a side effect.
type Store interface {
	GetByID(ctx context.Context, id int64) (*model.Article, error)
	Save(ctx context.Context, article *model.Article) error
}
