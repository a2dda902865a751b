package article

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/articles/internal/cache"
	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

// Metrics carries the bound counters the service reports into. Optional.
type Metrics struct {
	CacheHits   metric.BoundInt64Counter
	CacheMisses metric.BoundInt64Counter
}

// Service mediates between a cache and a durable store to serve and create
// articles, minimizing store reads via a cache-aside strategy. Each call is a
// single stateless transaction against its two collaborators, so constructing
// a Service per request is cheap and expected.
type Service struct {
	store   store.Store
	cache   cache.Cache
	logger  *zap.SugaredLogger
	metrics *Metrics
}

// NewService wires the store and cache collaborators into a Service.
func NewService(s store.Store, c cache.Cache, logger *zap.SugaredLogger, m *Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Service{
		store:   s,
		cache:   c,
		logger:  logger,
		metrics: m,
	}
}

// CacheKey returns the cache key for an article id.
func CacheKey(id int64) string {
	return "article:" + strconv.FormatInt(id, 10)
}

// GetArticle serves an article by id, cache first. On a miss it reads through
// to the store and populates the cache before returning. A (nil, nil) result
// means the article does not exist; negative results are never cached.
func (s *Service) GetArticle(ctx context.Context, id int64) (*model.Article, error) {
	key := CacheKey(id)

	if cached, ok := s.cache.Get(key); ok {
		if s.metrics != nil {
			s.metrics.CacheHits.Add(ctx, 1)
		}
		s.logger.Debugw("cache hit", "key", key)

		return cached, nil
	}

	if s.metrics != nil {
		s.metrics.CacheMisses.Add(ctx, 1)
	}

	article, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}

	s.cache.Set(key, article)
	s.logger.Debugw("cache populated", "key", key)

	return article, nil
}

// CreateArticle persists a new article; the store assigns its id. The created
// article is not written to the cache, so the first read of it goes through
// to the store.
func (s *Service) CreateArticle(ctx context.Context, title, content string) (*model.Article, error) {
	article := &model.Article{Title: title, Content: content}

	if err := s.store.Save(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Infow("article created", "id", article.ID)

	return article, nil
}
