package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/articles/internal/articlerequest"
	"github.com/SergeyParamoshkin/articles/internal/articleresponse"
	"github.com/SergeyParamoshkin/articles/internal/cache"
	"github.com/SergeyParamoshkin/articles/internal/errresponse"
	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

// Resource holds the collaborators the article routes need. Handlers build a
// Service per request from them.
type Resource struct {
	Store   store.Store
	Cache   cache.Cache
	Logger  *zap.SugaredLogger
	Metrics *Metrics
}

// NewResource wires the article routes' collaborators.
func NewResource(s store.Store, c cache.Cache, logger *zap.SugaredLogger, m *Metrics) *Resource {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Resource{Store: s, Cache: c, Logger: logger, Metrics: m}
}

func (rs *Resource) service() *Service {
	return NewService(rs.Store, rs.Cache, rs.Logger, rs.Metrics)
}

// Routes returns the RESTy routes for the "articles" resource.
func (rs *Resource) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", rs.CreateArticle) // POST /articles

	r.Route("/{articleID}", func(r chi.Router) {
		r.Use(rs.ArticleCtx)      // Load the *Article on the request context
		r.Get("/", rs.GetArticle) // GET /articles/123
	})

	return r
}

// CreateArticle persists the posted Article and returns it
// back to the client as an acknowledgement.
func (rs *Resource) CreateArticle(w http.ResponseWriter, r *http.Request) {
	data := &articlerequest.ArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		err = render.Render(w, r, errresponse.ErrInvalidRequest(err))
		if err != nil {
			rs.Logger.Errorw(err.Error())
		}

		return
	}

	article, err := rs.service().CreateArticle(r.Context(), data.Title, data.Content)
	if err != nil {
		rs.Logger.Errorw("create article", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	render.Status(r, http.StatusCreated)
	err = render.Render(w, r, articleresponse.NewArticleResponse(article))
	if err != nil {
		rs.Logger.Errorw(err.Error())
	}
}

// GetArticle returns the specific Article. You'll notice it just
// fetches the Article right off the context, as its understood that
// if we made it this far, the Article must be on the context. In case
// its not due to a bug, then it will panic, and our Recoverer will save us.
func (rs *Resource) GetArticle(w http.ResponseWriter, r *http.Request) {
	// Assume if we've reach this far, we can access the article
	// context because this handler is a child of the ArticleCtx
	// middleware. The worst case, the recoverer middleware will save us.
	// nolint
	article := r.Context().Value("article").(*model.Article)

	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		err = render.Render(w, r, errresponse.ErrRender(err))
		if err != nil {
			rs.Logger.Errorw(err.Error())
		}

		return
	}
}
