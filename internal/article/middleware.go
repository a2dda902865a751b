package article

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/articles/internal/errresponse"
)

// ArticleCtx middleware is used to load an Article object from
// the URL parameters passed through as the request. The lookup runs the
// cache-aside read path. In case the Article could not be found, we stop
// here and return a 404.
func (rs *Resource) ArticleCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "articleID"), 10, 64)
		if err != nil {
			err = render.Render(w, r, errresponse.ErrArticleNotFound)
			if err != nil {
				rs.Logger.Errorw(err.Error())
			}

			return
		}

		article, err := rs.service().GetArticle(r.Context(), id)
		if err != nil {
			rs.Logger.Errorw("get article", "id", id, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

			return
		}
		if article == nil {
			err = render.Render(w, r, errresponse.ErrArticleNotFound)
			if err != nil {
				rs.Logger.Errorw(err.Error())
			}

			return
		}

		// nolint
		ctx := context.WithValue(r.Context(), "article", article)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
