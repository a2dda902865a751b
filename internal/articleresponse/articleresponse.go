package articleresponse

import (
	"net/http"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// ArticleResponse is the response payload for the Article data model,
// wrapping it in the data envelope the API speaks.
//
// In the ArticleResponse object, first a Render() is called on itself,
// then the next field, and so on, all the way down the tree.
type ArticleResponse struct {
	Data *model.Article `json:"data"`
}

func NewArticleResponse(article *model.Article) *ArticleResponse {
	return &ArticleResponse{Data: article}
}

func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	// Pre-processing before a response is marshalled and sent across the wire
	return nil
}
