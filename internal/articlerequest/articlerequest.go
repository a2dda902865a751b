package articlerequest

import (
	"errors"
	"net/http"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// ArticleRequest is the request payload for the Article data model.
//
// NOTE: It's good practice to have well defined request and response payloads
// so you can manage the specific inputs and outputs for clients, and also gives
// you the opportunity to transform data on input or output. Here the id is
// protected: the store assigns it, clients can't.
type ArticleRequest struct {
	// in:body
	*model.Article

	ProtectedID int64 `json:"id"` // override 'id' json to have more control
}

// Bind on ArticleRequest will run after the unmarshalling is complete, its
// a good time to focus some post-processing after a decoding.
func (a *ArticleRequest) Bind(r *http.Request) error {
	// a.Article is nil if no Article fields are sent in the request. Return an
	// error to avoid a nil pointer dereference.
	if a.Article == nil {
		return errors.New("missing required Article fields.")
	}

	a.ProtectedID = 0 // unset the protected ID
	a.Article.ID = 0

	return nil
}
