package model

// Article data model. The id is assigned by the persistence layer on save;
// an Article with a zero ID has not been saved yet.
type Article struct {
	ID      int64  `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Saved reports whether the article has been assigned an id by a store.
func (a *Article) Saved() bool {
	return a.ID != 0
}
