package models

// ItemKind distinguishes the two variants a saved item can be.
type ItemKind string

const (
	ItemKindPost    ItemKind = "post"
	ItemKindComment ItemKind = "comment"
)

// SavedItem is the uniform shape returned to clients for one saved Reddit
// item. Title carries the comment body for comments.
type SavedItem struct {
	Kind      ItemKind `json:"type"`
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	Subreddit string   `json:"subreddit"`
}
