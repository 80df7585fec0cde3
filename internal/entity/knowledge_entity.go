package entity

// KnowledgeArticle is the in-memory article shape served by the API and
// scored by pkg/search. The corpus is loaded once at startup and never
// mutated, so concurrent requests can share it without locking.
type KnowledgeArticle struct {
	Id       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
}

// ScoredArticle pairs an article with its relevance weight for one query.
// Score is always > 0; zero-scoring articles are dropped before this type
// is ever constructed.
type ScoredArticle struct {
	Article KnowledgeArticle
	Score   int
}
