package search

import (
	"sort"
	"strings"

	"it-helpdesk-be/internal/entity"
)

// Field weights. A single query word can earn all three at once when it
// appears in the title, a tag and the content of the same article.
const (
	titleWeight   = 3
	tagWeight     = 2
	contentWeight = 1
)

// DefaultLimit caps result size when the caller doesn't specify one.
const DefaultLimit = 5

// Scorer ranks knowledge articles against a free-text query using weighted
// substring matching. It holds no state beyond the corpus reference, so a
// single instance is safe for concurrent use.
type Scorer struct {
	corpus []entity.KnowledgeArticle
}

func NewScorer(corpus []entity.KnowledgeArticle) *Scorer {
	return &Scorer{corpus: corpus}
}

// Search scores the full corpus. See Rank for the scoring rules.
func (s *Scorer) Search(query string, limit int) []entity.KnowledgeArticle {
	return Rank(query, s.corpus, limit)
}

// SearchScored exposes the per-article weights, for callers that need to
// inspect relevance rather than just ordering.
func (s *Scorer) SearchScored(query string, limit int) []entity.ScoredArticle {
	return rankScored(query, s.corpus, limit)
}

// Rank scores query against an arbitrary article slice, so it composes
// with pre-filtering (e.g. a category filter applied first). Rules:
//
//   - query is lowercased and split on whitespace; empty tokens dropped
//   - each word substring-matching the article earns title +3, tag +2,
//     content +1, additively
//   - articles scoring 0 are excluded
//   - results sort by score descending; ties keep input order
//   - output is truncated to limit (DefaultLimit when limit <= 0)
func Rank(query string, articles []entity.KnowledgeArticle, limit int) []entity.KnowledgeArticle {
	scored := rankScored(query, articles, limit)
	out := make([]entity.KnowledgeArticle, len(scored))
	for i, sa := range scored {
		out[i] = sa.Article
	}
	return out
}

func rankScored(query string, articles []entity.KnowledgeArticle, limit int) []entity.ScoredArticle {
	if limit <= 0 {
		limit = DefaultLimit
	}

	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}

	var results []entity.ScoredArticle
	for _, article := range articles {
		if score := scoreArticle(words, article); score > 0 {
			results = append(results, entity.ScoredArticle{Article: article, Score: score})
		}
	}

	// SliceStable keeps corpus order on equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func scoreArticle(words []string, article entity.KnowledgeArticle) int {
	title := strings.ToLower(article.Title)
	content := strings.ToLower(article.Content)

	tags := make([]string, len(article.Tags))
	for i, tag := range article.Tags {
		tags[i] = strings.ToLower(tag)
	}

	score := 0
	for _, word := range words {
		if strings.Contains(title, word) {
			score += titleWeight
		}
		for _, tag := range tags {
			if strings.Contains(tag, word) {
				score += tagWeight
				break
			}
		}
		if strings.Contains(content, word) {
			score += contentWeight
		}
	}
	return score
}

// FilterByCategory returns the articles whose category matches
// (case-insensitive). "all" and "" mean no filtering.
func FilterByCategory(articles []entity.KnowledgeArticle, category string) []entity.KnowledgeArticle {
	if category == "" || strings.EqualFold(category, "all") {
		return articles
	}
	var out []entity.KnowledgeArticle
	for _, article := range articles {
		if strings.EqualFold(article.Category, category) {
			out = append(out, article)
		}
	}
	return out
}
