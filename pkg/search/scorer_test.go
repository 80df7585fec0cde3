package search

import (
	"testing"

	"it-helpdesk-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func testCorpus() []entity.KnowledgeArticle {
	return []entity.KnowledgeArticle{
		{Id: "A1", Title: "Router setup", Category: "Network", Content: "configure the router", Tags: []string{"router", "setup"}},
		{Id: "A2", Title: "VPN guide", Category: "Network", Content: "vpn tunnels explained", Tags: []string{"vpn", "zebra"}},
		{Id: "A3", Title: "Monitor flicker", Category: "Hardware", Content: "screen flicker fixes", Tags: []string{"monitor", "screen"}},
		{Id: "A4", Title: "Keyboard layout", Category: "Hardware", Content: "remap keyboard keys", Tags: []string{"keyboard", "zebra"}},
	}
}

func TestRankTagOnlyScore(t *testing.T) {
	// Words found only in tags score exactly 2 per distinct matching word.
	corpus := testCorpus()
	scored := rankScored("zebra", corpus, 10)

	assert.Len(t, scored, 2)
	for _, sa := range scored {
		assert.Equal(t, 2, sa.Score)
	}

	scored = rankScored("zebra keyboard", corpus, 10)
	for _, sa := range scored {
		if sa.Article.Id == "A4" {
			// "keyboard" hits title, tag and content; "zebra" the tag only.
			assert.Equal(t, 2+3+2+1, sa.Score)
		}
	}
}

func TestRankExcludesZeroScores(t *testing.T) {
	results := Rank("quantum blockchain", testCorpus(), 10)
	assert.Empty(t, results)

	for _, sa := range rankScored("router screen", testCorpus(), 10) {
		assert.Greater(t, sa.Score, 0)
	}
}

func TestRankEmptyQuery(t *testing.T) {
	assert.Empty(t, Rank("", testCorpus(), 10))
	assert.Empty(t, Rank("   ", testCorpus(), 10))
}

func TestRankLimit(t *testing.T) {
	// "zebra" matches two articles; limit 1 keeps the earlier one.
	results := Rank("zebra", testCorpus(), 1)
	assert.Len(t, results, 1)
	assert.Equal(t, "A2", results[0].Id)
}

func TestRankStableTieBreak(t *testing.T) {
	// Both zebra-tagged articles score 2: corpus order must be preserved.
	results := Rank("zebra", testCorpus(), 10)
	assert.Equal(t, []string{"A2", "A4"}, []string{results[0].Id, results[1].Id})
}

func TestRankOrdersByScore(t *testing.T) {
	corpus := []entity.KnowledgeArticle{
		{Id: "low", Title: "unrelated", Content: "printer mentioned once", Tags: []string{"misc"}},
		{Id: "high", Title: "Printer repair", Content: "printer printer", Tags: []string{"printer"}},
	}
	results := Rank("printer", corpus, 10)
	assert.Equal(t, "high", results[0].Id)
	assert.Equal(t, "low", results[1].Id)
}

func TestRankComposesWithCategoryFilter(t *testing.T) {
	filtered := FilterByCategory(testCorpus(), "Hardware")
	assert.Len(t, filtered, 2)

	results := Rank("zebra", filtered, 10)
	assert.Len(t, results, 1)
	assert.Equal(t, "A4", results[0].Id)
}

func TestFilterByCategoryAll(t *testing.T) {
	assert.Len(t, FilterByCategory(testCorpus(), "all"), 4)
	assert.Len(t, FilterByCategory(testCorpus(), ""), 4)
	assert.Len(t, FilterByCategory(testCorpus(), "network"), 2) // case-insensitive
}

func TestScorerSearchUsesDefaultLimit(t *testing.T) {
	corpus := make([]entity.KnowledgeArticle, 0, 8)
	for i := 0; i < 8; i++ {
		corpus = append(corpus, entity.KnowledgeArticle{
			Id: string(rune('a' + i)), Title: "shared topic", Content: "shared", Tags: []string{"shared"},
		})
	}
	scorer := NewScorer(corpus)
	assert.Len(t, scorer.Search("shared", 0), DefaultLimit)
}
