package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// AnalysisCache memoizes incident analyses for a few minutes. Fallback
// analyses are deterministic per incident, so re-serving them avoids
// re-prompting the provider for repeated clicks on the same incident.
type AnalysisCache struct {
	cache *cache.Cache
}

func NewAnalysisCache() *AnalysisCache {
	return &AnalysisCache{cache: cache.New(5*time.Minute, 10*time.Minute)}
}

func (c *AnalysisCache) Get(number string) (string, bool) {
	if x, found := c.cache.Get(number); found {
		return x.(string), true
	}
	return "", false
}

func (c *AnalysisCache) Set(number, analysis string) {
	c.cache.Set(number, analysis, cache.DefaultExpiration)
}
