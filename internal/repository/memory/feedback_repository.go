package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"it-helpdesk-be/internal/entity"
)

// FeedbackRepository keeps recent feedback in an expiring in-memory cache.
// Entries age out after a day; nothing is persisted.
type FeedbackRepository struct {
	cache *cache.Cache
}

func NewFeedbackRepository() *FeedbackRepository {
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &FeedbackRepository{cache: c}
}

func (r *FeedbackRepository) Save(feedback *entity.Feedback) {
	r.cache.Set(feedback.Id, feedback, cache.DefaultExpiration)
}

func (r *FeedbackRepository) Get(id string) (*entity.Feedback, bool) {
	if x, found := r.cache.Get(id); found {
		return x.(*entity.Feedback), true
	}
	return nil, false
}
