package memory

import (
	"it-helpdesk-be/internal/entity"
	"it-helpdesk-be/pkg/search"
)

type KnowledgeRepository struct {
	corpus []entity.KnowledgeArticle
}

func NewKnowledgeRepository(corpus []entity.KnowledgeArticle) *KnowledgeRepository {
	return &KnowledgeRepository{corpus: corpus}
}

func (r *KnowledgeRepository) GetAll() []entity.KnowledgeArticle {
	return r.corpus
}

func (r *KnowledgeRepository) GetByCategory(category string) []entity.KnowledgeArticle {
	return search.FilterByCategory(r.corpus, category)
}
