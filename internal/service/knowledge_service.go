package service

import (
	"it-helpdesk-be/internal/dto"
	"it-helpdesk-be/internal/entity"
	"it-helpdesk-be/internal/repository/contract"
	"it-helpdesk-be/pkg/search"
)

type IKnowledgeService interface {
	GetAll() *dto.KnowledgeListResponse
	Search(query, category string) *dto.KnowledgeListResponse
}

type knowledgeService struct {
	knowledgeRepo contract.IKnowledgeRepository
}

func NewKnowledgeService(knowledgeRepo contract.IKnowledgeRepository) IKnowledgeService {
	return &knowledgeService{knowledgeRepo: knowledgeRepo}
}

func (ks *knowledgeService) GetAll() *dto.KnowledgeListResponse {
	articles := ks.knowledgeRepo.GetAll()
	return &dto.KnowledgeListResponse{
		Articles: nonNil(articles),
		Total:    len(articles),
	}
}

// Search filters by category first, then ranks the remainder when a query
// is present. Category-only searches come back unscored in corpus order.
func (ks *knowledgeService) Search(query, category string) *dto.KnowledgeListResponse {
	results := ks.knowledgeRepo.GetByCategory(category)
	if query != "" {
		results = search.Rank(query, results, search.DefaultLimit)
	}
	return &dto.KnowledgeListResponse{
		Articles: nonNil(results),
		Total:    len(results),
	}
}

// nonNil keeps empty result sets rendering as [] instead of null.
func nonNil(articles []entity.KnowledgeArticle) []entity.KnowledgeArticle {
	if articles == nil {
		return []entity.KnowledgeArticle{}
	}
	return articles
}
