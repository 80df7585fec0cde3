package contract

import "it-helpdesk-be/internal/entity"

// IKnowledgeRepository serves the read-only article corpus. The corpus is
// fixed at construction, so implementations need no locking.
type IKnowledgeRepository interface {
	GetAll() []entity.KnowledgeArticle
	GetByCategory(category string) []entity.KnowledgeArticle
}
