package dto

import "it-helpdesk-be/internal/entity"

type KnowledgeListResponse struct {
	Articles []entity.KnowledgeArticle `json:"articles"`
	Total    int                       `json:"total"`
}
