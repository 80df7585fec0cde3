package dto

import "it-helpdesk-be/internal/entity"

type IncidentListResponse struct {
	Incidents   []entity.Incident `json:"incidents"`
	Total       int               `json:"total"`
	Integration string            `json:"integration"`
}

type AnalyzeIncidentResponse struct {
	Incident        entity.Incident           `json:"incident"`
	Analysis        string                    `json:"analysis"`
	RelevantKB      []entity.KnowledgeArticle `json:"relevantKB"`
	Recommendations []string                  `json:"recommendations"`
}
