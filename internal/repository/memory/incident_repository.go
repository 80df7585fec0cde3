package memory

import "it-helpdesk-be/internal/entity"

type IncidentRepository struct {
	incidents []entity.Incident
	byNumber  map[string]int
}

func NewIncidentRepository(incidents []entity.Incident) *IncidentRepository {
	byNumber := make(map[string]int, len(incidents))
	for i, incident := range incidents {
		byNumber[incident.Number] = i
	}
	return &IncidentRepository{incidents: incidents, byNumber: byNumber}
}

func (r *IncidentRepository) GetAll() []entity.Incident {
	return r.incidents
}

func (r *IncidentRepository) FindByNumber(number string) (*entity.Incident, bool) {
	idx, ok := r.byNumber[number]
	if !ok {
		return nil, false
	}
	incident := r.incidents[idx]
	return &incident, true
}
