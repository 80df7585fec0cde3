package contract

import "it-helpdesk-be/internal/entity"

type IIncidentRepository interface {
	GetAll() []entity.Incident
	FindByNumber(number string) (*entity.Incident, bool)
}
