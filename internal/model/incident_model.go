package model

import (
	"time"

	"github.com/google/uuid"
)

type Incident struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Number      string     `gorm:"type:varchar(32);uniqueIndex"`
	Title       string     `gorm:"type:text;not null"`
	Description string     `gorm:"type:text;not null"`
	Priority    string     `gorm:"type:text;not null;default:medium"` // low, medium, high, critical
	Status      string     `gorm:"type:text;not null;default:open"`   // open, in_progress, resolved, closed
	Category    string     `gorm:"type:text"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
	ResolvedAt  *time.Time
}

func (Incident) TableName() string {
	return "incidents"
}
