package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     *uuid.UUID `gorm:"type:uuid;index"`
	IncidentId *uuid.UUID `gorm:"type:uuid;index"`
	Title      string     `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}
