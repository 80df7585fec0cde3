package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProgress struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	ModuleId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Progress    int       `gorm:"not null;default:0"` // percentage completed
	Score       *int
	CompletedAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
