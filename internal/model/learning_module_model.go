package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LearningModule struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string         `gorm:"type:text;not null"`
	Description string         `gorm:"type:text;not null"`
	Category    string         `gorm:"type:text;not null"`
	Difficulty  string         `gorm:"type:text;not null;default:beginner"` // beginner, intermediate, advanced
	Content     datatypes.JSON `gorm:"type:jsonb"`                          // questions, scenarios
	IsActive    bool           `gorm:"not null;default:true"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (LearningModule) TableName() string {
	return "learning_modules"
}
