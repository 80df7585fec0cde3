package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type KnowledgeArticle struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Reference string         `gorm:"type:varchar(16);uniqueIndex"` // KB001 style label
	Title     string         `gorm:"type:text;not null"`
	Content   string         `gorm:"type:text;not null"`
	Category  string         `gorm:"type:text;not null"`
	Tags      datatypes.JSON `gorm:"type:jsonb"`
	Version   int            `gorm:"not null;default:1"`
	IsActive  bool           `gorm:"not null;default:true"`
	CreatedBy *uuid.UUID     `gorm:"type:uuid;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (KnowledgeArticle) TableName() string {
	return "knowledge_base"
}
