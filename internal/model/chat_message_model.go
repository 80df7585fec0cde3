package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Role           string         `gorm:"type:text;not null"` // user, assistant, system
	Content        string         `gorm:"type:text;not null"`
	Metadata       datatypes.JSON `gorm:"type:jsonb"` // RAG context, sources, fallback flag
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "messages"
}
