package main

import (
	"log"

	"it-helpdesk-be/internal/config"
	"it-helpdesk-be/internal/model"
	"it-helpdesk-be/pkg/database"

	"github.com/fatih/color"
)

// Migrates the persistence schema. The request paths run entirely off
// in-memory fixtures; these tables are the extension point for durable
// storage and embedding-based retrieval.
func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is required for migration")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	// document_embeddings needs the vector type before AutoMigrate runs
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		color.Yellow("⚠ could not ensure pgvector extension: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Incident{},
		&model.KnowledgeArticle{},
		&model.DocumentEmbedding{},
		&model.Conversation{},
		&model.ChatMessage{},
		&model.LearningModule{},
		&model.UserProgress{},
	)
	if err != nil {
		color.Red("✗ migration failed: %v", err)
		log.Fatal(err)
	}

	color.Green("✓ schema migrated")
}
