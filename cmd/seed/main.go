package main

import (
	"encoding/json"
	"log"

	"it-helpdesk-be/internal/config"
	"it-helpdesk-be/internal/constant"
	"it-helpdesk-be/internal/model"
	"it-helpdesk-be/pkg/database"

	"github.com/fatih/color"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// Seeds the knowledge_base table with the fixture corpus so future
// retrieval work has real rows to chunk and embed.
func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is required for seeding")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	seeded := 0
	for _, article := range constant.KnowledgeBase {
		tags, err := json.Marshal(article.Tags)
		if err != nil {
			color.Red("✗ marshal tags for %s: %v", article.Id, err)
			continue
		}

		row := model.KnowledgeArticle{
			Reference: article.Id,
			Title:     article.Title,
			Content:   article.Content,
			Category:  article.Category,
			Tags:      datatypes.JSON(tags),
		}

		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "reference"}},
			UpdateAll: true,
		}).Create(&row).Error
		if err != nil {
			color.Red("✗ seed %s: %v", article.Id, err)
			continue
		}
		seeded++
	}

	color.Green("✓ seeded %d knowledge base articles", seeded)
}
