// Manual database bootstrap.
//
// Migration and catalog seeding run automatically at server startup;
// this script triggers them standalone, e.g. to prepare a database
// before first deploy.
//
// Usage: go run scripts/bootstrap.go

package main

import (
	"log"

	"github.com/Lucifer-0905/ignitiaLearn/internal/config"
	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var courses, paths, questions, projects int64
	db.Model(&model.Course{}).Count(&courses)
	db.Model(&model.LearningPath{}).Count(&paths)
	db.Model(&model.AssessmentQuestion{}).Count(&questions)
	db.Model(&model.Project{}).Count(&projects)

	log.Printf("Catalog ready: %d courses, %d learning paths, %d assessment questions, %d projects",
		courses, paths, questions, projects)
}
