// @title IgnitiaLearn API
// @version 1.0
// @description Backend for the IgnitiaLearn e-learning catalog: course
// @description browsing, learning paths, skill assessment, AI-assisted
// @description recommendations and learning analytics.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"github.com/Lucifer-0905/ignitiaLearn/internal/app"
	"github.com/Lucifer-0905/ignitiaLearn/internal/config"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/configwatcher"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
