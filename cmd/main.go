package main

import (
	"fmt"
	"log"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/cmd/config"
	migration "github.com/amaralmassoterapia2-wq/safedining-sub000/cmd/database/migrate"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/utils"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/utils/logging"
)

func main() {
	utils.LoadConfig()

	if err := logging.InitLogger(utils.GetConfig("LOG_LEVEL")); err != nil {
		log.Fatalf("error initializing logger: %v", err)
	}
	defer logging.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
