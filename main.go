package main

import (
	"context"
	"log"

	"github.com/coursebill/coursebill/app/repository"
	"github.com/coursebill/coursebill/internal/pkg/cache"
	"github.com/coursebill/coursebill/internal/pkg/database"
	"github.com/coursebill/coursebill/internal/pkg/env"
	"github.com/coursebill/coursebill/internal/pkg/migration"
)

// Runs the full migration pipeline. cmd/coursebill offers per-phase control.
func main() {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	runner := migration.NewRunner(repository.NewRepositories(database.DB))

	report, err := runner.Run(context.Background())
	report.Log()

	if closeErr := database.CloseDatabase(); closeErr != nil {
		log.Printf("Error closing database connection: %v", closeErr)
	}
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("migration finished")
}
