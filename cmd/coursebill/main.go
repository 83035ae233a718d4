package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/coursebill/coursebill/app/repository"
	"github.com/coursebill/coursebill/internal/pkg/cache"
	"github.com/coursebill/coursebill/internal/pkg/database"
	"github.com/coursebill/coursebill/internal/pkg/env"
	"github.com/coursebill/coursebill/internal/pkg/migration"
)

func main() {
	env.SetupEnvFile()

	command := "all"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	database.SetupDatabase()
	cache.SetupCache()

	repos := repository.NewRepositories(database.DB)
	runner := migration.NewRunner(repos)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report := &migration.Report{}
	var err error

	switch command {
	case "all":
		report, err = runner.Run(ctx)
	case "backfill-plans":
		err = runner.BackfillPlans(ctx, report)
	case "memberships":
		err = runner.PurchasesToMemberships(ctx, report)
	case "customers":
		err = runner.CustomersToMemberships(ctx, report)
	case "invoices":
		err = runner.PurchasesToInvoices(ctx, report)
	default:
		printUsage()
		os.Exit(1)
	}

	report.Log()

	if closeErr := database.CloseDatabase(); closeErr != nil {
		log.Printf("Error closing database connection: %v", closeErr)
	}
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("migration finished")
}

func printUsage() {
	fmt.Println("Usage: coursebill [command]")
	fmt.Println("Available commands:")
	fmt.Println("  all            - run every migration phase in order (default)")
	fmt.Println("  backfill-plans - ensure courses and communities have payment plans")
	fmt.Println("  memberships    - migrate embedded user purchases to memberships")
	fmt.Println("  customers      - migrate course customer lists to memberships")
	fmt.Println("  invoices       - derive invoices from legacy purchases")
}
