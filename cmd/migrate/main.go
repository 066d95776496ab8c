package main

import (
	"fmt"
	"os"
	"strconv"

	"fairway-api/config"
	"fairway-api/migrations"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	config.SetupLogger(cfg)
	config.ConnectDatabase(cfg)

	migrator, err := migrations.NewMigrator(config.DB)
	if err != nil {
		logrus.WithError(err).Fatal("failed to prepare migrations table")
	}
	for _, migration := range migrations.GetAllMigrations() {
		migrator.AddMigration(migration)
	}

	switch os.Args[1] {
	case "migrate":
		applied, err := migrator.Migrate()
		if err != nil {
			logrus.WithError(err).Fatal("migration failed")
		}
		fmt.Printf("Applied %d migration(s)\n", applied)
	case "rollback":
		steps := 1
		if len(os.Args) > 2 {
			s, err := strconv.Atoi(os.Args[2])
			if err != nil || s < 1 {
				logrus.Fatalf("invalid rollback steps: %q", os.Args[2])
			}
			steps = s
		}
		if err := migrator.Rollback(steps); err != nil {
			logrus.WithError(err).Fatal("rollback failed")
		}
	case "status":
		showStatus(migrator)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migrate migrate          - Run pending migrations")
	fmt.Println("  go run ./cmd/migrate rollback [steps] - Rollback migration batches (default: 1)")
	fmt.Println("  go run ./cmd/migrate status           - Show migration status")
}

func showStatus(migrator *migrations.Migrator) {
	ran, err := migrator.Status()
	if err != nil {
		logrus.WithError(err).Fatal("failed to read migration status")
	}
	pending, err := migrator.Pending()
	if err != nil {
		logrus.WithError(err).Fatal("failed to read pending migrations")
	}

	if len(ran) == 0 {
		fmt.Println("No migrations have been run yet.")
	} else {
		fmt.Println("Migration Status:")
		fmt.Println("Batch | Name")
		fmt.Println("------|-----")
		for _, migration := range ran {
			fmt.Printf("%-5d | %s\n", migration.Batch, migration.Name)
		}
	}

	for _, name := range pending {
		fmt.Printf("pending | %s\n", name)
	}
}
