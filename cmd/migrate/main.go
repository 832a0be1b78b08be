package main

import (
	"database/sql"
	"flag"

	"travel-journal/pkg/config"
	"travel-journal/pkg/database"
	"travel-journal/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory with migration files")
		command = flag.String("command", "up", "migration command (up, down, status, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	log := logger.NewWithService("migrate")

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		panic(err)
	}

	db, err := sql.Open("postgres", database.DSN(cfg))
	if err != nil {
		log.Error("Failed to open database: %v", err)
		panic(err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Error("Failed to set dialect: %v", err)
		panic(err)
	}

	switch *command {
	case "create":
		if *name == "" {
			log.Error("Name is required for create command")
			return
		}
		if err := goose.Create(db, *dir, *name, "sql"); err != nil {
			log.Error("Failed to create migration: %v", err)
			panic(err)
		}
		log.Info("Created migration: %s", *name)
	case "up":
		if err := goose.Up(db, *dir); err != nil {
			log.Error("Failed to run migrations: %v", err)
			panic(err)
		}
		log.Info("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, *dir); err != nil {
			log.Error("Failed to rollback migrations: %v", err)
			panic(err)
		}
		log.Info("Migrations rolled back successfully")
	case "status":
		if err := goose.Status(db, *dir); err != nil {
			log.Error("Failed to get migration status: %v", err)
			panic(err)
		}
	default:
		log.Error("Unknown command: %s", *command)
	}
}
