package main

import (
	"context"
	"log"
	"time"

	"jobtrack/internal/config"
	"jobtrack/internal/database/migration"
	dbpostgres "jobtrack/internal/database/postgres"
	"jobtrack/internal/database/seeder"
	"jobtrack/migrations"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	runner := migration.Runner{FS: migrations.FS}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	seeds := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.DemoSeeder{},
	}}
	if err := seeds.Run(ctx, db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("seed complete")
}
