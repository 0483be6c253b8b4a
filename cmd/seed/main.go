package main

import (
	"context"
	"flag"
	"os"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database/migration"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/database/seeder"
	"talent-match/internal/pkg/logger"
	"talent-match/migrations"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply migrations without seeding the sample catalog")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.Environment)
	if err != nil {
		os.Stderr.WriteString("failed to init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	if !cfg.Database.Enabled() {
		log.Fatal("DB_HOST is not configured")
	}

	connectCtx, connectCancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	connectCancel()
	if err != nil {
		log.Fatal("failed to connect database", "error", err)
	}
	defer func() {
		_ = db.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	if err := (migration.Runner{Source: migrations.FS}).Run(migCtx, db); err != nil {
		log.Fatal("migration failed", "error", err)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		return
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), time.Minute)
	defer seedCancel()
	r := seeder.Runner{Seeders: seeder.Defaults(), Logger: log}
	if err := r.Run(seedCtx, db); err != nil {
		log.Fatal("seeding failed", "error", err)
	}
	log.Info("seeding finished")
}
