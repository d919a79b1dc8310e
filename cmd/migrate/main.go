package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"blackhole/internal/config"
	"blackhole/internal/platform/logger"
	"blackhole/internal/store"
)

func main() {
	var (
		command = flag.StringP("command", "c", "up", "Migration command: up, down, status, create")
		name    = flag.StringP("name", "n", "", "Name for 'create' command")
		driver  = flag.String("driver", store.DriverSQLite, "Dialect for 'create': sqlite or pgx")
	)
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Setup(cfg.LogLevel, cfg.IsDev())

	if *command == "create" {
		if *name == "" {
			log.Fatal().Msg("name is required for 'create' command")
		}
		dir := createDir(*driver)
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			log.Fatal().Err(err).Msg("create migration")
		}
		return
	}

	ctx := context.Background()
	database, err := store.Open(ctx, cfg.SafeDatabaseURL(), cfg.DBTimeout)
	if err != nil {
		log.Fatal().Err(err).Str("database", config.RedactDSN(cfg.DatabaseURL)).Msg("open database")
	}
	defer database.Close()

	src := migrationSource(database.Driver())
	if err := database.Migrate(ctx, *command, src); err != nil {
		log.Error().Err(err).Str("command", *command).Str("dir", src.Dir).Msg("migration failed")
		database.Close()
		os.Exit(1)
	}

	switch *command {
	case "up":
		fmt.Println("Migrations applied successfully")
	case "down":
		fmt.Println("Migrations rolled back successfully")
	}
}
