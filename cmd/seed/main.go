package main

import (
	"context"

	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"blackhole/internal/blackhole"
	"blackhole/internal/config"
	"blackhole/internal/gallery"
	"blackhole/internal/platform/logger"
	"blackhole/internal/store"
)

func main() {
	var (
		force       = flag.BoolP("force", "f", false, "Insert even when the catalog already has rows")
		fromGallery = flag.Bool("gallery", false, "Seed the three gallery entries instead of the starter pair")
	)
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Setup(cfg.LogLevel, cfg.IsDev())

	ctx := context.Background()
	database, err := store.Open(ctx, cfg.SafeDatabaseURL(), cfg.DBTimeout)
	if err != nil {
		log.Fatal().Err(err).Str("database", config.RedactDSN(cfg.DatabaseURL)).Msg("open database")
	}
	defer database.Close()

	if err := database.Migrate(ctx, "up", store.EmbeddedMigrations(database.Driver())); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	seeds := blackhole.DefaultSeeds()
	if *fromGallery {
		seeds = gallerySeeds(gallery.Entries())
	}

	svc := blackhole.NewService(database.BlackHoles())
	n, err := svc.Seed(ctx, seeds, !*force)
	if err != nil {
		log.Fatal().Err(err).Int("inserted", n).Msg("seed catalog")
	}
	log.Info().Int("inserted", n).Int("available", len(seeds)).Msg("seed finished")
}

func gallerySeeds(entries []gallery.Entry) []blackhole.CreateInput {
	seeds := make([]blackhole.CreateInput, 0, len(entries))
	for _, e := range entries {
		in := blackhole.CreateInput{
			Name:       e.Name,
			DistanceLY: e.DistanceLY,
			MassSolar:  e.MassSolar,
		}
		if e.Description != "" {
			desc := e.Description
			in.Description = &desc
		}
		seeds = append(seeds, in)
	}
	return seeds
}
