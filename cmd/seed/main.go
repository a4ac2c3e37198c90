package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cuisinecraft-hub/internal/config"
	"cuisinecraft-hub/internal/repository"
	"cuisinecraft-hub/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	file := flag.String("file", "data/seed/catalogue.json.gz", "dataset to load, relative to S3_PREFIX when S3 is enabled")
	generate := flag.String("generate", "", "write a sample dataset to this path and exit")
	sampleSeed := flag.Int64("seed", time.Now().UnixNano(), "random seed for -generate")
	flag.Parse()

	if *generate != "" {
		ds := seed.GenerateSample(*sampleSeed)
		if err := seed.WriteFile(*generate, ds); err != nil {
			return fmt.Errorf("failed to write sample dataset: %w", err)
		}
		fmt.Printf("Wrote %d records to %s\n", ds.Size(), *generate)
		return nil
	}

	_ = godotenv.Load()

	cfg, err := config.LoadStorage()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, "seed")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fileLoader := seed.NewFileLoader(logger)
	var s3Loader seed.Loader
	if cfg.S3.Enabled {
		s3Loader, err = seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		}
	} else {
		logger.Info().Msg("using local file system for seed data (S3 disabled)")
	}

	loader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)

	ds, err := loader.Load(ctx, *file)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	store, closeStore, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	sum, err := seed.NewSeeder(store, logger).Seed(ctx, ds)
	if err != nil {
		return fmt.Errorf("failed to seed catalogue: %w", err)
	}

	logger.Info().
		Int("menu", sum.Menu).
		Int("reviews", sum.Reviews).
		Int("recommendations", sum.Recommendations).
		Int("contact_messages", sum.ContactMessages).
		Msg("catalogue seeded")

	return nil
}
