package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/planetary-api/internal/config"
	"github.com/sbilibin2017/planetary-api/internal/events"
	"github.com/sbilibin2017/planetary-api/internal/logger"
	"github.com/sbilibin2017/planetary-api/internal/migrations"
	"github.com/sbilibin2017/planetary-api/internal/repositories"
	"github.com/sbilibin2017/planetary-api/internal/seed"
	"github.com/sbilibin2017/planetary-api/internal/services"
)

type options struct {
	configPath string
	drop       bool
	create     bool
	seed       bool
}

func main() {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg, opts); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

// parseFlags parses command-line flags. With no action flag, the schema is
// created and seeded.
func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "c", "config.env", "Path to configuration file")
	flag.BoolVar(&opts.drop, "drop", false, "Drop all tables")
	flag.BoolVar(&opts.create, "create", false, "Create tables")
	flag.BoolVar(&opts.seed, "seed", false, "Insert demo planets and the test user")
	flag.Parse()

	if !opts.drop && !opts.create && !opts.seed {
		opts.create = true
		opts.seed = true
	}
	return opts
}

func run(ctx context.Context, cfg *config.Config, opts options) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer db.Close()

	if opts.drop {
		if err := migrations.Reset(ctx, db.DB); err != nil {
			return err
		}
		logger.Log.Info("Database dropped!")
	}

	if opts.create {
		if err := migrations.Up(ctx, db.DB); err != nil {
			return err
		}
		logger.Log.Info("Database created!")
	}

	if opts.seed {
		catalog := services.NewPlanetService(
			repositories.NewPlanetReadRepository(db),
			repositories.NewPlanetWriteRepository(db),
		)
		// only Register is used: no tokens, mail or events are needed here
		auth := services.NewAuthService(
			repositories.NewUserReadRepository(db),
			repositories.NewUserWriteRepository(db),
			nil, nil, nil,
			events.NopPublisher{},
			cfg.Reset.TokenTTL,
		)
		if err := seed.Run(ctx, catalog, auth); err != nil {
			return err
		}
		logger.Log.Info("Database seeded!")
	}

	return nil
}
