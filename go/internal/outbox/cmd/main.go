package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mcdev12/tourney/go/internal/dbconfig"
	"github.com/mcdev12/tourney/go/internal/outbox"
	outboxdb "github.com/mcdev12/tourney/go/internal/outbox/db"
)

func main() {
	// load .env
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	// configure zerolog console output and level
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	// signal‐aware context
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB config
	cfg, err := dbconfig.NewConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("load database config")
	}
	dsn := cfg.DSN()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("connected to database")

	relayCfg, err := loadRelayConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load relay config")
	}

	// JetStream publisher
	jsCfg := outbox.DefaultJetStreamConfig()
	jsCfg.URL = relayCfg.NatsURL
	publisher, err := outbox.NewJetStreamPublisher(ctx, jsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create JetStream publisher")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("close publisher")
		}
	}()

	// Worker config
	workerCfg := outbox.DefaultConfig()
	workerCfg.PollInterval = relayCfg.PollInterval
	workerCfg.BatchSize = relayCfg.BatchSize
	repo := outbox.NewRepository(outboxdb.New(db))
	worker := outbox.NewWorker(repo, publisher, workerCfg)

	// Listener config
	ltCfg := outbox.DefaultListenerConfig()
	ltCfg.DatabaseURL = dsn
	listener, err := outbox.NewListener(ltCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create outbox listener")
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Dur("poll_interval", workerCfg.PollInterval).Msg("starting outbox worker")
		return worker.Run(gCtx)
	})
	g.Go(func() error {
		log.Info().Msg("starting realtime listener")
		return listener.Run(gCtx, worker.Wake)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("outbox relay exited unexpectedly")
		return
	}
	log.Info().Msg("graceful shutdown complete")
}
