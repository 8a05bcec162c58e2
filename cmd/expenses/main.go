package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/clients/kafka"
	"max.ks1230/expense-tracker/internal/commands"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/stats"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/tracing"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer logger.Sync()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("cannot load .env", zap.Error(err))
	}

	conf, err := config.New()
	if err != nil {
		logger.Error("failed to init config", zap.Error(err))
		return 1
	}

	closer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		logger.Error("failed to init tracing", zap.Error(err))
		return 1
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	db, err := storage.New(ctx, conf)
	if err != nil {
		logger.Error("failed to init storage", zap.Error(err))
		return 1
	}
	defer db.Close()

	service, cleanup := newService(conf, db)
	defer cleanup()

	runner := commands.NewRunner(db, service, os.Stdin, os.Stdout, conf.App().Location())
	if err = runner.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// newService wires the optional cache and event publisher. Either one is
// skipped, with a warning, when it is not configured or not reachable.
func newService(conf *config.Service, db storage.Storage) (*expenses.Service, func()) {
	agg := stats.NewAggregator(db)
	cleanup := func() {}

	var (
		computer = expenses.StatsComputer(agg)
		inv      expenses.Invalidator
		pub      expenses.EventPublisher
	)

	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Warn("stats cache disabled", zap.Error(err))
		} else {
			cached := stats.NewCached(agg, mc)
			computer, inv = cached, cached
		}
	}

	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Warn("expense events disabled", zap.Error(err))
		} else {
			pub = producer
			cleanup = producer.Close
		}
	}

	return expenses.NewService(db, computer, agg, pub, inv), cleanup
}
