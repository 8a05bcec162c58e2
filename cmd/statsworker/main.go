package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/clients/kafka"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/health"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/stats"
	"max.ks1230/expense-tracker/internal/tracing"
)

const (
	serviceName     = "statsworker"
	shutdownTimeout = 5 * time.Second
)

func main() {
	defer logger.Sync()
	logger.Info("Stats worker init - start")

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("cannot load .env", zap.Error(err))
	}

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}
	if !conf.Kafka().Enabled() || !conf.Memcached().Enabled() {
		logger.Fatal("stats worker needs both kafka and memcached configured")
	}

	closer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcached", zap.Error(err))
	}
	consumer, err := kafka.NewConsumer(conf.Kafka(), stats.NewInvalidator(mc))
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	healthServer, err := health.NewServer(conf.Metrics().HealthAddr(), serviceName)
	if err != nil {
		logger.Fatal("failed to init health server", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:              conf.Metrics().Addr(),
		Handler:           mux,
		ReadHeaderTimeout: shutdownTimeout,
	}

	logger.Info("Stats worker init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return consumer.StartConsuming(ctx)
	})
	g.Go(healthServer.Serve)
	g.Go(func() error {
		logger.Info("metrics server listening", zap.String("addr", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "serve metrics")
		}
		return nil
	})
	g.Go(func() error {
		healthServer.SetServing(true)
		<-ctx.Done()
		healthServer.SetServing(false)

		shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stop()
		healthServer.Shutdown()
		return metricsServer.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		logger.Error("stats worker stopped", zap.Error(err))
		return
	}
	logger.Info("stats worker stopped")
}
