package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/printhub/printhub/internal/cache"
	"github.com/printhub/printhub/internal/db"
	"github.com/printhub/printhub/internal/inbox"
	kafkapkg "github.com/printhub/printhub/internal/kafka"
	"github.com/printhub/printhub/internal/logger"
	"github.com/printhub/printhub/internal/match"
	"github.com/printhub/printhub/internal/order"
	"github.com/printhub/printhub/internal/repository/postgresql"
	"github.com/printhub/printhub/internal/server"
)

func main() {
	log := logger.New()
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	orderRepo := postgresql.NewOrderRepo(database)
	acceptanceRepo := postgresql.NewAcceptanceRepo(database)
	capabilityRepo := postgresql.NewCapabilityRepo(database)
	catalogRepo := postgresql.NewCatalogRepo(database)
	identityRepo := postgresql.NewIdentityRepo(database)
	accountRepo := postgresql.NewAccountRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	catalogCache := cache.NewCatalogCache(catalogRepo, log)
	if err := catalogCache.Reload(ctx); err != nil {
		log.Fatal("catalog load failed", zap.Error(err))
	}

	pendingInbox := newInbox(log)

	svc := order.NewService(
		database,
		orderRepo,
		acceptanceRepo,
		capabilityRepo,
		identityRepo,
		outboxRepo,
		catalogCache,
		pendingInbox,
		log,
	)

	producer := newProducer(log)
	publisher := kafkapkg.NewPublisher(database, outboxRepo, producer, kafkapkg.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	}, log)
	go publisher.Run(ctx)

	srv := server.New(svc, accountRepo, log)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "9000"
	}
	go func() {
		if err := srv.Run(port); err != nil {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", zap.Error(err))
	}
	publisher.Shutdown()
	log.Info("stopped")
}

func newInbox(log *zap.Logger) match.Inbox {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Warn("REDIS_ADDR not set, using in-process inbox")
		return inbox.NewMemoryInbox()
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return inbox.NewRedisInbox(client)
}

func newProducer(log *zap.Logger) kafkapkg.Producer {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		log.Warn("KAFKA_BROKERS not set, notifications go to the log only")
		return kafkapkg.NewLogProducer(log)
	}
	return kafkapkg.NewWriterProducer(strings.Split(brokers, ","))
}
