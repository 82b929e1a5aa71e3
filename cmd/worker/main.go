package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/peacekuria/smartmove/config"
	"github.com/peacekuria/smartmove/internal/cache"
	"github.com/peacekuria/smartmove/internal/email"
	"github.com/peacekuria/smartmove/internal/kafka"
	"github.com/peacekuria/smartmove/internal/kvstore"
	"github.com/peacekuria/smartmove/internal/repository"
	"github.com/peacekuria/smartmove/internal/service/tracking"
	kafkaGo "github.com/segmentio/kafka-go"
)

// The worker owns the background halves of the system: the notifications
// consumer feeding the email sender, and the tracking sweep that keeps
// simulated mover positions moving on move day.
func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	moversTTL := time.Duration(cfg.Booking.MoversCacheTTL) * time.Second
	draftTTL := time.Duration(cfg.Booking.DraftTTLMinutes) * time.Minute
	positionTTL := time.Duration(cfg.Tracking.PositionTTLMinutes) * time.Minute

	var positions tracking.PositionStore
	if cfg.Redis.Addr != "" {
		positions = cache.NewRedisCache(cfg.Redis, moversTTL, draftTTL, positionTTL)
	} else {
		// Without Redis the sweep writes into this process only; the api
		// cannot see these positions.
		log.Println("WARNING: no redis address configured, swept positions stay local to the worker")
		positions = cache.NewMemoryCache(moversTTL, draftTTL, positionTTL)
	}

	var bookingRepo repository.BookingRepository
	switch cfg.Storage.Driver {
	case "", "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		bookingRepo = repository.NewBookingRepository(pool)
	case "file":
		fileStore, err := kvstore.NewFile(cfg.Storage.Dir)
		if err != nil {
			log.Fatalf("open file storage: %v", err)
		}
		bookingRepo = repository.NewKVBookingRepository(fileStore, cfg.Storage.BookingsKey)
	case "memory":
		bookingRepo = repository.NewKVBookingRepository(kvstore.NewMemory(), cfg.Storage.BookingsKey)
	default:
		log.Fatalf("unknown storage driver %q", cfg.Storage.Driver)
	}

	trackingService := tracking.NewTrackingService(positions, bookingRepo, time.Duration(cfg.Tracking.PollIntervalSeconds)*time.Second)
	emailSender := email.NewSender()

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.NotificationsTopic != "" {
		var opts []kafka.ConsumerOption
		if cfg.Kafka.HeartbeatIntervalSeconds > 0 {
			opts = append(opts, kafka.WithHeartbeatInterval(time.Duration(cfg.Kafka.HeartbeatIntervalSeconds)*time.Second))
		}
		if cfg.Kafka.SessionTimeoutSeconds > 0 {
			opts = append(opts, kafka.WithSessionTimeout(time.Duration(cfg.Kafka.SessionTimeoutSeconds)*time.Second))
		}
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, opts...)
		defer consumer.Close()

		go func() {
			err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
				var event kafka.BookingEvent
				if err := json.Unmarshal(msg.Value, &event); err != nil {
					log.Printf("decode event error: %v", err)
					return nil
				}
				return emailSender.Send(ctx, event)
			})
			if err != nil {
				log.Printf("consumer stopped: %v", err)
			}
		}()
	}

	sweep := time.NewTicker(time.Duration(cfg.Worker.SweepSeconds) * time.Second)
	defer sweep.Stop()

	for {
		select {
		case <-sweep.C:
			if err := trackingService.Sweep(ctx); err != nil {
				log.Printf("tracking sweep error: %v", err)
			}
		case <-ctx.Done():
			log.Println("worker shutting down")
			return
		}
	}
}
