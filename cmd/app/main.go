package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/peacekuria/smartmove/api"
	"github.com/peacekuria/smartmove/config"
	"github.com/peacekuria/smartmove/internal/bootstrap"
	"github.com/peacekuria/smartmove/internal/cache"
	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/kafka"
	"github.com/peacekuria/smartmove/internal/kvstore"
	"github.com/peacekuria/smartmove/internal/repository"
	authsvc "github.com/peacekuria/smartmove/internal/service/auth"
	"github.com/peacekuria/smartmove/internal/service/booking"
	"github.com/peacekuria/smartmove/internal/service/inventory"
	"github.com/peacekuria/smartmove/internal/service/movers"
	"github.com/peacekuria/smartmove/internal/service/tracking"
	"github.com/peacekuria/smartmove/internal/service/wizard"
)

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
	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	moversTTL := time.Duration(cfg.Booking.MoversCacheTTL) * time.Second
	draftTTL := time.Duration(cfg.Booking.DraftTTLMinutes) * time.Minute
	positionTTL := time.Duration(cfg.Tracking.PositionTTLMinutes) * time.Minute

	var store appCache
	if cfg.Redis.Addr != "" {
		store = cache.NewRedisCache(cfg.Redis, moversTTL, draftTTL, positionTTL)
	} else {
		log.Println("no redis address configured, using in-process cache")
		store = cache.NewMemoryCache(moversTTL, draftTTL, positionTTL)
	}

	var (
		bookingRepo   repository.BookingRepository
		userRepo      repository.UserRepository
		moverRepo     repository.MoverRepository
		inventoryRepo repository.InventoryRepository
	)

	switch cfg.Storage.Driver {
	case "", "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		bookingRepo = repository.NewBookingRepository(pool)
		userRepo = repository.NewUserRepository(pool)
		moverRepo = repository.NewMoverRepository(pool)
		inventoryRepo = repository.NewInventoryRepository(pool)
	case "file":
		fileStore, err := kvstore.NewFile(cfg.Storage.Dir)
		if err != nil {
			log.Fatalf("open file storage: %v", err)
		}
		bookingRepo = repository.NewKVBookingRepository(fileStore, cfg.Storage.BookingsKey)
		userRepo = repository.NewMemoryUserRepository()
		moverRepo = repository.NewMemoryMoverRepository()
		inventoryRepo = repository.NewKVInventoryRepository(fileStore, "")
	case "memory":
		bookingRepo = repository.NewKVBookingRepository(kvstore.NewMemory(), cfg.Storage.BookingsKey)
		userRepo = repository.NewMemoryUserRepository()
		moverRepo = repository.NewMemoryMoverRepository()
		inventoryRepo = repository.NewKVInventoryRepository(kvstore.NewMemory(), "")
	default:
		log.Fatalf("unknown storage driver %q", cfg.Storage.Driver)
	}

	var producer booking.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	pricing := pricingFromConfig(cfg)
	bookingService := booking.NewBookingService(
		bookingRepo,
		store,
		producer,
		cfg.Kafka.BookingTopic,
		pricing,
		cfg.Booking.PaymentMethod,
		time.Duration(cfg.Booking.DateLockTTLSeconds)*time.Second,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	wizardService := wizard.NewWizardService(store, bookingService)
	authService := authsvc.NewAuthService(userRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	moverService := movers.NewMoverService(moverRepo, store)
	trackingService := tracking.NewTrackingService(store, bookingRepo, time.Duration(cfg.Tracking.PollIntervalSeconds)*time.Second)
	inventoryService := inventory.NewInventoryService(inventoryRepo)

	router := api.NewRouter(authService, api.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Bookings:  api.NewBookingHandler(bookingService),
		Sessions:  api.NewSessionHandler(wizardService),
		Movers:    api.NewMoverHandler(moverService),
		Maps:      api.NewMapsHandler(trackingService),
		Inventory: api.NewInventoryHandler(inventoryService),
	})

	log.Printf("smartmove api listening on %s", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// appCache is the union of the cache-backed collaborator interfaces the
// services need; both RedisCache and MemoryCache satisfy it.
type appCache interface {
	booking.Cache
	wizard.SessionStore
	movers.MoverCache
	tracking.PositionStore
}

func pricingFromConfig(cfg *config.Config) domain.Pricing {
	p := domain.DefaultPricing()
	if cfg.Booking.BaseFareCents > 0 {
		p.BaseFareCents = cfg.Booking.BaseFareCents
	}
	if cfg.Booking.PackingCents > 0 {
		p.PackingCents = cfg.Booking.PackingCents
	}
	if cfg.Booking.StorageCents > 0 {
		p.StorageCents = cfg.Booking.StorageCents
	}
	if cfg.Booking.InsuranceCents > 0 {
		p.InsuranceCents = cfg.Booking.InsuranceCents
	}
	return p
}
