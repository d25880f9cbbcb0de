package main

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/app/delivery/http/routers"
	"booking-service/internal/app/drivers/database"
	"booking-service/internal/app/drivers/logger"
	"booking-service/internal/app/drivers/messaging"
	"booking-service/internal/app/drivers/storage"
	"booking-service/internal/app/services/core/auth"
	"booking-service/internal/app/services/core/bookings"
	"booking-service/internal/app/services/shared/events"
	"booking-service/internal/app/services/shared/frontend"
	"booking-service/internal/app/services/shared/identity"
	"booking-service/internal/app/services/shared/redis"
	"booking-service/internal/migration"
	"booking-service/internal/pkg/constvars"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	err := driverConfig.Validate(internalConfig)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	switch internalConfig.Booking.StoreDriver {
	case constvars.BookingStoreDriverMongo:
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	default:
		bootstrap.Postgres = database.NewPostgresDB(driverConfig)
		migration.Run(bootstrap.Postgres)
	}

	if internalConfig.Frontend.Source == constvars.FrontendSourceMinio {
		bootstrap.Minio = storage.NewMinio(driverConfig)
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("address", server.Addr),
			zap.String(constvars.LoggingStoreDriverKey, internalConfig.Booking.StoreDriver),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	shutdownTimeout := time.Second * time.Duration(internalConfig.App.ShutdownTimeoutInSeconds)
	zapLogger.Info("Waiting for pending requests that already received by server to be processed..",
		zap.Duration(constvars.LoggingShutdownTimeoutKey, shutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Identity provider
	identityProvider := identity.NewSupabaseClient(bootstrap.DriverConfig, bootstrap.InternalConfig, bootstrap.Logger)
	tokenVerifier := identity.NewJWTVerifier(bootstrap.DriverConfig.Supabase.JWTSecret, bootstrap.Logger)

	var emailCache contracts.RedisRepository
	if bootstrap.Redis != nil {
		emailCache = redis.NewRedisRepository(bootstrap.Redis)
	}
	identityResolver := identity.NewEmailResolver(identityProvider, emailCache, bootstrap.InternalConfig, bootstrap.Logger)

	// Events
	eventPublisher := events.NewNoopPublisher(bootstrap.Logger)
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.BookingExchange, bootstrap.Logger)
		if err != nil {
			log.Fatalf("Error creating booking event publisher: %v", err)
		}
		eventPublisher = publisher
	}
	bootstrap.EventsStop = eventPublisher.Close

	// Booking
	var bookingRepository contracts.BookingRepository
	if bootstrap.MongoDB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := bookings.EnsureBookingMongoIndexes(ctx, bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
		if err != nil {
			log.Fatalf("Error creating booking indexes: %v", err)
		}
		bookingRepository = bookings.NewBookingMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName, bootstrap.Logger)
	} else {
		bookingRepository = bookings.NewBookingPostgresRepository(bootstrap.Postgres, bootstrap.Logger)
	}
	bookingUsecase := bookings.NewBookingUsecase(bookingRepository, identityResolver, eventPublisher, bootstrap.Logger)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase, bootstrap.InternalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(identityProvider, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Frontend
	frontendStorage := frontend.NewFilesystemStorage(bootstrap.InternalConfig.Frontend.Directory)
	if bootstrap.Minio != nil {
		frontendStorage = frontend.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig.Frontend.BucketName)
	}
	frontendController := controllers.NewFrontendController(bootstrap.Logger, frontendStorage, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, identityProvider, tokenVerifier)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		bookingController,
		authController,
		frontendController,
		controllers.NewHealthController(),
	)
}
