package config

import (
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: Postgres{
			Host:                     utils.GetEnvString("POSTGRES_HOST", ""),
			Port:                     utils.GetEnvString("POSTGRES_PORT", "5432"),
			DbName:                   utils.GetEnvString("POSTGRES_DB_NAME", ""),
			Username:                 utils.GetEnvString("POSTGRES_USERNAME", ""),
			Password:                 utils.GetEnvString("POSTGRES_PASSWORD", ""),
			SSLMode:                  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxOpenConns:             utils.GetEnvInt("POSTGRES_MAX_OPEN_CONNECTIONS", 10),
			MaxIdleConns:             utils.GetEnvInt("POSTGRES_MAX_IDLE_CONNECTIONS", 5),
			ConnMaxLifetimeInMinutes: utils.GetEnvInt("POSTGRES_CONNECTION_MAX_LIFETIME_IN_MINUTES", 30),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", ""),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", ""),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", ""),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Supabase: Supabase{
			URL:            utils.GetEnvString("SUPABASE_URL", ""),
			AnonKey:        utils.GetEnvString("SUPABASE_ANON_KEY", ""),
			ServiceRoleKey: utils.GetEnvString("SUPABASE_SERVICE_ROLE_KEY", ""),
			JWTSecret:      utils.GetEnvString("SUPABASE_JWT_SECRET", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "3001"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		CORS: AppCORS{
			FrontendDomain:        utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:5173"),
			AllowedOriginPatterns: utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGIN_PATTERNS", []string{"https://*.vercel.app"}),
		},
		Booking: AppBooking{
			StoreDriver: utils.GetEnvString("BOOKING_STORE_DRIVER", constvars.BookingStoreDriverPostgres),
		},
		Identity: AppIdentity{
			HTTPTimeoutInSeconds:   utils.GetEnvInt("IDENTITY_HTTP_TIMEOUT_IN_SECONDS", 10),
			EmailCacheTTLInMinutes: utils.GetEnvInt("IDENTITY_EMAIL_CACHE_TTL_IN_MINUTES", 15),
			LookupConcurrency:      utils.GetEnvInt("IDENTITY_LOOKUP_CONCURRENCY", 4),
			LookupRatePerSecond:    utils.GetEnvInt("IDENTITY_LOOKUP_RATE_PER_SECOND", 10),
			LookupBurst:            utils.GetEnvInt("IDENTITY_LOOKUP_BURST", 5),
		},
		Frontend: AppFrontend{
			Source:     utils.GetEnvString("FRONTEND_SOURCE", constvars.FrontendSourceFilesystem),
			Directory:  utils.GetEnvString("FRONTEND_DIRECTORY", "frontend/dist"),
			BucketName: utils.GetEnvString("FRONTEND_BUCKET_NAME", "frontend"),
		},
		RabbitMQ: AppRabbitMQ{
			BookingExchange: utils.GetEnvString("APP_RABBITMQ_BOOKING_EXCHANGE", "bookings"),
		},
	}
}
