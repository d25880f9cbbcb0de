package config

import "time"

type InternalConfig struct {
	App      App
	CORS     AppCORS
	Booking  AppBooking
	Identity AppIdentity
	Frontend AppFrontend
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

const defaultRequestTimeout = 10 * time.Second

// RequestTimeout bounds every call a handler makes to an external service.
func (a App) RequestTimeout() time.Duration {
	if a.RequestTimeoutInSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(a.RequestTimeoutInSeconds) * time.Second
}

type AppCORS struct {
	FrontendDomain        string
	AllowedOriginPatterns []string
}

type AppBooking struct {
	// StoreDriver selects the booking store, postgres or mongo.
	StoreDriver string
}

type AppIdentity struct {
	HTTPTimeoutInSeconds   int
	EmailCacheTTLInMinutes int
	LookupConcurrency      int
	LookupRatePerSecond    int
	LookupBurst            int
}

type AppFrontend struct {
	// Source is filesystem or minio.
	Source     string
	Directory  string
	BucketName string
}

type AppRabbitMQ struct {
	BookingExchange string
}
