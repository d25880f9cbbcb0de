package config

import (
	"booking-service/internal/pkg/constvars"
	"errors"
	"fmt"
)

// Validate reports every missing setting the gateway cannot run without.
func (c *DriverConfig) Validate(internalConfig *InternalConfig) error {
	var errs []error

	if c.Supabase.URL == "" {
		errs = append(errs, errors.New("SUPABASE_URL is required"))
	}
	if c.Supabase.AnonKey == "" {
		errs = append(errs, errors.New("SUPABASE_ANON_KEY is required"))
	}
	if c.Supabase.ServiceRoleKey == "" {
		errs = append(errs, errors.New("SUPABASE_SERVICE_ROLE_KEY is required"))
	}

	switch internalConfig.Booking.StoreDriver {
	case constvars.BookingStoreDriverPostgres:
		if c.Postgres.Host == "" {
			errs = append(errs, errors.New("POSTGRES_HOST is required"))
		}
		if c.Postgres.DbName == "" {
			errs = append(errs, errors.New("POSTGRES_DB_NAME is required"))
		}
	case constvars.BookingStoreDriverMongo:
		if c.MongoDB.Host == "" {
			errs = append(errs, errors.New("MONGODB_HOST is required"))
		}
		if c.MongoDB.DbName == "" {
			errs = append(errs, errors.New("MONGODB_DB_NAME is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("BOOKING_STORE_DRIVER %q is not supported", internalConfig.Booking.StoreDriver))
	}

	switch internalConfig.Frontend.Source {
	case constvars.FrontendSourceFilesystem:
	case constvars.FrontendSourceMinio:
		if c.Minio.Host == "" {
			errs = append(errs, errors.New("MINIO_HOST is required when FRONTEND_SOURCE is minio"))
		}
	default:
		errs = append(errs, fmt.Errorf("FRONTEND_SOURCE %q is not supported", internalConfig.Frontend.Source))
	}

	return errors.Join(errs...)
}
