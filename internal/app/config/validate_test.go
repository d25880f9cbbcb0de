package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: Postgres{Host: "localhost", DbName: "bookings"},
		Supabase: Supabase{
			URL:            "https://project.supabase.co",
			AnonKey:        "anon",
			ServiceRoleKey: "service",
		},
	}
}

func validInternalConfig() *InternalConfig {
	return &InternalConfig{
		Booking:  AppBooking{StoreDriver: "postgres"},
		Frontend: AppFrontend{Source: "filesystem"},
	}
}

func TestDriverConfigValidate(t *testing.T) {
	t.Run("Complete Configuration", func(t *testing.T) {
		assert.NoError(t, validDriverConfig().Validate(validInternalConfig()))
	})

	t.Run("Missing Identity Provider Settings", func(t *testing.T) {
		driverConfig := validDriverConfig()
		driverConfig.Supabase = Supabase{}

		err := driverConfig.Validate(validInternalConfig())

		assert.ErrorContains(t, err, "SUPABASE_URL")
		assert.ErrorContains(t, err, "SUPABASE_ANON_KEY")
		assert.ErrorContains(t, err, "SUPABASE_SERVICE_ROLE_KEY")
	})

	t.Run("Missing Store Settings", func(t *testing.T) {
		driverConfig := validDriverConfig()
		driverConfig.Postgres = Postgres{}

		err := driverConfig.Validate(validInternalConfig())

		assert.ErrorContains(t, err, "POSTGRES_HOST")
	})

	t.Run("Mongo Store Needs Mongo Settings", func(t *testing.T) {
		internalConfig := validInternalConfig()
		internalConfig.Booking.StoreDriver = "mongo"

		err := validDriverConfig().Validate(internalConfig)

		assert.ErrorContains(t, err, "MONGODB_HOST")
	})

	t.Run("Unknown Store Driver", func(t *testing.T) {
		internalConfig := validInternalConfig()
		internalConfig.Booking.StoreDriver = "sqlite"

		assert.Error(t, validDriverConfig().Validate(internalConfig))
	})

	t.Run("Minio Frontend Needs Host", func(t *testing.T) {
		internalConfig := validInternalConfig()
		internalConfig.Frontend.Source = "minio"

		assert.ErrorContains(t, validDriverConfig().Validate(internalConfig), "MINIO_HOST")
	})
}
