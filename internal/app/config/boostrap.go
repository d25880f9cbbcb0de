package config

import (
	"context"
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries every constructed driver so main can wire them and
// close them on shutdown. Optional drivers are nil when not configured.
type Bootstrap struct {
	Router         *chi.Mux
	Postgres       *sql.DB
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// EventsStop closes the publisher channel before the connection goes away.
	EventsStop func() error
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.EventsStop != nil {
		err := b.EventsStop()
		if err != nil {
			return err
		}
		log.Println("Successfully stopped event publisher")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.Postgres != nil {
		err := b.Postgres.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing PostgreSQL")
	}

	if b.MongoDB != nil {
		err := b.MongoDB.Disconnect(ctx)
		if err != nil {
			return err
		}
		log.Println("Successfully closing MongoDB")
	}

	err := b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
