package database

import (
	"booking-service/internal/app/config"
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when REDIS_HOST is empty; owner emails are then
// looked up without a cache.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	if driverConfig.Redis.Host == "" {
		log.Println("Redis is not configured, identity cache disabled")
		return nil
	}

	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}

	log.Println("Successfully connected to redis")
	return rdb
}
