package utils

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/royalhouse/fellowship-backend/config"
)

var RedisClient *redis.Client

// InitRedis connects the Redis client backing the site content store.
func InitRedis(cfg *config.Config) error {
	addr := cfg.RedisAddr
	if addr == "" {
		addr = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := RedisClient.Ping(ctx).Err(); err != nil {
		return err
	}

	log.Println("✅ Redis connected:", addr)
	return nil
}

// GetRedisClient returns the shared Redis client instance
func GetRedisClient() *redis.Client {
	return RedisClient
}
