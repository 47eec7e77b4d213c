package redis

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to addr. An empty addr or an unreachable server yields
// a nil client and no error: the move cache is optional.
func InitRedis(addr, password string) (*redis.Client, error) {
	if addr == "" {
		log.Println("[REDIS] REDIS_URL not set, move cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] Warning: Could not connect to Redis: %v. Searching without a move cache.", err)
		client.Close()
		return nil, nil
	}

	log.Println("[REDIS] Connected successfully")
	return client, nil
}

// MoveCache stores decided moves in Redis for bot.Engine.
type MoveCache struct {
	client *redis.Client
}

func NewMoveCache(client *redis.Client) *MoveCache {
	return &MoveCache{client: client}
}

// Set stores a key-value pair with expiration
func (r *MoveCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key. A missing key is reported as "" with no
// error.
func (r *MoveCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (r *MoveCache) Close() error {
	return r.client.Close()
}
