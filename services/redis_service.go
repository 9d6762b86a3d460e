package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"jpep-http-service/config"
)

// InterfaceRedisService defines the Redis-backed helpers used by the
// rate limiter and any future cache
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	IncrWithTTL(key string, ttl time.Duration) (int64, error)
	TTL(key string) (time.Duration, error)
	Ping() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set stores a JSON-encoded value with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get retrieves and JSON-decodes a value
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete removes a key
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// IncrWithTTL increments a counter, attaching the TTL on first increment.
// This is the rate limiter's window primitive.
func (s *RedisService) IncrWithTTL(key string, ttl time.Duration) (int64, error) {
	count, err := s.Client.Incr(s.Ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := s.Client.Expire(s.Ctx, key, ttl).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// TTL reports the remaining lifetime of a key
func (s *RedisService) TTL(key string) (time.Duration, error) {
	return s.Client.TTL(s.Ctx, key).Result()
}

// Ping checks the connection
func (s *RedisService) Ping() error {
	return s.Client.Ping(s.Ctx).Err()
}
