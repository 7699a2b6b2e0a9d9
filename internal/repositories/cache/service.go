package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"walletdesk/internal/models"

	"github.com/redis/go-redis/v9"
)

// Service wraps a redis client with JSON marshalling and a default TTL.
type Service struct {
	client *redis.Client
	ttl    time.Duration
}

// NewService builds a cache service with the given default TTL.
func NewService(client *redis.Client, defaultTTL time.Duration) *Service {
	return &Service{
		client: client,
		ttl:    defaultTTL,
	}
}

// Set stores a value under key with the default TTL.
func (s *Service) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

// SetWithTTL stores a value under key with an explicit TTL.
func (s *Service) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Get loads a value into dest; the bool reports whether the key existed.
func (s *Service) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

// Delete removes the given keys.
func (s *Service) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// GenerateKey builds a namespaced cache key.
func (s *Service) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// CacheWallet stores a wallet keyed by its id.
func (s *Service) CacheWallet(ctx context.Context, wallet *models.Wallet) error {
	key := s.GenerateKey("wallet", "id", wallet.ID)
	return s.Set(ctx, key, wallet)
}

// GetWallet loads a wallet by id; nil without error on a cache miss.
func (s *Service) GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error) {
	key := s.GenerateKey("wallet", "id", walletID)
	var wallet models.Wallet
	found, err := s.Get(ctx, key, &wallet)
	if err != nil || !found {
		return nil, err
	}
	return &wallet, nil
}

// InvalidateWallet drops the cached copy of the given wallet.
func (s *Service) InvalidateWallet(ctx context.Context, walletID uint) error {
	return s.Delete(ctx, s.GenerateKey("wallet", "id", walletID))
}

// FlushAll flushes all keys from the cache.
func (s *Service) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// HealthCheck pings the cache backend.
func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// Close closes the redis client connection.
func (s *Service) Close() error {
	return s.client.Close()
}
