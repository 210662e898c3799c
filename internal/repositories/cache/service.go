// Package cache wraps Redis behind a small JSON-marshalling service used to
// keep hot account lookups off the database.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
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

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Account caching. Balances change only under committed transactions, so the
// writers invalidate these keys right after their unit of work commits.

func (s *CacheService) CacheAccount(ctx context.Context, account *models.Account) error {
	key := s.GenerateKey("account", "id", account.ID)
	return s.Set(ctx, key, account)
}

func (s *CacheService) GetAccount(ctx context.Context, id uint) (*models.Account, bool, error) {
	key := s.GenerateKey("account", "id", id)
	var account models.Account
	found, err := s.Get(ctx, key, &account)
	if err != nil || !found {
		return nil, false, err
	}
	return &account, true, nil
}

func (s *CacheService) InvalidateAccounts(ctx context.Context, ids ...uint) error {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, s.GenerateKey("account", "id", id))
	}
	return s.Delete(ctx, keys...)
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}
