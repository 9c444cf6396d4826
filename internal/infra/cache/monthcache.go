package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss возвращается, когда значения в кэше нет
var ErrCacheMiss = errors.New("cache: miss")

const monthKeyPrefix = "scheduling:calendar"

// MonthAvailabilityCache кэширует помесячную доступность мастера в Redis.
// Значение: дата "YYYY-MM-DD" -> есть ли хотя бы один свободный слот.
// Кэш опциональный: при недоступности Redis вызывающая сторона логирует
// ошибку и считает месяц заново
type MonthAvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMonthAvailabilityCache создает кэш помесячной доступности
func NewMonthAvailabilityCache(client *redis.Client, ttl time.Duration) *MonthAvailabilityCache {
	return &MonthAvailabilityCache{client: client, ttl: ttl}
}

func monthKey(tenantID, professionalID int64, year, month int) string {
	return fmt.Sprintf("%s:%d:%d:%04d-%02d", monthKeyPrefix, tenantID, professionalID, year, month)
}

// Get возвращает доступность по дням месяца или ErrCacheMiss
func (c *MonthAvailabilityCache) Get(ctx context.Context, tenantID, professionalID int64, year, month int) (map[string]bool, error) {
	val, err := c.client.Get(ctx, monthKey(tenantID, professionalID, year, month)).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: get month availability: %w", err)
	}

	days := make(map[string]bool)
	if err := json.Unmarshal([]byte(val), &days); err != nil {
		return nil, fmt.Errorf("cache: unmarshal month availability: %w", err)
	}

	return days, nil
}

// Set сохраняет доступность по дням месяца с TTL
func (c *MonthAvailabilityCache) Set(ctx context.Context, tenantID, professionalID int64, year, month int, days map[string]bool) error {
	data, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("cache: marshal month availability: %w", err)
	}

	if err := c.client.Set(ctx, monthKey(tenantID, professionalID, year, month), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set month availability: %w", err)
	}

	return nil
}

// Invalidate сбрасывает кэш месяца мастера. Вызывается при создании
// и отмене записей, чтобы календарь не отдавал устаревшие дни
func (c *MonthAvailabilityCache) Invalidate(ctx context.Context, tenantID, professionalID int64, year, month int) error {
	if err := c.client.Del(ctx, monthKey(tenantID, professionalID, year, month)).Err(); err != nil {
		return fmt.Errorf("cache: invalidate month availability: %w", err)
	}
	return nil
}
