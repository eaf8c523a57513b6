package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/flightconnections/internal/itinerary"
	"github.com/dharmasatrya/flightconnections/internal/models"
)

type Cache interface {
	Get(ctx context.Context, req models.SearchRequest) ([]itinerary.Summary, bool)
	Set(ctx context.Context, req models.SearchRequest, itineraries []itinerary.Summary) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, req models.SearchRequest) ([]itinerary.Summary, bool) {
	key := generateKey(req)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var itineraries []itinerary.Summary
	if err := json.Unmarshal(data, &itineraries); err != nil {
		return nil, false
	}

	return itineraries, true
}

func (c *RedisCache) Set(ctx context.Context, req models.SearchRequest, itineraries []itinerary.Summary) error {
	key := generateKey(req)

	data, err := json.Marshal(itineraries)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// MemoryCache is the local fallback when no Redis is available. Entries are
// evicted by size and by TTL.
type MemoryCache struct {
	entries *expirable.LRU[string, []itinerary.Summary]
}

func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: expirable.NewLRU[string, []itinerary.Summary](size, nil, ttl),
	}
}

func (c *MemoryCache) Get(ctx context.Context, req models.SearchRequest) ([]itinerary.Summary, bool) {
	return c.entries.Get(generateKey(req))
}

func (c *MemoryCache) Set(ctx context.Context, req models.SearchRequest, itineraries []itinerary.Summary) error {
	c.entries.Add(generateKey(req), itineraries)
	return nil
}

func (c *MemoryCache) Close() error {
	return nil
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, req models.SearchRequest) ([]itinerary.Summary, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, req models.SearchRequest, itineraries []itinerary.Summary) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// generateKey hashes the canonical query. Airport codes are upper-cased so a
// lower-case request hits the same entry; the return flag stays out of the
// key because round trips bypass the cache.
func generateKey(req models.SearchRequest) string {
	keyData := struct {
		Origin      string
		Destination string
		Bags        int
	}{
		Origin:      strings.ToUpper(req.Origin),
		Destination: strings.ToUpper(req.Destination),
		Bags:        req.Bags,
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "connections:" + hex.EncodeToString(hash[:])
}
