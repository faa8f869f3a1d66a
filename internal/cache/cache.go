package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
)

// RedisCache stores search responses for a short TTL. Besides saving
// work, it pins down the generator's randomness: re-rendering the same
// search within the TTL shows the same flights and prices.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

func (c *RedisCache) Get(ctx context.Context, req *models.SearchRequest) (*models.SearchResults, bool) {
	data, err := c.client.Get(ctx, searchKey(req)).Bytes()
	if err != nil {
		return nil, false
	}

	var results models.SearchResults
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false
	}
	return &results, true
}

func (c *RedisCache) Set(ctx context.Context, req *models.SearchRequest, results *models.SearchResults) error {
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(req), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache is the disabled-cache backend: always a miss.
type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(context.Context, *models.SearchRequest) (*models.SearchResults, bool) {
	return nil, false
}

func (c *NoOpCache) Set(context.Context, *models.SearchRequest, *models.SearchResults) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func searchKey(req *models.SearchRequest) string {
	keyData := struct {
		Origin        string
		Destination   string
		DepartureDate string
		ReturnDate    string
		TravelClass   models.TravelClass
	}{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		TravelClass:   req.TravelClass,
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "search:" + hex.EncodeToString(hash[:])
}
