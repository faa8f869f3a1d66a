package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Session   SessionConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	LogLevel  string
	// RandomSeed fixes the generators' randomness; zero means
	// time-seeded.
	RandomSeed int64
}

type ServerConfig struct {
	Address      string
	WriteTimeout time.Duration
	ReadTimeout  time.Duration
	IdleTimeout  time.Duration
}

type SessionConfig struct {
	// Backend is "memory" or "redis".
	Backend   string
	RedisAddr string
	RedisPass string
	RedisDB   int
	TTL       time.Duration
}

type CacheConfig struct {
	Enabled   bool
	RedisAddr string
	RedisPass string
	RedisDB   int
	TTL       time.Duration
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	serverCfg, err := newServerConfig()
	if err != nil {
		return nil, fmt.Errorf("server config error: %w", err)
	}

	sessionCfg, err := newSessionConfig()
	if err != nil {
		return nil, fmt.Errorf("session config error: %w", err)
	}

	cacheCfg, err := newCacheConfig()
	if err != nil {
		return nil, fmt.Errorf("cache config error: %w", err)
	}

	rateCfg, err := newRateLimitConfig()
	if err != nil {
		return nil, fmt.Errorf("rate limit config error: %w", err)
	}

	seed, err := strconv.ParseInt(getEnvOrDefault("RANDOM_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("random seed parse error: %w", err)
	}

	return &Config{
		Server:     serverCfg,
		Session:    sessionCfg,
		Cache:      cacheCfg,
		RateLimit:  rateCfg,
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		RandomSeed: seed,
	}, nil
}

func newServerConfig() (ServerConfig, error) {
	writeTimeout, err := getDurationFromEnv("SERVER_WRITE_TIMEOUT", "15s")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("write timeout parse error: %w", err)
	}

	readTimeout, err := getDurationFromEnv("SERVER_READ_TIMEOUT", "15s")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("read timeout parse error: %w", err)
	}

	idleTimeout, err := getDurationFromEnv("SERVER_IDLE_TIMEOUT", "30s")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("idle timeout parse error: %w", err)
	}

	return ServerConfig{
		Address:      getEnvOrDefault("SERVER_ADDRESS", ":8080"),
		WriteTimeout: writeTimeout,
		ReadTimeout:  readTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func newSessionConfig() (SessionConfig, error) {
	ttl, err := getDurationFromEnv("SESSION_TTL", "30m")
	if err != nil {
		return SessionConfig{}, fmt.Errorf("session ttl parse error: %w", err)
	}

	db, err := strconv.Atoi(getEnvOrDefault("SESSION_REDIS_DB", "0"))
	if err != nil {
		return SessionConfig{}, fmt.Errorf("session redis db parse error: %w", err)
	}

	return SessionConfig{
		Backend:   getEnvOrDefault("SESSION_BACKEND", "memory"),
		RedisAddr: getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
		RedisDB:   db,
		TTL:       ttl,
	}, nil
}

func newCacheConfig() (CacheConfig, error) {
	ttl, err := getDurationFromEnv("CACHE_TTL", "5m")
	if err != nil {
		return CacheConfig{}, fmt.Errorf("cache ttl parse error: %w", err)
	}

	db, err := strconv.Atoi(getEnvOrDefault("CACHE_REDIS_DB", "1"))
	if err != nil {
		return CacheConfig{}, fmt.Errorf("cache redis db parse error: %w", err)
	}

	return CacheConfig{
		Enabled:   getEnvOrDefault("CACHE_ENABLED", "false") == "true",
		RedisAddr: getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
		RedisDB:   db,
		TTL:       ttl,
	}, nil
}

func newRateLimitConfig() (RateLimitConfig, error) {
	rps, err := strconv.ParseFloat(getEnvOrDefault("RATE_LIMIT_RPS", "10"), 64)
	if err != nil {
		return RateLimitConfig{}, fmt.Errorf("rate limit rps parse error: %w", err)
	}

	burst, err := strconv.Atoi(getEnvOrDefault("RATE_LIMIT_BURST", "20"))
	if err != nil {
		return RateLimitConfig{}, fmt.Errorf("rate limit burst parse error: %w", err)
	}

	return RateLimitConfig{
		RequestsPerSecond: rps,
		BurstSize:         burst,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationFromEnv(key, defaultValue string) (time.Duration, error) {
	return time.ParseDuration(getEnvOrDefault(key, defaultValue))
}
