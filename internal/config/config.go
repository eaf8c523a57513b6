package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

type DatasetConfig struct {
	Path string `yaml:"path" validate:"required"`
}

type CacheConfig struct {
	Backend   string `yaml:"backend" validate:"oneof=redis memory off"`
	RedisHost string `yaml:"redisHost"`
	RedisPort string `yaml:"redisPort"`
	TTL       string `yaml:"ttl"`
	Size      int    `yaml:"size" validate:"gte=0"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond" validate:"gt=0"`
	BurstSize         int     `yaml:"burstSize" validate:"gt=0"`
}

type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
}

// TTLDuration parses the cache TTL, falling back to five minutes when the
// value is absent or malformed.
func (c CacheConfig) TTLDuration() time.Duration {
	if c.TTL == "" {
		return 5 * time.Minute
	}
	ttl, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 5 * time.Minute
	}
	return ttl
}

func Defaults() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: 8080},
		Cache: CacheConfig{
			Backend:   "memory",
			RedisHost: "localhost",
			RedisPort: "6379",
			TTL:       "5m",
			Size:      128,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			BurstSize:         20,
		},
	}
}

// Load reads the yaml config file if it exists, applies environment
// overrides on top and validates the result. A missing file is fine as long
// as the environment supplies the dataset path.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return AppConfig{}, err
	}

	applyEnv(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	cfg.Server.Port = getEnvInt("PORT", cfg.Server.Port)
	cfg.Dataset.Path = getEnv("DATASET_PATH", cfg.Dataset.Path)
	cfg.Cache.Backend = getEnv("CACHE_BACKEND", cfg.Cache.Backend)
	cfg.Cache.RedisHost = getEnv("REDIS_HOST", cfg.Cache.RedisHost)
	cfg.Cache.RedisPort = getEnv("REDIS_PORT", cfg.Cache.RedisPort)
	cfg.Cache.TTL = getEnv("CACHE_TTL", cfg.Cache.TTL)
	cfg.Cache.Size = getEnvInt("CACHE_SIZE", cfg.Cache.Size)
	cfg.RateLimit.RequestsPerSecond = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimit.RequestsPerSecond)
	cfg.RateLimit.BurstSize = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimit.BurstSize)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
