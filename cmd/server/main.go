package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/flightconnections/internal/cache"
	"github.com/dharmasatrya/flightconnections/internal/config"
	"github.com/dharmasatrya/flightconnections/internal/dataset"
	"github.com/dharmasatrya/flightconnections/internal/handler"
	"github.com/dharmasatrya/flightconnections/internal/ratelimit"
	"github.com/dharmasatrya/flightconnections/internal/search"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the yaml config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	index, err := dataset.LoadFile(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("Failed to load flight dataset: %v", err)
	}
	log.Printf("Loaded flight dataset %s (%d airports, %d flights)",
		cfg.Dataset.Path, index.Airports(), index.Flights())

	service := search.New(index)

	resultCache := buildCache(cfg.Cache)
	defer resultCache.Close()

	limiter := ratelimit.NewClientLimiter(ratelimit.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
	})

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(ratelimit.Middleware(limiter))

	searchHandler := handler.NewSearchHandler(service, resultCache)

	api := e.Group("/api/v1")
	api.POST("/connections/search", searchHandler.Search)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting connection search server on port %d", cfg.Server.Port)

	if err := e.Start(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func buildCache(cfg config.CacheConfig) cache.Cache {
	switch cfg.Backend {
	case "redis":
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.TTLDuration(),
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.TTLDuration())
		return redisCache
	case "memory":
		log.Printf("In-memory cache enabled (size: %d, TTL: %v)", cfg.Size, cfg.TTLDuration())
		return cache.NewMemoryCache(cfg.Size, cfg.TTLDuration())
	default:
		log.Println("Cache disabled")
		return cache.NewNoOpCache()
	}
}
