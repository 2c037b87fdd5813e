package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/webfolio/portfolio-api/handlers"
	"github.com/webfolio/portfolio-api/internal/accounts"
	"github.com/webfolio/portfolio-api/internal/config"
	"github.com/webfolio/portfolio-api/internal/database"
	"github.com/webfolio/portfolio-api/internal/documents"
	"github.com/webfolio/portfolio-api/pkg/logger"
	"github.com/webfolio/portfolio-api/pkg/metrics"
	"github.com/webfolio/portfolio-api/pkg/middleware"
)

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v jwt_secret_set=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.JWT.Secret != "")

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-account when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	handlers.RegisterStatus(r)

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(cfg.MongoDB.Database)

	accountRepo := accounts.NewMongoAccountRepository(db.Collection("users"))
	accountSvc := accounts.NewService(cfg, accountRepo)

	projectSvc := documents.NewService(documents.NewMongoRepo(db.Collection("projects")))
	blogSvc := documents.NewService(documents.NewMongoRepo(db.Collection("blogs")))
	contactSvc := documents.NewService(documents.NewMongoRepo(db.Collection("contact")))

	api := r.Group("/api/v1")
	handlers.NewAuthHandler(accountSvc).Register(api)

	// Mutating project/blog routes can be put behind bearer-token verification.
	// Off by default: the original backend issued tokens but never checked them.
	var guard []gin.HandlerFunc
	if cfg.Auth.ProtectRoutes {
		guard = append(guard, middleware.AuthMiddleware(cfg.JWT.Secret))
		logger.Infof("bearer-token enforcement enabled on mutating routes")
	}
	handlers.NewProjects(projectSvc).Register(api, guard...)
	handlers.NewBlogs(blogSvc).Register(api, guard...)
	handlers.NewMessages(contactSvc).Register(api)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting portfolio API on %s", addr)
	srv := &http.Server{Addr: addr, Handler: r}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server failed: %v", err)
	}
}
