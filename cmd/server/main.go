package main

import (
	"context"
	"os"
	"time"

	"grocery-store/internal/controllers/http"
	mmysql "grocery-store/internal/infra/mysql"
	"grocery-store/internal/infra/rabbitmq"
	"grocery-store/internal/infra/seed"
	mysqlrepo "grocery-store/internal/repository/mysql"
	"grocery-store/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("db: connect")
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := seed.Load(db); err != nil {
		logger.Fatal().Err(err).Msg("seed: load sample data")
	}

	productRepo := mysqlrepo.NewProductRepository(db)
	cartRepo := mysqlrepo.NewCartRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init publisher")
	}
	defer publisher.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     50,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	productService := services.NewProductService(productRepo)
	productService.SetRedisClient(redisClient)

	cartService := services.NewCartService(cartRepo, productRepo)
	payments := services.NewPaymentSimulator(nil)
	orderService := services.NewOrderService(orderRepo, productRepo, cartService, payments, publisher)

	go func() {
		time.Sleep(5 * time.Second)
		if err := productService.WarmupCatalogCache(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("failed to warm up catalog cache")
		} else {
			logger.Info().Msg("catalog cache warmed up")
		}
	}()

	handler := http.NewHandler(productService, cartService, orderService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info().Str("port", port).Msg("starting grocery store service")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
