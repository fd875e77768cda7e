package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	configs "github.com/Payphone-Digital/catalog/config"
	"github.com/Payphone-Digital/catalog/internal/handler"
	"github.com/Payphone-Digital/catalog/internal/middleware"
	"github.com/Payphone-Digital/catalog/internal/model"
	"github.com/Payphone-Digital/catalog/internal/repository"
	"github.com/Payphone-Digital/catalog/internal/router"
	"github.com/Payphone-Digital/catalog/internal/service"
	"github.com/Payphone-Digital/catalog/pkg/database"
	"github.com/Payphone-Digital/catalog/pkg/logger"
	"github.com/Payphone-Digital/catalog/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize Zap logger
	if err := logger.InitLogger(config.App.Environment); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
		zap.String("version", "1.0.0"),
	)

	// Initialize database with standardized pattern
	db, err := database.NewPostgresDB(config.DatabaseConnectionString())
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Run auto migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	// Seed initial data
	if err := database.Seed(db); err != nil {
		logger.GetLogger().Error("Failed to seed database", zap.Error(err))
		// Don't fail - seed data may already exist
	} else {
		logger.GetLogger().Info("Database seeded successfully")
	}

	// Repositories
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize Redis client
	redisClient, err := redis.NewClient(redis.Config{
		Host:         config.Redis.Host,
		Port:         config.Redis.Port,
		Password:     config.Redis.Password,
		DB:           config.Redis.Database,
		PoolSize:     config.Redis.PoolSize,
		MinIdleConns: config.Redis.MinIdleConns,
		DialTimeout:  config.Redis.DialTimeout,
		ReadTimeout:  config.Redis.ReadTimeout,
		WriteTimeout: config.Redis.WriteTimeout,
	})
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Services
	jwtService := service.NewJWTService(config.JWT.Secret, config.JWT.ExpirationTime)
	userService := service.NewUserService(userRepo, jwtService)
	productService := service.NewProductService(productRepo, config.Pagination.DefaultPageSize)
	customerService := service.NewCustomerService(customerRepo, config.Pagination.DefaultPageSize)

	// Handlers
	productHandler := handler.NewProductHandler(productService)
	customerHandler := handler.NewCustomerHandler(customerService)
	authHandler := handler.NewAuthHandler(userService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Initialize middleware
	jwtMiddleware := middleware.NewJWTMiddleware(jwtService)
	rateLimiter := middleware.NewRateLimiter(
		redisClient,
		config.RateLimit.Request,
		time.Duration(config.RateLimit.Duration)*time.Second,
	)

	r := router.NewRouter(
		productHandler,
		customerHandler,
		authHandler,
		healthHandler,

		jwtMiddleware,
		rateLimiter,
	).SetupRoutes()

	logger.GetLogger().Info("Catalog whitelists registered",
		zap.Strings("product_filterable", model.ProductFilterable),
		zap.Strings("customer_filterable", model.CustomerFilterable),
	)

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
