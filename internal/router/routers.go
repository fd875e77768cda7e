package router

import (
	"github.com/Payphone-Digital/catalog/internal/handler"
	"github.com/Payphone-Digital/catalog/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	productHandler  *handler.ProductHandler
	customerHandler *handler.CustomerHandler
	authHandler     *handler.AuthHandler
	healthHandler   *handler.HealthHandler

	jwtMw       *middleware.JWTMiddleware
	rateLimiter *middleware.RateLimiter
}

func NewRouter(
	product *handler.ProductHandler,
	customer *handler.CustomerHandler,
	auth *handler.AuthHandler,
	health *handler.HealthHandler,

	jwtMw *middleware.JWTMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		productHandler:  product,
		customerHandler: customer,
		authHandler:     auth,
		healthHandler:   health,

		jwtMw:       jwtMw,
		rateLimiter: rateLimiter,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	// Create Gin router
	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestContextMiddleware())
	router.Use(middleware.CORS())

	router.GET("/health", r.healthHandler.BasicHealth)

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.HealthCheck)

		v1 := api.Group("/v1")
		{
			v1.Use(r.rateLimiter.Limit())

			r.authRoutes(v1)
			r.productRoutes(v1)
			r.customerRoutes(v1)
		}
	}

	return router
}
