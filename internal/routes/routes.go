package routes

import (
	"net/http"

	"codetext-backend/internal/config"
	"codetext-backend/internal/handlers"
	"codetext-backend/internal/middleware"
	"codetext-backend/internal/services"
	"codetext-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// Setup builds the router. Closing done stops the rate limiter's cleanup loop.
func Setup(st store.Store, cfg *config.Config, done <-chan struct{}) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowOrigins))
	if !cfg.RateLimit.Disabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		router.Use(middleware.RateLimitMiddleware(limiter, done))
	}

	shareService := services.NewShareService(st, cfg.Share)
	shareHandler := handlers.NewShareHandler(shareService, cfg)

	api := router.Group("/api")
	{
		shares := api.Group("/shares")
		{
			shares.POST("", shareHandler.CreateShare)
			shares.GET("/:code", shareHandler.GetShare)
		}
	}

	router.GET("/shared/:code", shareHandler.GetRawShare)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"store":  cfg.Store.Driver,
		})
	})

	return router
}
