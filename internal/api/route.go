package api

import (
	"Pulse/internal/api/middleware"
	"Pulse/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("", group.UserHandler.SyncUser)
			userGroup.GET("", group.UserHandler.GetUser)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authGroup.POST("/avatar", group.UserHandler.UploadAvatar)
			}
		}

		apiGroup.GET("/auth/check", group.UserHandler.CheckAuth)

		apiKeyGroup := apiGroup.Group("/apikeys")
		{
			apiKeyGroup.GET("", group.APIKeyHandler.GetKeys)
			apiKeyGroup.POST("", group.APIKeyHandler.SaveKeys)
		}

		apiGroup.GET("/stats", group.StatsHandler.GetStats)
		apiGroup.GET("/posts", group.PostHandler.GetPosts)

		apiGroup.POST("/orders", group.SubscriptionHandler.CreateOrder)

		subscriptionGroup := apiGroup.Group("/subscription")
		{
			subscriptionGroup.GET("", group.SubscriptionHandler.GetActive)
			subscriptionGroup.POST("", group.SubscriptionHandler.Activate)
		}
	}

	return r
}
