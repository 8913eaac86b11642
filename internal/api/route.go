package api

import (
	"PetOps/internal/api/middleware"
	"PetOps/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger
	r.Use(middleware.TraceMiddleware())
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

		apiGroup.POST("/webhook", group.PublishHandler.Webhook)
		apiGroup.POST("/publish", group.PublishHandler.Publish)
		apiGroup.POST("/generate", group.PublishHandler.Generate)

		apiGroup.GET("/report", group.ReportHandler.Report)
		apiGroup.GET("/statistics", group.ReportHandler.Statistics)
		apiGroup.GET("/summary/:date", group.ReportHandler.Summary)
	}

	return r
}
