package api

import (
	"PulseOS/internal/api/middleware"
	"PulseOS/internal/pkg/logger"
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

		apiGroup.GET("/today", group.TodayHandler.GetToday)

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.PATCH("/:id", group.PostHandler.Patch)
		}

		convGroup := apiGroup.Group("/conversations")
		{
			convGroup.PATCH("/:id", group.ConversationHandler.UpdateReply)
			convGroup.POST("/:id/status", group.ConversationHandler.UpdateStatus)
			convGroup.POST("/:id/generate", group.ConversationHandler.Generate)
		}

		skillGroup := apiGroup.Group("/skills")
		{
			skillGroup.GET("", group.SkillHandler.GetSkills)
			skillGroup.GET("/:slug", group.SkillHandler.GetSkill)
			skillGroup.PATCH("/:slug", group.SkillHandler.UpdateConfig)
		}

		creatorGroup := apiGroup.Group("/creators")
		{
			creatorGroup.GET("", group.CreatorHandler.List)
			creatorGroup.POST("/run", group.CreatorHandler.Run)
			creatorGroup.GET("/:handle", group.CreatorHandler.Get)
			creatorGroup.DELETE("/:handle", group.CreatorHandler.Delete)
			creatorGroup.PATCH("/:handle/status", group.CreatorHandler.UpdateStatus)
		}
	}

	return r
}
