package app

import (
	"adaptive_edu_backend/docs"
	"adaptive_edu_backend/internal/config"
	"adaptive_edu_backend/internal/middleware"
	"adaptive_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// lesson and section content
		authGroup.GET("/lessons", c.content.ListLessons)
		authGroup.GET("/lessons/:id", c.content.GetLesson)
		authGroup.GET("/sections/:id", c.content.GetSection)
		authGroup.GET("/sections/:id/reminders/:level", c.content.GetReminders)
		authGroup.GET("/sections/:id/exercises/:level", c.content.GetExercises)

		// grading and adaptive routing
		authGroup.POST("/diagnostics/:id", c.submission.SubmitDiagnostic)
		authGroup.POST("/exercises/:id", c.submission.SubmitExercise)
		authGroup.GET("/sections/:id/progress", c.submission.GetSectionProgress)
	}
}
