package app

import (
	"elearn_backend/docs"
	"elearn_backend/internal/config"
	"elearn_backend/internal/middleware"
	"elearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", c.auth.Signup)
			auth.POST("/login", c.auth.Login)
			auth.GET("/me", middleware.AuthMiddleware(cfg, repos.user), c.auth.Me)
		}

		// Catalog reads allow anonymous callers; identity, when presented,
		// enriches the payload with the caller's completion state.
		courses := api.Group("/courses")
		courses.Use(middleware.TryAuthMiddleware(cfg, repos.user))
		{
			courses.GET("", c.course.ListCourses)
			courses.GET("/:id", c.course.GetCourse)
		}

		protected := api.Group("/courses")
		protected.Use(middleware.AuthMiddleware(cfg, repos.user))
		{
			protected.POST("/:id/enroll", c.course.Enroll)
			protected.POST("/:id/modules/:moduleIndex/complete", c.course.CompleteModule)
			protected.GET("/:id/progress", c.course.GetProgress)
			protected.POST("/:id/complete", c.course.MarkComplete)
			protected.GET("/:id/completion-status", c.course.CompletionStatus)
		}

		user := api.Group("/user")
		user.Use(middleware.AuthMiddleware(cfg, repos.user))
		{
			user.POST("/avatar/upload", c.user.UploadAvatar)
		}
	}
}
