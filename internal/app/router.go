package app

import (
	"github.com/Lucifer-0905/ignitiaLearn/docs"
	"github.com/Lucifer-0905/ignitiaLearn/internal/config"
	"github.com/Lucifer-0905/ignitiaLearn/internal/middleware"
	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/monitoring"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerLearnerRoutes(router, c, repos, cfg)
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// Catalog browsing is open to guests.
		public.GET("/courses", c.course.ListCourses)
		public.GET("/courses/:id", c.course.GetCourse)
		public.GET("/learning-paths", c.learningPath.ListPaths)
		public.GET("/learning-paths/:id", c.learningPath.GetPath)
		public.GET("/projects", c.project.ListProjects)
		public.GET("/projects/:id", c.project.GetProject)
	}
}

// registerLearnerRoutes covers per-user features. A valid token binds
// them to that account; anonymous requests use the shared demo
// profile.
func (a *App) registerLearnerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	learner := router.Group("/api")
	learner.Use(middleware.TryAuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		assessment := learner.Group("/assessment")
		{
			assessment.GET("", c.assessment.GetQuestions)
			assessment.GET("/questions", c.assessment.GetQuestions)
			assessment.POST("/results", c.assessment.SaveResult)
			assessment.GET("/results", c.assessment.GetResults)

			sessions := assessment.Group("/sessions")
			{
				sessions.POST("", c.assessment.CreateSession)
				sessions.GET("/:id", c.assessment.GetSession)
				sessions.POST("/:id/select", c.assessment.SelectAnswer)
				sessions.POST("/:id/submit", c.assessment.SubmitAnswer)
				sessions.POST("/:id/advance", c.assessment.AdvanceSession)
				sessions.GET("/:id/result", c.assessment.SessionResult)
				sessions.POST("/:id/recommendation", c.assessment.SessionRecommendation)
				sessions.DELETE("/:id", c.assessment.DeleteSession)
			}
		}

		learner.GET("/progress", c.progress.ListProgress)
		learner.GET("/progress/:courseId", c.progress.GetCourseProgress)
		learner.POST("/progress/:courseId", c.progress.UpdateProgress)

		learner.GET("/analytics", c.analytics.GetAnalytics)

		learner.GET("/preferences", c.preferences.GetPreferences)
		learner.POST("/preferences", c.preferences.SavePreferences)

		learner.POST("/ai/recommend-path", c.ai.RecommendPath)
		learner.POST("/ai/generate-project", c.ai.GenerateProject)
	}

	authed := router.Group("/api/auth")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/user", c.auth.GetUser)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/courses/:id/thumbnail", c.course.UploadThumbnail)
	}
}
