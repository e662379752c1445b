package main

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"
)

// SetupRouter đăng ký toàn bộ routes và middleware
// Public surface: read-only content. Admin surface: mutations sau AuthMiddleware
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middleware - thứ tự quan trọng: recovery ngoài cùng
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(c.Config.CORS.AllowOrigin))

	// Static serving cho uploaded files
	router.Static("/uploads", c.Storage.Dir())

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", func(ctx *gin.Context) {
			if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
				ctx.JSON(503, gin.H{"status": "unhealthy"})
				return
			}
			ctx.JSON(200, gin.H{"status": "ok"})
		})

		// Public content routes - không cần auth
		api.GET("/profile", c.ProfileHandler.GetPublic)
		api.GET("/experiences", c.ExperienceHandler.ListPublic)
		api.GET("/portfolio", c.PortfolioHandler.List)
		api.GET("/blogs", c.BlogHandler.ListPublic)
		api.GET("/blogs/:slug", c.BlogHandler.GetBySlug)

		// Auth routes
		authRequired := middleware.AuthMiddleware(c.JWTManager)
		auth := api.Group("/auth")
		{
			auth.POST("/setup", c.AuthHandler.Setup)
			auth.POST("/login", c.AuthHandler.Login)
			// Recovery path có chủ đích: chạy được khi mất password, bảo vệ bằng network access
			auth.POST("/reset", c.AuthHandler.Reset)
			auth.POST("/change-password", authRequired, c.AuthHandler.ChangePassword)
		}

		// Upload - auth required
		api.POST("/upload", authRequired, c.UploadHandler.Upload)

		// Admin routes - toàn bộ sau AuthMiddleware
		admin := api.Group("/admin", authRequired)
		{
			admin.PUT("/profile", c.ProfileHandler.Update)

			admin.GET("/skills", c.SkillHandler.List)
			admin.POST("/skills", c.SkillHandler.Create)
			admin.PUT("/skills/:id", c.SkillHandler.Update)
			admin.DELETE("/skills/:id", c.SkillHandler.Delete)

			admin.GET("/services", c.OfferingHandler.List)
			admin.POST("/services", c.OfferingHandler.Create)
			admin.PUT("/services/:id", c.OfferingHandler.Update)
			admin.DELETE("/services/:id", c.OfferingHandler.Delete)

			admin.GET("/experiences", c.ExperienceHandler.ListAdmin)
			admin.POST("/experiences", c.ExperienceHandler.Create)
			admin.PUT("/experiences/:id", c.ExperienceHandler.Update)
			admin.DELETE("/experiences/:id", c.ExperienceHandler.Delete)

			admin.GET("/portfolio", c.PortfolioHandler.List)
			admin.POST("/portfolio", c.PortfolioHandler.Create)
			admin.PUT("/portfolio/:id", c.PortfolioHandler.Update)
			admin.DELETE("/portfolio/:id", c.PortfolioHandler.Delete)

			admin.GET("/blogs", c.BlogHandler.ListAdmin)
			admin.POST("/blogs", c.BlogHandler.Create)
			admin.PUT("/blogs/:id", c.BlogHandler.Update)
			admin.DELETE("/blogs/:id", c.BlogHandler.Delete)

			admin.GET("/social", c.ProfileHandler.ListSocial)
			admin.POST("/social", c.ProfileHandler.CreateSocial)
			admin.PUT("/social/:id", c.ProfileHandler.UpdateSocial)
			admin.DELETE("/social/:id", c.ProfileHandler.DeleteSocial)
		}
	}

	return router
}
