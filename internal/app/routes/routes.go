// Package routes wires controllers to URL paths.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pradeep/vidyapith/internal/app/controllers"
	"github.com/pradeep/vidyapith/internal/app/models"
	"github.com/pradeep/vidyapith/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	submissionController *controllers.SubmissionController,
	contactController *controllers.ContactController,
	pagesController *controllers.PagesController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Public informational pages live at the root
	router.GET("/", pagesController.Home)
	router.GET("/about", pagesController.About)
	router.GET("/achievements", pagesController.Achievements)

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public contact form
	v1.POST("/contact", contactController.Send)

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Authenticated routes
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		authenticated.GET("/details", submissionController.GetDetails)
		authenticated.POST("/details", submissionController.Submit)

		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/submissions", adminController.ListSubmissions)
		}
	}
}
