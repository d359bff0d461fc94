package routes

import (
	adminapi "publications-app/internal/api/admin"
	authapi "publications-app/internal/api/auth"
	bookmarksapi "publications-app/internal/api/bookmarks"
	publicationsapi "publications-app/internal/api/publications"
	ratingsapi "publications-app/internal/api/ratings"
	referencesapi "publications-app/internal/api/references"
	usersapi "publications-app/internal/api/users"
	"publications-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	// reads are public, but a bearer token lets authors see their drafts
	read := public.Group("/")
	read.Use(middleware.OptionalAuthMiddleware())
	read.GET("/publications", publicationsapi.ListPublications)
	read.GET("/publications/:id", publicationsapi.GetPublication)
	read.GET("/publications/:id/reference", referencesapi.List)
	read.GET("/users/:id", usersapi.GetUserProfile)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.SanitizeAndCleanInputMiddleware(), middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)

	auth.POST("/publications", publicationsapi.CreatePublication)
	auth.PATCH("/publications/:id", publicationsapi.UpdatePublication)
	auth.DELETE("/publications/:id", publicationsapi.DeletePublication)
	auth.PUT("/publications/:id/status/:status", publicationsapi.UpdateStatus)

	auth.PUT("/publications/:id/reference", referencesapi.UpdateAll)
	auth.POST("/publications/:id/reference/parse", referencesapi.Parse)

	auth.POST("/publications/:id/link", publicationsapi.CreateLink)
	auth.DELETE("/publications/:id/link/:linkId", publicationsapi.DeleteLink)

	auth.POST("/publications/:id/coauthor", publicationsapi.CreateCoAuthor)
	auth.DELETE("/publications/:id/coauthor/:userId", publicationsapi.RemoveCoAuthor)

	auth.POST("/publications/:id/bookmark", bookmarksapi.Create)
	auth.DELETE("/publications/:id/bookmark", bookmarksapi.Remove)
	auth.GET("/bookmarks", bookmarksapi.List)

	auth.POST("/publications/:id/rating", ratingsapi.Create)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
}
