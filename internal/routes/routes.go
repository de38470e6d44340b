package routes

import (
	"net/http"

	"github.com/bbapp/bulletin-backend/internal/handler"
	"github.com/bbapp/bulletin-backend/internal/middleware"
	"github.com/bbapp/bulletin-backend/pkg/i18n"
	"github.com/bbapp/bulletin-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	bulletinHandler *handler.BulletinHandler,
	commentHandler *handler.CommentHandler,
	starHandler *handler.StarHandler,
	healthHandler *handler.HealthHandler,
	jwtManager *jwt.Manager,
	bundle *i18n.Bundle,
) {
	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1", middleware.I18n(bundle), middleware.OptionalAuth(jwtManager))
	auth := middleware.RequireAuth(jwtManager)

	bulletins := api.Group("/bulletins")
	bulletins.GET("", bulletinHandler.Index)
	bulletins.GET("/ranking", bulletinHandler.Ranking)
	bulletins.GET("/search", bulletinHandler.Search)
	bulletins.GET("/:id", bulletinHandler.View)
	bulletins.POST("", auth, bulletinHandler.Create)
	bulletins.GET("/:id/edit", auth, bulletinHandler.Edit)
	bulletins.PUT("/:id", auth, bulletinHandler.Update)
	bulletins.DELETE("/:id", auth, bulletinHandler.Delete)
	bulletins.POST("/:id/comments", auth, commentHandler.Create)

	comments := api.Group("/comments", auth)
	comments.GET("/:id", commentHandler.Edit)
	comments.PUT("/:id", commentHandler.Update)
	comments.DELETE("/:id", commentHandler.Delete)

	api.POST("/star", starHandler.Add)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
