package handler

import (
	"net/http"

	"gamebeats/backend/internal/auth"
	"gamebeats/backend/internal/middleware"

	"github.com/gin-gonic/gin"

	_ "gamebeats/backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{Message: "pong"})
	})

	apiV1 := router.Group("/api/v1")
	h.RegisterRoutes(apiV1)
	return router
}

// RegisterRoutes mounts the catalog API under rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	authRoutes := rg.Group("/auth")
	{
		authRoutes.POST("/login", h.Login)
	}

	gameRoutes := rg.Group("/games")
	{
		gameRoutes.GET("", h.GetGames)
		gameRoutes.GET("/search", h.SearchGames) // Must be before /:id
		gameRoutes.GET("/featured", h.GetFeaturedGames)
		gameRoutes.GET("/:id", h.GetGameByID)
		gameRoutes.GET("/:id/songs", h.GetSongsByGame)
		gameRoutes.GET("/:id/ratings", h.GetGameRatings)
		gameRoutes.GET("/:id/events", h.GameEvents)
	}

	songRoutes := rg.Group("/songs")
	{
		songRoutes.GET("/:id/ratings", h.GetSongRatings)
		songRoutes.POST("/:id/ratings", auth.OptionalAuthMiddleware(), h.RateSong)
	}

	categoryRoutes := rg.Group("/categories")
	{
		categoryRoutes.GET("", h.GetCategories)
	}

	// Catalog writes (protected by auth and admin check)
	adminRoutes := rg.Group("")
	adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
	{
		adminRoutes.POST("/games", h.CreateGame)
		adminRoutes.PATCH("/games/:id", h.UpdateGame)
		adminRoutes.DELETE("/games/:id", h.DeleteGame)
		adminRoutes.POST("/games/:id/bgg-stats", h.UpdateBGGStats)
		adminRoutes.POST("/songs", h.CreateSong)
		adminRoutes.POST("/categories", h.CreateCategory)
	}
}
