package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Donadams50/TechTestMarch25/config"
	"github.com/Donadams50/TechTestMarch25/controllers"
	"github.com/Donadams50/TechTestMarch25/middleware"
	"github.com/Donadams50/TechTestMarch25/store"
	"github.com/Donadams50/TechTestMarch25/utils"
)

// SetupRouter wires middlewares, routes, and the post controller around the
// injected store.
func SetupRouter(st store.PostStore, logger *zap.Logger) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(utils.Ginzap(logger))
	r.Use(utils.RecoveryWithZap(logger))
	r.Use(middleware.ErrorHandler(logger))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	pc := controllers.NewPostController(st)

	posts := r.Group("/posts")
	posts.GET("", pc.ListPosts)
	posts.GET("/search/all", pc.SearchPosts)
	posts.GET("/:id", middleware.ValidateID(), pc.GetPost)

	mutating := posts.Group("")
	mutating.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
	mutating.POST("", pc.CreatePost)
	mutating.PUT("/:id", middleware.ValidateID(), pc.UpdatePost)
	mutating.DELETE("/:id", middleware.ValidateID(), pc.DeletePost)
	mutating.DELETE("", pc.DeletePostsByTag)

	r.NoRoute(func(ctx *gin.Context) {
		utils.WriteError(ctx, http.StatusNotFound, "Route not found")
	})

	return r
}
