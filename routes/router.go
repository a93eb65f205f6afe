package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bluecotton/board/config"
	"github.com/bluecotton/board/controllers"
	"github.com/bluecotton/board/middleware"
	"github.com/bluecotton/board/repository"
	"github.com/bluecotton/board/services"
	"github.com/bluecotton/board/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
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
	// Replace the default console logger with a file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.OK(ctx, "ok", gin.H{"status": "ok"})
	})

	postService := services.NewPostService(repository.NewPostRepository(db))
	privateController := controllers.NewPostPrivateController(postService)
	publicController := controllers.NewPostPublicController(postService)

	registerRoutes(r, privateController, publicController)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, "route not found")
	})

	return r
}

// registerRoutes attaches the board endpoints to the engine.
func registerRoutes(r *gin.Engine, priv *controllers.PostPrivateController, pub *controllers.PostPublicController) {
	private := r.Group("/private/post")
	private.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())
	private.POST("/write", priv.WritePost)
	private.GET("/categories", priv.GetJoinedCategories)
	private.DELETE("/withdraw", priv.WithdrawPost)
	private.POST("/draft", priv.DraftPost)
	private.GET("/draft/:id", priv.GetDraft)
	private.DELETE("/draft/delete", priv.DeleteDraft)
	private.GET("/modify/:id", priv.GetPostForModify)
	private.PUT("/modify/:id", priv.ModifyPost)
	private.POST("/comment", priv.InsertComment)
	private.POST("/reply", priv.InsertReply)
	private.DELETE("/comment/:commentId", priv.DeleteComment)
	private.DELETE("/reply/:replyId", priv.DeleteReply)
	private.POST("/like/toggle", priv.ToggleLike)
	private.POST("/comment/like/toggle", priv.ToggleCommentLike)
	private.POST("/reply/like/toggle", priv.ToggleReplyLike)
	private.POST("/recent/:postId", priv.RecentPost)
	private.POST("/report/post", priv.ReportPost)
	private.POST("/report/comment", priv.ReportComment)
	private.POST("/report/reply", priv.ReportReply)

	public := r.Group("/main/post")
	public.Use(middleware.OptionalAuth())
	public.GET("/all", pub.GetAllPosts)
	public.GET("/:id", pub.GetPost)
}
