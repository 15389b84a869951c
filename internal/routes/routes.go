package routes

import (
	"github.com/bookie/bookie_server/internal/config"
	"github.com/bookie/bookie_server/internal/controllers"
	"github.com/bookie/bookie_server/internal/middlewares"
	"github.com/bookie/bookie_server/internal/repository"
	"github.com/bookie/bookie_server/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// サービスを作成
	authService := services.NewAuthService(userRepo, cfg)
	bookmarkService := services.NewBookmarkService(bookmarkRepo, tagRepo)
	tagService := services.NewTagService(tagRepo)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService)
	bookmarkController := controllers.NewBookmarkController(bookmarkService)
	tagController := controllers.NewTagController(tagService)
	healthController := controllers.NewHealthController(db)

	// 認証ミドルウェア
	authMiddleware := middlewares.AuthMiddleware(authService)

	// APIグループを作成
	api := r.Group("/api/v1")
	{
		// ヘルスチェックルート（認証不要）
		api.GET("/health", healthController.Check)

		// 認証ルート
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", authMiddleware, authController.GetMe)
		}

		// ブックマークルート
		bookmarks := api.Group("/bookmarks")
		{
			// 認証不要
			bookmarks.GET("", bookmarkController.List)
			bookmarks.GET("/:id", bookmarkController.GetByID)

			// 認証が必要
			bookmarks.POST("", authMiddleware, bookmarkController.Create)
			bookmarks.PUT("/:id", authMiddleware, bookmarkController.Update)
			bookmarks.DELETE("/:id", authMiddleware, bookmarkController.Delete)
		}

		// タグルート
		tags := api.Group("/tags")
		{
			tags.GET("", tagController.List)
			tags.GET("/:id", tagController.GetByID)
			tags.GET("/:id/bookmarks", tagController.ListBookmarks)
			tags.POST("", authMiddleware, tagController.Create)
			tags.DELETE("/:id", authMiddleware, tagController.Delete)
		}
	}

	return r
}
