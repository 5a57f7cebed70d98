package router

import (
	"time"

	"tierless/internal/auth"
	"tierless/internal/menu"
	"tierless/internal/middleware"
	"tierless/internal/page"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	authHandler *auth.Handler,
	menuHandler *menu.Handler,
	pageHandler *page.Handler,
) *gin.Engine {

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── PAGES ─────────────────────────
	pages := r.Group("/pages")
	pages.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleMerchant),
	)
	{
		pages.POST("", pageHandler.Create)
		pages.GET("/me", pageHandler.ListMine)
		pages.POST("/:id/publish", pageHandler.Publish)
		pages.POST("/:id/unpublish", pageHandler.Unpublish)
	}

	// ───────────────────────── MENUS ─────────────────────────
	menus := r.Group("/menus")
	menus.Use(middleware.AuthMiddleware())
	{
		menus.POST("/upload", menuHandler.Upload)
		menus.GET("/:page_id/status", menuHandler.GetStatus)
		menus.POST("/:page_id/retry", menuHandler.Retry)
		menus.GET("/:page_id/items", menuHandler.ListItems)
	}

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/p/:slug", pageHandler.PublicRender)

	return r
}
