package router

import (
	"github.com/ipsum-store/internal/config"
	"github.com/ipsum-store/internal/http/handlers/api"
	"github.com/ipsum-store/internal/logger"
	"github.com/ipsum-store/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := api.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 认证
	r.POST("/auth/token", handler.CreateToken)

	// 用户
	users := r.Group("/users")
	{
		users.GET("", AuthGuardMiddleware(c.AuthService), handler.ListUsers)
		users.POST("", handler.CreateUser)
		users.GET("/:id", handler.GetUser)
		users.PATCH("/:id", handler.PatchUser)
		users.DELETE("/:id", handler.DeleteUser)
	}

	// 地址
	addresses := r.Group("/addresses")
	{
		addresses.GET("", handler.ListAddresses)
		addresses.POST("", handler.CreateAddress)
		addresses.GET("/:id", handler.GetAddress)
		addresses.PATCH("/:id", handler.PatchAddress)
		addresses.DELETE("/:id", handler.DeleteAddress)
	}

	// 商品
	products := r.Group("/products")
	{
		products.GET("", handler.ListProducts)
		products.POST("", handler.CreateProduct)
		products.GET("/:id", handler.GetProduct)
		products.PATCH("/:id", handler.PatchProduct)
		products.DELETE("/:id", handler.DeleteProduct)
	}

	// 商品规格
	options := r.Group("/options")
	{
		options.GET("", handler.ListProductOptions)
		options.POST("", handler.CreateProductOption)
		options.GET("/:id", handler.GetProductOption)
		options.PATCH("/:id", handler.PatchProductOption)
		options.DELETE("/:id", handler.DeleteProductOption)
	}

	// 分类
	categories := r.Group("/categories")
	{
		categories.GET("", handler.ListCategories)
		categories.POST("", handler.CreateCategory)
		categories.GET("/:id", handler.GetCategory)
		categories.PATCH("/:id", handler.PatchCategory)
		categories.DELETE("/:id", handler.DeleteCategory)
	}

	// 购物车
	carts := r.Group("/carts")
	{
		carts.GET("", handler.ListCartItems)
		carts.POST("", handler.CreateCartItem)
		carts.GET("/:id", handler.GetCartItem)
		carts.PATCH("/:id", handler.PatchCartItem)
		carts.DELETE("/:id", handler.DeleteCartItem)
	}

	// 健康检查
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
