package router

import (
	"fmt"
	"strings"

	"github.com/mocnhien/storefront/internal/cache"
	"github.com/mocnhien/storefront/internal/config"
	"github.com/mocnhien/storefront/internal/constants"
	publichandlers "github.com/mocnhien/storefront/internal/http/handlers/public"
	"github.com/mocnhien/storefront/internal/logger"
	"github.com/mocnhien/storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the storefront HTTP engine.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.CheckoutRateLimit.BlockSeconds,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Static product images.
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// Catalog, open to everyone.
		catalog := apiV1.Group("/public")
		{
			catalog.GET("/products", publicHandler.GetProducts)
			catalog.GET("/products/:slug", publicHandler.GetProductBySlug)
			catalog.GET("/categories", publicHandler.GetCategories)
			catalog.GET("/categories/:slug", publicHandler.GetCategoryBySlug)
			catalog.GET("/captcha/image", publicHandler.GetImageCaptcha)
		}

		// Cart and checkout, keyed by the cart session. Logged-in
		// customers get the order attached to their account.
		cart := apiV1.Group("/cart")
		cart.Use(
			CartSessionMiddleware(cfg.Cart.TTLDays),
			OptionalUserJWTMiddleware(cfg.JWT.SecretKey, c.UserRepo),
		)
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items", publicHandler.UpdateCartItem)
			cart.POST("/items/increase", publicHandler.IncreaseCartItem)
			cart.POST("/items/decrease", publicHandler.DecreaseCartItem)
			cart.DELETE("/items", publicHandler.RemoveCartItem)
			cart.DELETE("", publicHandler.ClearCart)
			cart.POST("/checkout",
				RateLimitMiddleware(redisClient, checkoutRule, KeyByIP),
				publicHandler.Checkout,
			)
		}

		// Guest order lookup and cancel.
		guest := apiV1.Group("/guest")
		{
			guest.GET("/orders/lookup", publicHandler.LookupGuestOrder)
			guest.POST("/orders/cancel", publicHandler.CancelGuestOrder)
		}

		// Customer auth.
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		// Customer account, token required.
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetProfile)
			user.GET("/orders", publicHandler.ListUserOrders)
			user.GET("/orders/:order_no", publicHandler.GetUserOrder)
			user.POST("/orders/:order_no/cancel", publicHandler.CancelUserOrder)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
