package provider

import (
	"time"

	"github.com/mocnhien/storefront/internal/cache"
	"github.com/mocnhien/storefront/internal/config"
	"github.com/mocnhien/storefront/internal/logger"
	"github.com/mocnhien/storefront/internal/models"
	"github.com/mocnhien/storefront/internal/queue"
	"github.com/mocnhien/storefront/internal/repository"
	"github.com/mocnhien/storefront/internal/service"
)

// Container wires repositories and services for the HTTP layer and the worker.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	OrderRepo    repository.OrderRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository

	// Services
	UserAuthService *service.UserAuthService
	EmailService    *service.EmailService
	CaptchaService  *service.CaptchaService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	OrderService    *service.OrderService
}

// NewContainer builds the dependency container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
}

func (c *Container) initServices() {
	cartTTL := time.Duration(c.Config.Cart.TTLDays) * 24 * time.Hour
	cartKV := cache.NewCartKV(cartTTL)

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.CartService = service.NewCartService(c.ProductRepo, cartKV)
	c.CheckoutService = service.NewCheckoutService(c.OrderRepo, c.CartService, c.QueueClient, cache.NewLocker(), c.Config.Checkout)
	c.OrderService = service.NewOrderService(c.OrderRepo)
}
