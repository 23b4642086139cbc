package provider

import (
	"gorm.io/gorm"

	"github.com/ipsum-store/internal/config"
	"github.com/ipsum-store/internal/repository"
	"github.com/ipsum-store/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB

	// Repositories
	UserRepo          repository.UserRepository
	AddressRepo       repository.AddressRepository
	ProductRepo       repository.ProductRepository
	ProductOptionRepo repository.ProductOptionRepository
	CategoryRepo      repository.CategoryRepository
	CartRepo          repository.CartRepository

	// Services
	AuthService          *service.AuthService
	UserService          *service.UserService
	AddressService       *service.AddressService
	ProductService       *service.ProductService
	ProductOptionService *service.ProductOptionService
	CategoryService      *service.CategoryService
	CartService          *service.CartService
}

// NewContainer 初始化容器，数据库句柄由调用方传入
func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	c.UserRepo = repository.NewUserRepository(c.DB)
	c.AddressRepo = repository.NewAddressRepository(c.DB)
	c.ProductRepo = repository.NewProductRepository(c.DB)
	c.ProductOptionRepo = repository.NewProductOptionRepository(c.DB)
	c.CategoryRepo = repository.NewCategoryRepository(c.DB)
	c.CartRepo = repository.NewCartRepository(c.DB)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.UserService = service.NewUserService(c.UserRepo, c.AuthService)
	c.AddressService = service.NewAddressService(c.AddressRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.ProductOptionService = service.NewProductOptionService(c.ProductOptionRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo)
}
