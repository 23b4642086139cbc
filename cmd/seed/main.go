package main

import (
	"github.com/ipsum-store/internal/config"
	"github.com/ipsum-store/internal/logger"
	"github.com/ipsum-store/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	db, err := models.Open(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	})
	if err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(db); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加商品
	products := []models.Product{
		{Name: "Oxford Shirt", Description: "Classic cotton oxford shirt"},
		{Name: "Slim Chino", Description: "Stretch cotton slim-fit chino"},
		{Name: "Wool Sweater", Description: "Merino wool crew neck sweater"},
	}

	productIDs := map[string]uint{}
	for _, product := range products {
		var existing models.Product
		if err := db.Where("name = ?", product.Name).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := db.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
				continue
			}
			stdLog.Printf("Created product: %s", product.Name)
			productIDs[product.Name] = product.ID
		} else {
			stdLog.Printf("Product already exists: %s", existing.Name)
			productIDs[existing.Name] = existing.ID
		}
	}

	// 添加商品规格
	type optionSeed struct {
		productName string
		option      models.ProductOption
	}

	tenOff := 10
	optionSeeds := []optionSeed{
		{
			productName: "Oxford Shirt",
			option: models.ProductOption{
				Color:          "white",
				WholesalePrice: mustMoney("24.50"),
				RetailPrice:    mustMoney("49.00"),
				ImageSource:    "https://images.example.com/oxford-white.jpg",
			},
		},
		{
			productName: "Oxford Shirt",
			option: models.ProductOption{
				Color:          "blue",
				WholesalePrice: mustMoney("24.50"),
				RetailPrice:    mustMoney("49.00"),
				PercentOff:     &tenOff,
				ImageSource:    "https://images.example.com/oxford-blue.jpg",
			},
		},
		{
			productName: "Slim Chino",
			option: models.ProductOption{
				Color:          "khaki",
				WholesalePrice: mustMoney("29.00"),
				RetailPrice:    mustMoney("58.00"),
				ImageSource:    "https://images.example.com/chino-khaki.jpg",
			},
		},
		{
			productName: "Wool Sweater",
			option: models.ProductOption{
				Color:          "charcoal",
				WholesalePrice: mustMoney("41.00"),
				RetailPrice:    mustMoney("82.00"),
				ImageSource:    "https://images.example.com/sweater-charcoal.jpg",
			},
		},
	}

	for _, seed := range optionSeeds {
		productID, ok := productIDs[seed.productName]
		if !ok {
			stdLog.Printf("Skip option %s: product %s missing", seed.option.Color, seed.productName)
			continue
		}
		option := seed.option
		option.ProductID = productID

		var existing models.ProductOption
		if err := db.Where("product_id = ? AND color = ?", productID, option.Color).First(&existing).Error; err != nil {
			if err := db.Create(&option).Error; err != nil {
				stdLog.Printf("Failed to create option %s/%s: %v", seed.productName, option.Color, err)
			} else {
				stdLog.Printf("Created option: %s/%s", seed.productName, option.Color)
			}
		} else {
			stdLog.Printf("Option already exists: %s/%s", seed.productName, option.Color)
		}
	}

	// 添加分类
	type categorySeed struct {
		productName string
		gender      string
		kind        string
	}
	categorySeeds := []categorySeed{
		{productName: "Oxford Shirt", gender: "men", kind: "shirts"},
		{productName: "Slim Chino", gender: "men", kind: "pants"},
		{productName: "Wool Sweater", gender: "women", kind: "sweaters"},
	}

	for _, seed := range categorySeeds {
		productID, ok := productIDs[seed.productName]
		if !ok {
			continue
		}
		var existing models.Category
		if err := db.Where("product_id = ? AND gender = ? AND type = ?", productID, seed.gender, seed.kind).First(&existing).Error; err != nil {
			category := models.Category{Gender: seed.gender, Type: seed.kind, ProductID: productID}
			if err := db.Create(&category).Error; err != nil {
				stdLog.Printf("Failed to create category %s/%s: %v", seed.gender, seed.kind, err)
			} else {
				stdLog.Printf("Created category: %s/%s -> %s", seed.gender, seed.kind, seed.productName)
			}
		} else {
			stdLog.Printf("Category already exists: %s/%s", seed.gender, seed.kind)
		}
	}

	stdLog.Printf("Seed finished")
}

func mustMoney(amount string) models.Money {
	m, err := models.NewMoneyFromString(amount)
	if err != nil {
		panic(err)
	}
	return m
}
