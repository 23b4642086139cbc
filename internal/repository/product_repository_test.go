package repository

import (
	"testing"

	"github.com/ipsum-store/internal/models"
)

func TestProductRepositoryListOrdersByID(t *testing.T) {
	repo := NewProductRepository(newTestDB(t, &models.Product{}))

	first := models.Product{Name: "Shirt", Description: "Cotton"}
	second := models.Product{Name: "Pants", Description: "Denim"}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create first product failed: %v", err)
	}
	if err := repo.Create(&second); err != nil {
		t.Fatalf("create second product failed: %v", err)
	}

	products, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("list want 2 rows got %d", len(products))
	}
	if products[0].ID > products[1].ID {
		t.Fatalf("list should be ordered by id ascending")
	}
}

func TestProductOptionSurvivesProductDelete(t *testing.T) {
	db := newTestDB(t, &models.Product{}, &models.ProductOption{})
	productRepo := NewProductRepository(db)
	optionRepo := NewProductOptionRepository(db)

	product := models.Product{Name: "Shirt", Description: "Cotton"}
	if err := productRepo.Create(&product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	option := models.ProductOption{
		ProductID:      product.ID,
		Color:          "white",
		WholesalePrice: mustMoney(t, "24.50"),
		RetailPrice:    mustMoney(t, "49.00"),
	}
	if err := optionRepo.Create(&option); err != nil {
		t.Fatalf("create option failed: %v", err)
	}

	if err := productRepo.Delete(product.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	// 删除商品不级联，规格保留并继续指向原商品 ID
	loaded, err := optionRepo.GetByID(option.ID)
	if err != nil {
		t.Fatalf("get option failed: %v", err)
	}
	if loaded == nil {
		t.Fatalf("option should survive product delete")
	}
	if loaded.ProductID != product.ID {
		t.Fatalf("option product_id want %d got %d", product.ID, loaded.ProductID)
	}
}

func mustMoney(t *testing.T, amount string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(amount)
	if err != nil {
		t.Fatalf("parse money %s failed: %v", amount, err)
	}
	return m
}
