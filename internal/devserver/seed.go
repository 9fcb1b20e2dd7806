package devserver

import (
	"context"

	"storefront/internal/devserver/entity"
	"storefront/internal/devserver/repository"
	"storefront/internal/domain/model"

	"github.com/google/uuid"
)

// Seed は商品テーブルが空ならデモ商品を投入する。
func Seed(ctx context.Context, products repository.ProductRepository) error {
	rows, err := products.List(ctx)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		return nil
	}

	demo := []entity.Product{
		{
			Name:                "Arabica Coffee Beans 1kg",
			Description:         "Single-origin beans, medium roast.",
			CategoryName:        "Beverages",
			CategoryDescription: "Coffee and tea",
			BasePrice:           1200,
			Images:              []string{"coffee-front.jpg", "coffee-back.jpg"},
			Discounts: []model.QuantityDiscount{
				{MinQuantity: 5, DiscountPercent: 5},
				{MinQuantity: 10, DiscountPercent: 12},
			},
		},
		{
			Name:                "Green Tea Box 100 bags",
			Description:         "Loose-leaf quality in bags.",
			CategoryName:        "Beverages",
			CategoryDescription: "Coffee and tea",
			BasePrice:           450,
			Images:              []string{"greentea.jpg"},
		},
		{
			Name:                "Basmati Rice 5kg",
			Description:         "Long grain, aged 12 months.",
			CategoryName:        "Staples",
			CategoryDescription: "Rice, flour and grains",
			BasePrice:           1600,
			Images:              []string{"rice-5kg.jpg"},
			Discounts: []model.QuantityDiscount{
				{MinQuantity: 4, DiscountPercent: 8},
			},
		},
		{
			Name:                "Olive Oil 1L",
			Description:         "Extra virgin, cold pressed.",
			CategoryName:        "Staples",
			CategoryDescription: "Rice, flour and grains",
			BasePrice:           950,
			Images:              []string{"olive-oil.jpg"},
		},
	}

	for i := range demo {
		demo[i].ID = uuid.NewString()
		if err := products.Create(ctx, &demo[i]); err != nil {
			return err
		}
	}

	return nil
}
