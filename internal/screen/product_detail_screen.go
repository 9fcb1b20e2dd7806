package screen

import (
	"context"
	"fmt"
	"io"

	"storefront/internal/apiclient"
	"storefront/internal/store"
)

// 商品詳細（ProductDetail相当）。詳細は一覧とは別に単品APIで取る。
type ProductDetailScreen struct {
	api  *apiclient.Client
	cart *store.CartStore
	out  io.Writer
}

func NewProductDetailScreen(api *apiclient.Client, cart *store.CartStore, out io.Writer) *ProductDetailScreen {
	return &ProductDetailScreen{api: api, cart: cart, out: out}
}

func (s *ProductDetailScreen) Render(ctx context.Context, id string) error {
	p, err := s.api.Product(ctx, id)
	if err != nil {
		errorLine(s.out, "Unable to load product. Please try again later.")
		return nil
	}

	fmt.Fprintf(s.out, "%s\n", p.Name)
	if p.Category.Name != "" {
		fmt.Fprintf(s.out, "Category: %s\n", p.Category.Name)
	}
	if p.Description != "" {
		fmt.Fprintf(s.out, "%s\n", p.Description)
	}
	fmt.Fprintf(s.out, "Base Price: %s\n", money(p.Pricing.BasePrice))

	// 数量割引の表示。カート合計には反映されない（表示のみ）。
	for _, d := range p.Pricing.QuantityDiscounts {
		fmt.Fprintf(s.out, "  Buy %d+ units: %.0f%% off (unit %s)\n",
			d.MinQuantity, d.DiscountPercent, money(p.Pricing.UnitPriceFor(d.MinQuantity)))
	}

	return nil
}

// AddToCart は数量1以上のみ受け付ける。
func (s *ProductDetailScreen) AddToCart(id string, qty int64) {
	if qty < 1 {
		errorLine(s.out, "quantity must be at least 1")
		return
	}
	s.cart.Add(id, qty)
	fmt.Fprintf(s.out, "Added %d to cart (cart count: %d)\n", qty, s.cart.Count())
}
