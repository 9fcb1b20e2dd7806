package screen

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"storefront/internal/domain/model"
	"storefront/internal/store"
)

// 商品一覧（Collections相当）
type CatalogScreen struct {
	catalog *store.CatalogStore
	cart    *store.CartStore
	out     io.Writer
}

func NewCatalogScreen(catalog *store.CatalogStore, cart *store.CartStore, out io.Writer) *CatalogScreen {
	return &CatalogScreen{catalog: catalog, cart: cart, out: out}
}

// Render は初回だけ商品を取得して一覧を描画する。
// 取得に失敗しても最後に分かっている（空の）一覧＋エラー文言を出す。
func (s *CatalogScreen) Render(ctx context.Context) error {
	_ = s.catalog.Load(ctx)

	if err := s.catalog.Err(); err != nil {
		errorLine(s.out, "Failed to load products. Please try again later.")
	}

	products := s.catalog.Products()
	if len(products) == 0 {
		fmt.Fprintln(s.out, "No products available.")
		return nil
	}

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category.Name, money(p.Pricing.BasePrice))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nCart: %d item(s)\n", s.cart.Count())
	return nil
}

// RenderLatest は新着順に上位n件を描画する（Latestproducts相当）。
func (s *CatalogScreen) RenderLatest(ctx context.Context, n int) error {
	_ = s.catalog.Load(ctx)

	if err := s.catalog.Err(); err != nil {
		errorLine(s.out, "Failed to load products. Please try again later.")
		return nil
	}

	products := append([]model.Product(nil), s.catalog.Products()...)
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	if n > 0 && len(products) > n {
		products = products[:n]
	}

	for _, p := range products {
		fmt.Fprintf(s.out, "%s  %s  %s\n", p.ID, p.Name, money(p.Pricing.BasePrice))
	}
	return nil
}
