package screen

import (
	"fmt"
	"io"
	"text/tabwriter"

	"storefront/internal/store"
	"storefront/internal/usecase"
)

// カート（Cart相当）
type CartScreen struct {
	cart *store.CartStore
	out  io.Writer
}

func NewCartScreen(cart *store.CartStore, out io.Writer) *CartScreen {
	return &CartScreen{cart: cart, out: out}
}

func (s *CartScreen) Render() error {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(s.out, "Your cart is empty.")
		return nil
	}

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tQTY\tAMOUNT")
	for _, line := range lines {
		p, ok := s.cart.ProductByID(line.ProductID)
		if !ok {
			// カタログから消えた商品。合計には0円で効く。
			fmt.Fprintf(w, "%s (unavailable)\t%d\t%s\n", line.ProductID, line.Quantity, money(0))
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", p.Name, line.Quantity, money(p.Pricing.BasePrice*float64(line.Quantity)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	total := s.cart.Total()
	fmt.Fprintf(s.out, "\nSubtotal: %s\n", money(total))
	fmt.Fprintf(s.out, "Delivery Fee: %s\n", money(usecase.DeliveryFee))
	fmt.Fprintf(s.out, "Grand Total: %s\n", money(total+usecase.DeliveryFee))
	return nil
}

// SetQuantity は0以下で行削除（updateQuantityと同じ規則）。
func (s *CartScreen) SetQuantity(productID string, qty int64) {
	s.cart.SetQuantity(productID, qty)
	if qty <= 0 {
		fmt.Fprintf(s.out, "Removed %s from cart.\n", productID)
		return
	}
	fmt.Fprintf(s.out, "Set %s quantity to %d.\n", productID, qty)
}
