package screen

import (
	"context"
	"fmt"
	"io"

	"storefront/internal/store"
	"storefront/internal/usecase"
)

// 注文確定（Placeorder相当）
type CheckoutScreen struct {
	checkout *usecase.CheckoutUsecase
	session  *store.SessionStore
	out      io.Writer
}

func NewCheckoutScreen(checkout *usecase.CheckoutUsecase, session *store.SessionStore, out io.Writer) *CheckoutScreen {
	return &CheckoutScreen{checkout: checkout, session: session, out: out}
}

// RenderSummary は注文サマリー（明細＋配送料＋合計）を描画する。
func (s *CheckoutScreen) RenderSummary() {
	items := s.checkout.OrderItems()
	if len(items) == 0 {
		fmt.Fprintln(s.out, "Your cart is empty.")
		return
	}

	fmt.Fprintln(s.out, "Order Summary:")
	for _, it := range items {
		fmt.Fprintf(s.out, "  %s x%d  %s\n", it.Name, it.Quantity, money(it.Price*float64(it.Quantity)))
	}
	fmt.Fprintf(s.out, "Delivery Cost: %s\n", money(usecase.DeliveryFee))
	fmt.Fprintf(s.out, "Total: %s\n", money(s.checkout.Total()))
}

// PlaceOrder は注文を作成し、作成された注文IDを表示する。
// emailが未入力ならログイン中ユーザーのemailで埋める（SPAの自動補完と同じ）。
func (s *CheckoutScreen) PlaceOrder(ctx context.Context, d usecase.DeliveryDetails) error {
	if d.Email == "" {
		d.Email = s.session.Email()
	}

	order, err := s.checkout.PlaceOrder(ctx, d)
	if err != nil {
		errorLine(s.out, err.Error())
		return err
	}

	fmt.Fprintf(s.out, "Order placed: %s (total %s)\n", order.ID, money(order.TotalAmount))
	fmt.Fprintf(s.out, "Proceed to payment for order %s.\n", order.ID)
	return nil
}
