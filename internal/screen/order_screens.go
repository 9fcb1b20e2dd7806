package screen

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

// 注文一覧（OrderList相当）
type OrderListScreen struct {
	orders *usecase.OrderUsecase
	out    io.Writer
}

func NewOrderListScreen(orders *usecase.OrderUsecase, out io.Writer) *OrderListScreen {
	return &OrderListScreen{orders: orders, out: out}
}

func (s *OrderListScreen) Render(ctx context.Context) error {
	orders, err := s.orders.List(ctx)
	if err != nil {
		errorLine(s.out, "Failed to fetch orders")
		return nil
	}

	if len(orders) == 0 {
		fmt.Fprintln(s.out, "No orders yet.")
		return nil
	}

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tTOTAL\tSTATUS")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n", o.ID, o.Fname, o.Lname, money(o.TotalAmount), o.Status)
	}
	return w.Flush()
}

// 注文詳細（OrdersDetails相当）。編集と削除もここから。
type OrderDetailScreen struct {
	orders *usecase.OrderUsecase
	out    io.Writer
}

func NewOrderDetailScreen(orders *usecase.OrderUsecase, out io.Writer) *OrderDetailScreen {
	return &OrderDetailScreen{orders: orders, out: out}
}

func (s *OrderDetailScreen) Render(ctx context.Context, id string) error {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		errorLine(s.out, "Failed to fetch order")
		return nil
	}

	fmt.Fprintf(s.out, "Order #%s  [%s]\n", o.ID, o.Status)
	fmt.Fprintf(s.out, "Name: %s %s\n", o.Fname, o.Lname)
	fmt.Fprintf(s.out, "Email: %s\n", o.Email)
	fmt.Fprintf(s.out, "Phone: %s\n", o.Phone)
	fmt.Fprintf(s.out, "Address: %s, %s %s, %s %s\n", o.Address, o.City, o.State, o.ZipCode, o.Country)
	fmt.Fprintln(s.out, "Items:")
	for _, it := range o.OrderItems {
		fmt.Fprintf(s.out, "  %s x%d  %s\n", it.Name, it.Quantity, money(it.Price*float64(it.Quantity)))
	}
	fmt.Fprintf(s.out, "Total: %s\n", money(o.TotalAmount))
	return nil
}

// UpdateStatus は注文を取り直してstatusだけ差し替えてPUTする。
func (s *OrderDetailScreen) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		errorLine(s.out, "Failed to fetch order")
		return err
	}

	o.Status = status
	if err := s.orders.Update(ctx, id, o); err != nil {
		errorLine(s.out, "Failed to update order")
		return err
	}

	fmt.Fprintf(s.out, "Order %s updated.\n", id)
	return nil
}

func (s *OrderDetailScreen) Delete(ctx context.Context, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		errorLine(s.out, "Failed to delete order")
		return err
	}
	fmt.Fprintf(s.out, "Order %s deleted.\n", id)
	return nil
}
