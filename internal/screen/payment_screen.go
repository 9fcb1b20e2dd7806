package screen

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"storefront/internal/usecase"
)

// 支払い（PaymentPage相当）。カード払いと伝票アップロードの2系統。
type PaymentScreen struct {
	payment *usecase.PaymentUsecase
	orders  *usecase.OrderUsecase
	out     io.Writer
}

func NewPaymentScreen(payment *usecase.PaymentUsecase, orders *usecase.OrderUsecase, out io.Writer) *PaymentScreen {
	return &PaymentScreen{payment: payment, orders: orders, out: out}
}

// Render は支払い対象の注文概要を表示する。
func (s *PaymentScreen) Render(ctx context.Context, orderID string) error {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		errorLine(s.out, "Order not found.")
		return nil
	}

	fmt.Fprintf(s.out, "Pay for Order #%s\n", o.ID)
	fmt.Fprintf(s.out, "Amount: %s\n", money(o.TotalAmount))
	fmt.Fprintf(s.out, "Name: %s %s\n", o.Fname, o.Lname)
	fmt.Fprintf(s.out, "Email: %s\n", o.Email)
	return nil
}

func (s *PaymentScreen) PayByCard(ctx context.Context, orderID string, card usecase.CardDetails) error {
	if err := s.payment.PayByCard(ctx, orderID, card); err != nil {
		errorLine(s.out, err.Error())
		return err
	}
	fmt.Fprintln(s.out, "Payment successful!")
	return nil
}

// UploadSlip はローカルファイルを開いて伝票として送る。
func (s *PaymentScreen) UploadSlip(ctx context.Context, orderID string, path string) error {
	f, err := os.Open(path)
	if err != nil {
		errorLine(s.out, "Please select a file to upload.")
		return err
	}
	defer func() { _ = f.Close() }()

	if err := s.payment.UploadSlip(ctx, orderID, filepath.Base(path), f); err != nil {
		errorLine(s.out, "Failed to upload slip.")
		return err
	}

	fmt.Fprintln(s.out, "Slip uploaded successfully!")
	return nil
}
