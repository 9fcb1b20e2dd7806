package screen

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"storefront/internal/apiclient"
	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

// 返品作成（CreateReturn相当）
type ReturnCreateScreen struct {
	returns *usecase.ReturnUsecase
	out     io.Writer
}

func NewReturnCreateScreen(returns *usecase.ReturnUsecase, out io.Writer) *ReturnCreateScreen {
	return &ReturnCreateScreen{returns: returns, out: out}
}

// Render は返品対象の注文の明細を表示する。
func (s *ReturnCreateScreen) Render(ctx context.Context, orderID string) error {
	o, err := s.returns.LoadOrder(ctx, orderID)
	if err != nil {
		errorLine(s.out, "Failed to load order details")
		return nil
	}

	fmt.Fprintf(s.out, "Create Return Request — Order #%s (total %s)\n", o.ID, money(o.TotalAmount))
	fmt.Fprintln(s.out, "Items:")
	for _, it := range o.OrderItems {
		fmt.Fprintf(s.out, "  %s (qty: %d)\n", it.Name, it.Quantity)
	}
	return nil
}

// Submit は画像ファイルを開いて返品リクエストを送信する。
// 検証エラーはインライン表示して送信しない。
func (s *ReturnCreateScreen) Submit(
	ctx context.Context,
	orderID string,
	email string,
	items []model.ReturnItem,
	imagePaths []string,
) error {
	images := make([]apiclient.ReturnImage, 0, len(imagePaths))
	files := make([]*os.File, 0, len(imagePaths))
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()

	for _, path := range imagePaths {
		f, err := os.Open(path)
		if err != nil {
			errorLine(s.out, fmt.Sprintf("cannot open image %s", path))
			return err
		}
		files = append(files, f)
		images = append(images, apiclient.ReturnImage{Filename: filepath.Base(path), Reader: f})
	}

	if err := s.returns.Submit(ctx, orderID, email, items, images); err != nil {
		errorLine(s.out, err.Error())
		return err
	}

	fmt.Fprintln(s.out, "Return request submitted.")
	return nil
}

// 返品一覧（ReturnsList相当）
type ReturnListScreen struct {
	returns *usecase.ReturnUsecase
	out     io.Writer
}

func NewReturnListScreen(returns *usecase.ReturnUsecase, out io.Writer) *ReturnListScreen {
	return &ReturnListScreen{returns: returns, out: out}
}

func (s *ReturnListScreen) Render(ctx context.Context) error {
	list, err := s.returns.List(ctx)
	if err != nil {
		errorLine(s.out, "Failed to load return requests")
		return nil
	}

	if len(list) == 0 {
		fmt.Fprintln(s.out, "No return requests.")
		return nil
	}

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORDER\tEMAIL\tITEMS\tSTATUS")
	for _, r := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", r.ID, r.OrderID, r.Email, len(r.Items), r.Status)
	}
	return w.Flush()
}
