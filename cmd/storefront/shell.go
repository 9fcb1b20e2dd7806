package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"storefront/internal/app"
	"storefront/internal/domain/model"
)

// --itemの値（product-id=quantity）をカートに反映する
func fillCart(a *app.App, args []string) error {
	for _, arg := range args {
		id, qtyStr, ok := strings.Cut(arg, "=")
		if !ok {
			return errors.Errorf("invalid --item %q (want product-id=quantity)", arg)
		}
		qty, err := strconv.ParseInt(qtyStr, 10, 64)
		if err != nil || qty < 1 {
			return errors.Errorf("invalid quantity in --item %q", arg)
		}
		a.Cart.Add(id, qty)
	}
	return nil
}

// --itemの値（name|quantity|reason）を返品明細にする
func parseReturnItems(args []string) ([]model.ReturnItem, error) {
	items := make([]model.ReturnItem, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "|", 3)
		if len(parts) != 3 {
			return nil, errors.Errorf("invalid --item %q (want name|quantity|reason)", arg)
		}
		qty, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, errors.Errorf("invalid quantity in --item %q", arg)
		}
		items = append(items, model.ReturnItem{
			Name:     parts[0],
			Quantity: qty,
			Reason:   parts[2],
		})
	}
	return items, nil
}

// runShell は1プロセス内で画面を行き来する対話モード。
// カートはプロセス内メモリのみなので、買い物のフローはここで完結させる。
func runShell(a *app.App, in io.Reader, out io.Writer) error {
	ctx := context.Background()
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "storefront shell — type 'help' for commands, 'quit' to exit")
	fmt.Fprint(out, "> ")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			args := strings.Fields(line)
			if args[0] == "quit" || args[0] == "exit" {
				return nil
			}
			runShellCommand(ctx, a, out, args)
		}
		fmt.Fprint(out, "> ")
	}

	return scanner.Err()
}

func runShellCommand(ctx context.Context, a *app.App, out io.Writer, args []string) {
	switch args[0] {
	case "help":
		fmt.Fprintln(out, `commands:
  products              list the catalog
  product <id>          show product detail
  add <id> [qty]        add a product to the cart
  setqty <id> <qty>     change quantity (0 removes the line)
  cart                  show the cart
  orders                list orders
  order <id>            show one order
  returns               list return requests
  whoami                show session state
  logout                log out
  quit                  exit`)

	case "products":
		_ = a.CatalogScreen.Render(ctx)

	case "product":
		if len(args) != 2 {
			fmt.Fprintln(out, "usage: product <id>")
			return
		}
		_ = a.ProductDetailScreen.Render(ctx, args[1])

	case "add":
		if len(args) < 2 || len(args) > 3 {
			fmt.Fprintln(out, "usage: add <id> [qty]")
			return
		}
		var qty int64 = 1
		if len(args) == 3 {
			v, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				fmt.Fprintln(out, "quantity must be a number")
				return
			}
			qty = v
		}
		a.ProductDetailScreen.AddToCart(args[1], qty)

	case "setqty":
		if len(args) != 3 {
			fmt.Fprintln(out, "usage: setqty <id> <qty>")
			return
		}
		qty, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			fmt.Fprintln(out, "quantity must be a number")
			return
		}
		a.CartScreen.SetQuantity(args[1], qty)

	case "cart":
		_ = a.CartScreen.Render()

	case "orders":
		_ = a.OrderListScreen.Render(ctx)

	case "order":
		if len(args) != 2 {
			fmt.Fprintln(out, "usage: order <id>")
			return
		}
		_ = a.OrderDetailScreen.Render(ctx, args[1])

	case "returns":
		_ = a.ReturnListScreen.Render(ctx)

	case "whoami":
		a.AuthScreen.Whoami()

	case "logout":
		_ = a.AuthScreen.Logout()

	default:
		fmt.Fprintf(out, "unknown command %q (try 'help')\n", args[0])
	}
}
